package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

func TestSeed(t *testing.T) {
	b := attachTestBackend(t)

	n, err := b.Seed()
	require.NoError(t, err)
	assert.Equal(t, len(demoRecords), n)

	for _, table := range types.StandardTableNames {
		count, err := b.Count(table)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, table)
	}

	// The seeded student is referenced, so it cannot be deleted.
	students, err := b.FetchAll(types.TableStudent)
	require.NoError(t, err)
	id, ok := students[0].ID()
	require.True(t, ok)
	assert.ErrorIs(t, b.Delete(types.TableStudent, id), types.ErrIntegrity)
}

func TestSeed_SkipsWhenFacultyPresent(t *testing.T) {
	b := attachTestBackend(t)

	_, err := b.Seed()
	require.NoError(t, err)

	n, err := b.Seed()
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := b.Count(types.TableFaculty)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeed_Detached(t *testing.T) {
	b := NewBackend(nil)
	_, err := b.Seed()
	assert.ErrorIs(t, err, types.ErrDetached)
}
