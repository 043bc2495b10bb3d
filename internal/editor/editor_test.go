package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/registrar/internal/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// recordingView keeps the latest rendering and every message.
type recordingView struct {
	tables  []string
	table   string
	columns []types.Column
	rows    []types.Row
	state   State
	errors  []string
	infos   []string
}

func (v *recordingView) RenderTables(tables []string) { v.tables = tables }
func (v *recordingView) RenderColumns(table string, columns []types.Column) {
	v.table, v.columns = table, columns
}
func (v *recordingView) RenderRows(rows []types.Row) { v.rows = rows }
func (v *recordingView) RenderState(state State)     { v.state = state }
func (v *recordingView) ReportError(message string)  { v.errors = append(v.errors, message) }
func (v *recordingView) ReportInfo(message string)   { v.infos = append(v.infos, message) }

// newTestEditor starts an editor over a fresh database.
func newTestEditor(t *testing.T) (*Editor, *recordingView, *sqlite.Backend) {
	t.Helper()

	b := sqlite.NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })

	v := &recordingView{}
	e := New(b, v, nil)
	require.NoError(t, e.Start())
	return e, v, b
}

// fill types each value into the editable fields in order.
func fill(t *testing.T, e *Editor, texts ...string) {
	t.Helper()
	col := 0
	for i, c := range e.Columns() {
		if !c.Editable() {
			continue
		}
		require.Less(t, col, len(texts))
		require.True(t, e.SetField(i, texts[col]), "field %s rejected %q", c.Name, texts[col])
		col++
	}
}

func TestStart(t *testing.T) {
	e, v, _ := newTestEditor(t)

	assert.Equal(t, types.SystemCatalog, v.tables[len(v.tables)-1])
	assert.Equal(t, types.TableFaculty, v.table)
	assert.Equal(t, []string{"id", "name", "dean", "office"}, types.ColumnNames(v.columns))

	st := e.State()
	assert.Equal(t, ModeCreate, st.Mode)
	assert.Equal(t, []string{"", "", "", ""}, st.Pending)
	assert.Equal(t, -1, st.Highlighted)
	assert.True(t, st.Enabled[CmdNew])
	assert.True(t, st.Enabled[CmdSave])
	assert.False(t, st.Enabled[CmdDelete])
	assert.True(t, st.Enabled[CmdCount])
}

func TestStart_CatalogFailureIsFatal(t *testing.T) {
	repo := &stubRepo{listTablesErr: &types.StoreError{Op: "list tables", Err: errors.New("disk I/O error")}}
	v := &recordingView{}

	err := New(repo, v, nil).Start()
	require.ErrorIs(t, err, types.ErrStore)
	assert.Nil(t, v.tables)
}

func TestSave_CreateFacultyScenario(t *testing.T) {
	e, v, b := newTestEditor(t)

	require.NoError(t, e.New())
	fill(t, e, "CS", "Smith", "101")
	require.NoError(t, e.Save())

	st := e.State()
	assert.Equal(t, ModeEdit, st.Mode)
	assert.Equal(t, int64(1), st.RowID)
	assert.Equal(t, []string{"1", "CS", "Smith", "101"}, st.Pending)
	assert.Equal(t, 0, st.Highlighted)
	assert.True(t, st.Enabled[CmdDelete])

	rows, err := b.FetchAll(types.TableFaculty)
	require.NoError(t, err)
	assert.Equal(t, []types.Row{{int64(1), "CS", "Smith", int64(101)}}, rows)
	assert.Equal(t, rows, v.rows)
	assert.Empty(t, v.errors)
}

func TestSave_NewThenSaveAddsExactlyOneRow(t *testing.T) {
	e, v, _ := newTestEditor(t)

	fill(t, e, "CS", "Smith", "101")
	require.NoError(t, e.Save())
	before := len(v.rows)

	require.NoError(t, e.New())
	fill(t, e, "Math", "Noether", "7")
	require.NoError(t, e.Save())

	assert.Len(t, v.rows, before+1)
	st := e.State()
	assert.Equal(t, ModeEdit, st.Mode)
	newID, ok := v.rows[len(v.rows)-1].ID()
	require.True(t, ok)
	assert.Equal(t, newID, st.RowID)
}

func TestSave_UpdateInPlace(t *testing.T) {
	e, v, b := newTestEditor(t)

	fill(t, e, "CS", "Smith", "101")
	require.NoError(t, e.Save())
	id := e.State().RowID

	require.True(t, e.SetField(2, "Jones"))
	require.True(t, e.SetField(3, "007"))
	require.NoError(t, e.Save())

	st := e.State()
	assert.Equal(t, ModeEdit, st.Mode)
	assert.Equal(t, id, st.RowID)
	assert.Equal(t, []string{"1", "CS", "Jones", "7"}, st.Pending)
	assert.Equal(t, []types.Row{{id, "CS", "Jones", int64(7)}}, v.rows)

	rows, err := b.FetchAll(types.TableFaculty)
	require.NoError(t, err)
	assert.Equal(t, v.rows, rows)
}

func TestSave_ValidationErrorPreservesState(t *testing.T) {
	e, v, b := newTestEditor(t)

	fill(t, e, "CS", "", "101")
	err := e.Save()
	require.ErrorIs(t, err, types.ErrValidation)

	st := e.State()
	assert.Equal(t, ModeCreate, st.Mode)
	assert.Equal(t, []string{"", "CS", "", "101"}, st.Pending)
	require.Len(t, v.errors, 1)
	assert.Contains(t, v.errors[0], "dean")

	n, err := b.Count(types.TableFaculty)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSave_LoneMinusRejectedAtSubmit(t *testing.T) {
	e, _, _ := newTestEditor(t)

	fill(t, e, "CS", "Smith", "-")
	assert.ErrorIs(t, e.Save(), types.ErrValidation)
}

func TestSave_IntegrityErrorPreservesState(t *testing.T) {
	e, v, b := newTestEditor(t)
	require.NoError(t, e.SelectTable(types.TableStudGroup))

	fill(t, e, "11", "999")
	err := e.Save()
	require.ErrorIs(t, err, types.ErrIntegrity)

	st := e.State()
	assert.Equal(t, ModeCreate, st.Mode)
	assert.Equal(t, []string{"", "11", "999"}, st.Pending)
	assert.Len(t, v.errors, 1)
	assert.Empty(t, v.rows)

	rows, err := b.FetchAll(types.TableStudGroup)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSelectRow(t *testing.T) {
	e, _, b := newTestEditor(t)
	_, err := b.Insert(types.TableFaculty, types.Values{"name": "CS", "dean": "Smith", "office": int64(101)})
	require.NoError(t, err)
	id2, err := b.Insert(types.TableFaculty, types.Values{"name": "Math", "dean": "Noether", "office": int64(7)})
	require.NoError(t, err)
	require.NoError(t, e.SelectTable(types.TableFaculty))

	require.NoError(t, e.SelectRow(1))
	st := e.State()
	assert.Equal(t, ModeEdit, st.Mode)
	assert.Equal(t, id2, st.RowID)
	assert.Equal(t, []string{"2", "Math", "Noether", "7"}, st.Pending)
	assert.True(t, st.Enabled[CmdDelete])

	assert.ErrorIs(t, e.SelectRow(5), types.ErrNotFound)
	assert.Equal(t, id2, e.State().RowID, "failed selection keeps the bound row")
}

func TestNew_ResetsToCreate(t *testing.T) {
	e, _, _ := newTestEditor(t)
	fill(t, e, "CS", "Smith", "101")
	require.NoError(t, e.Save())

	require.NoError(t, e.New())
	st := e.State()
	assert.Equal(t, ModeCreate, st.Mode)
	assert.Zero(t, st.RowID)
	assert.Equal(t, []string{"", "", "", ""}, st.Pending)
	assert.Equal(t, -1, st.Highlighted)
	assert.False(t, st.Enabled[CmdDelete])
}

func TestDelete(t *testing.T) {
	e, v, b := newTestEditor(t)
	fill(t, e, "CS", "Smith", "101")
	require.NoError(t, e.Save())

	require.NoError(t, e.Delete())
	assert.Empty(t, v.rows)
	assert.Equal(t, ModeCreate, e.State().Mode)

	n, err := b.Count(types.TableFaculty)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDelete_DisabledInCreate(t *testing.T) {
	e, v, b := newTestEditor(t)
	_, err := b.Insert(types.TableFaculty, types.Values{"name": "CS", "dean": "Smith", "office": int64(101)})
	require.NoError(t, err)
	require.NoError(t, e.SelectTable(types.TableFaculty))

	assert.ErrorIs(t, e.Delete(), types.ErrCommandDisabled)
	assert.Empty(t, v.errors)

	n, err := b.Count(types.TableFaculty)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDelete_ReferencedStudentRestricted(t *testing.T) {
	e, v, b := newTestEditor(t)
	_, err := b.Seed()
	require.NoError(t, err)
	require.NoError(t, e.SelectTable(types.TableStudent))
	require.NoError(t, e.SelectRow(0))
	before := e.State()

	err = e.Delete()
	require.ErrorIs(t, err, types.ErrIntegrity)
	assert.Len(t, v.errors, 1)
	assert.Len(t, v.rows, 1)
	assert.Equal(t, before, e.State())

	for _, table := range []string{types.TableStudent, types.TableBenefit, types.TableStudentToRelative} {
		n, err := b.Count(table)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, table)
	}
}

func TestSelectTable_ResetsState(t *testing.T) {
	e, v, _ := newTestEditor(t)
	fill(t, e, "CS", "Smith", "101")
	require.NoError(t, e.Save())

	require.NoError(t, e.SelectTable(types.TableRelative))
	st := e.State()
	assert.Equal(t, types.TableRelative, st.Table)
	assert.Equal(t, ModeCreate, st.Mode)
	assert.Len(t, st.Pending, len(v.columns))
	assert.Empty(t, v.rows)
}

func TestSelectTable_Unknown(t *testing.T) {
	e, _, _ := newTestEditor(t)
	err := e.SelectTable("Nope")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, types.TableFaculty, e.State().Table)
}

func TestSystemCatalogIsReadOnly(t *testing.T) {
	e, v, _ := newTestEditor(t)
	require.NoError(t, e.SelectTable(types.SystemCatalog))

	st := e.State()
	assert.True(t, st.ReadOnly)
	assert.False(t, st.Enabled[CmdNew])
	assert.False(t, st.Enabled[CmdSave])
	assert.False(t, st.Enabled[CmdDelete])
	assert.True(t, st.Enabled[CmdCount])
	assert.NotEmpty(t, v.rows)

	assert.ErrorIs(t, e.New(), types.ErrCommandDisabled)
	assert.ErrorIs(t, e.Save(), types.ErrCommandDisabled)
	assert.ErrorIs(t, e.Delete(), types.ErrCommandDisabled)
	assert.ErrorIs(t, e.SelectRow(0), types.ErrCommandDisabled)
	assert.False(t, e.SetField(1, "x"))

	e.Highlight(0)
	require.NoError(t, e.FocusChanged())
	assert.Equal(t, ModeCreate, e.State().Mode)

	require.NoError(t, e.Count())
	assert.Contains(t, v.infos[len(v.infos)-1], "records in sqlite_master")
}

func TestSetField(t *testing.T) {
	e, _, _ := newTestEditor(t)

	tests := []struct {
		name string
		col  int
		text string
		want bool
	}{
		{"identity rejected", 0, "5", false},
		{"text accepted", 1, "anything at all", true},
		{"integer digits", 3, "123", true},
		{"integer partial minus", 3, "-", true},
		{"integer negative", 3, "-123", true},
		{"integer cleared", 3, "", true},
		{"integer letters", 3, "12a", false},
		{"integer double minus", 3, "--1", false},
		{"integer overflow", 3, "9223372036854775808", false},
		{"column out of range", 9, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := e.State().Pending
			got := e.SetField(tt.col, tt.text)
			assert.Equal(t, tt.want, got)
			if got {
				assert.Equal(t, tt.text, e.State().Pending[tt.col])
			} else {
				assert.Equal(t, before, e.State().Pending, "rejected edit changed fields")
			}
		})
	}
}

func TestFocusChanged_ResyncsHighlightedRow(t *testing.T) {
	e, _, b := newTestEditor(t)
	for _, name := range []string{"A", "B"} {
		_, err := b.Insert(types.TableFaculty, types.Values{"name": name, "dean": "d", "office": int64(1)})
		require.NoError(t, err)
	}
	require.NoError(t, e.SelectTable(types.TableFaculty))

	require.NoError(t, e.FocusChanged())
	assert.Equal(t, ModeCreate, e.State().Mode, "no highlight, nothing to sync")

	e.Highlight(1)
	assert.Equal(t, ModeCreate, e.State().Mode)
	require.NoError(t, e.FocusChanged())

	st := e.State()
	assert.Equal(t, ModeEdit, st.Mode)
	assert.Equal(t, "B", st.Pending[1])

	e.Highlight(0)
	require.NoError(t, e.FocusChanged())
	assert.Equal(t, "A", e.State().Pending[1])
}

func TestCount(t *testing.T) {
	e, v, _ := newTestEditor(t)
	fill(t, e, "CS", "Smith", "101")
	require.NoError(t, e.Save())

	require.NoError(t, e.Count())
	assert.Equal(t, []string{"1 records in Faculty"}, v.infos)
	assert.Empty(t, v.errors)
}

func TestCount_FailureReportedAsInfo(t *testing.T) {
	repo := newStubRepo()
	repo.countErr = &types.StoreError{Op: "count", Err: errors.New("database is locked")}
	v := &recordingView{}
	e := New(repo, v, nil)
	require.NoError(t, e.Start())

	err := e.Count()
	require.ErrorIs(t, err, types.ErrStore)
	require.Len(t, v.infos, 1)
	assert.Contains(t, v.infos[0], "database is locked")
	assert.Empty(t, v.errors)

	// The session carries on.
	fill(t, e, "CS", "Smith", "101")
	assert.NoError(t, e.Save())
}

func TestSave_StoreErrorReported(t *testing.T) {
	repo := newStubRepo()
	repo.insertErr = &types.StoreError{Op: "insert Faculty", Err: errors.New("disk full")}
	v := &recordingView{}
	e := New(repo, v, nil)
	require.NoError(t, e.Start())

	fill(t, e, "CS", "Smith", "101")
	err := e.Save()
	require.ErrorIs(t, err, types.ErrStore)
	assert.Len(t, v.errors, 1)
	assert.Equal(t, ModeCreate, e.State().Mode)
	assert.Equal(t, []string{"", "CS", "Smith", "101"}, e.State().Pending)
}

func TestPendingLengthInvariant(t *testing.T) {
	e, v, _ := newTestEditor(t)
	for _, table := range v.tables {
		require.NoError(t, e.SelectTable(table))
		assert.Len(t, e.State().Pending, len(e.Columns()), table)
	}
}

func TestSetField_RendersAcceptedEdits(t *testing.T) {
	e, v, _ := newTestEditor(t)

	require.True(t, e.SetField(1, "CS"))
	assert.Equal(t, "CS", v.state.Pending[1])

	require.False(t, e.SetField(3, "x"))
	assert.Equal(t, "", v.state.Pending[3])
}
