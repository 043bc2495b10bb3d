package editor

import (
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// stubRepo is an in-memory Repository holding a single Faculty table, with
// injectable failures.
type stubRepo struct {
	rows   []types.Row
	nextID int64

	listTablesErr error
	insertErr     error
	countErr      error
}

func newStubRepo() *stubRepo {
	return &stubRepo{nextID: 1}
}

var stubColumns = []types.Column{
	{Name: "id", Kind: types.KindIdentity, Index: 0, DeclaredType: "INTEGER"},
	{Name: "name", Kind: types.KindText, Index: 1, DeclaredType: "TEXT", NotNull: true},
	{Name: "dean", Kind: types.KindText, Index: 2, DeclaredType: "TEXT", NotNull: true},
	{Name: "office", Kind: types.KindInteger, Index: 3, DeclaredType: "INTEGER", NotNull: true},
}

func (r *stubRepo) ListTables() ([]string, error) {
	if r.listTablesErr != nil {
		return nil, r.listTablesErr
	}
	return []string{types.TableFaculty, types.SystemCatalog}, nil
}

func (r *stubRepo) ListColumns(table string) ([]types.Column, error) {
	if table != types.TableFaculty {
		return nil, &types.NotFoundError{Kind: "table", Name: table}
	}
	return append([]types.Column(nil), stubColumns...), nil
}

func (r *stubRepo) FetchAll(table string) ([]types.Row, error) {
	if table != types.TableFaculty {
		return nil, &types.NotFoundError{Kind: "table", Name: table}
	}
	out := make([]types.Row, len(r.rows))
	for i, row := range r.rows {
		out[i] = row.Clone()
	}
	return out, nil
}

func (r *stubRepo) Insert(table string, values types.Values) (int64, error) {
	if r.insertErr != nil {
		return 0, r.insertErr
	}
	id := r.nextID
	r.nextID++
	r.rows = append(r.rows, types.Row{id, values["name"], values["dean"], values["office"]})
	return id, nil
}

func (r *stubRepo) Update(table string, id int64, values types.Values) error {
	for i, row := range r.rows {
		if rid, _ := row.ID(); rid == id {
			r.rows[i] = types.Row{id, values["name"], values["dean"], values["office"]}
			return nil
		}
	}
	return &types.NotFoundError{Kind: "row", Name: table}
}

func (r *stubRepo) Delete(table string, id int64) error {
	for i, row := range r.rows {
		if rid, _ := row.ID(); rid == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return &types.NotFoundError{Kind: "row", Name: table}
}

func (r *stubRepo) Count(table string) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.rows)), nil
}
