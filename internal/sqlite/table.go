package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// FetchAll returns every row of table ordered by rowid, so the order is stable
// for the lifetime of the file. Blob cells are returned as strings.
func (b *Backend) FetchAll(table string) ([]types.Row, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	columns, err := b.columnsLocked(table)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("fetch all", "table", table)

	rows, err := b.db.Query(fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY rowid", selectList(columns), quoteIdent(table)))
	if err != nil {
		return nil, classify(table, "select", err)
	}
	defer rows.Close()

	var out []types.Row
	for rows.Next() {
		row, err := scanRow(rows, len(columns))
		if err != nil {
			return nil, &types.StoreError{Op: "scan " + table, Err: err}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(table, "select", err)
	}
	return out, nil
}

// Insert adds a row built from values and returns the assigned identity.
// Every non-identity column must be present in values with a non-nil value;
// a missing one yields a *ValidationError before any statement runs.
func (b *Backend) Insert(table string, values types.Values) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return 0, err
	}
	return b.insertLocked(table, values)
}

// insertLocked performs Insert. The caller must hold b.mu write lock.
func (b *Backend) insertLocked(table string, values types.Values) (int64, error) {
	if types.IsSystemCatalog(table) {
		return 0, types.ErrReadOnlyTable
	}
	columns, err := b.columnsLocked(table)
	if err != nil {
		return 0, err
	}
	names, args, err := bindValues(columns, values)
	if err != nil {
		return 0, err
	}

	quoted := make([]string, len(names))
	placeholders := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdent(n)
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	res, err := b.db.Exec(insertSQL, args...)
	if err != nil {
		b.logger.Warn("insert failed", "table", table, "error", err)
		return 0, classify(table, "insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &types.StoreError{Op: "insert " + table, Err: err}
	}

	b.logger.Debug("insert", "table", table, "id", id)
	return id, nil
}

// Update overwrites the non-identity columns of the row with the given id.
// Returns a *NotFoundError if the row does not exist; it never inserts.
func (b *Backend) Update(table string, id int64, values types.Values) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}
	if types.IsSystemCatalog(table) {
		return types.ErrReadOnlyTable
	}
	columns, err := b.columnsLocked(table)
	if err != nil {
		return err
	}
	names, args, err := bindValues(columns, values)
	if err != nil {
		return err
	}

	assignments := make([]string, len(names))
	for i, n := range names {
		assignments[i] = quoteIdent(n) + " = ?"
	}
	updateSQL := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		quoteIdent(table), strings.Join(assignments, ", "), quoteIdent(types.IdentityColumn))

	res, err := b.db.Exec(updateSQL, append(args, id)...)
	if err != nil {
		b.logger.Warn("update failed", "table", table, "id", id, "error", err)
		return classify(table, "update", err)
	}
	if err := expectOneRow(res, table, id); err != nil {
		return err
	}

	b.logger.Debug("update", "table", table, "id", id)
	return nil
}

// Delete removes the row with the given id. Rows still referenced through a
// foreign key cannot be deleted and yield an *IntegrityError.
func (b *Backend) Delete(table string, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}
	if types.IsSystemCatalog(table) {
		return types.ErrReadOnlyTable
	}
	if _, err := b.columnsLocked(table); err != nil {
		return err
	}

	res, err := b.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?",
		quoteIdent(table), quoteIdent(types.IdentityColumn)), id)
	if err != nil {
		b.logger.Warn("delete failed", "table", table, "id", id, "error", err)
		return classify(table, "delete", err)
	}
	if err := expectOneRow(res, table, id); err != nil {
		return err
	}

	b.logger.Debug("delete", "table", table, "id", id)
	return nil
}

// Count returns the number of rows in table.
func (b *Backend) Count(table string) (int64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return 0, err
	}
	if _, err := b.columnsLocked(table); err != nil {
		return 0, err
	}

	var n int64
	err := b.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(table))).Scan(&n)
	if err != nil {
		return 0, classify(table, "count", err)
	}
	return n, nil
}

// bindValues orders values by column position and checks that every
// non-identity column has a value and that values names no unknown column.
func bindValues(columns []types.Column, values types.Values) ([]string, []any, error) {
	known := make(map[string]bool, len(columns))
	var (
		names []string
		args  []any
	)
	for _, c := range columns {
		known[c.Name] = true
		if c.Kind == types.KindIdentity {
			if _, ok := values[c.Name]; ok {
				return nil, nil, &types.ValidationError{
					Column:  c.Name,
					Message: "identity is assigned by the store",
				}
			}
			continue
		}
		v, ok := values[c.Name]
		if !ok || v == nil {
			return nil, nil, &types.ValidationError{Column: c.Name, Message: "value is required"}
		}
		names = append(names, c.Name)
		args = append(args, v)
	}
	for name := range values {
		if !known[name] {
			return nil, nil, &types.NotFoundError{Kind: "column", Name: name}
		}
	}
	return names, args, nil
}

// selectList renders the quoted column list for a SELECT.
func selectList(columns []types.Column) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c.Name)
	}
	return strings.Join(quoted, ", ")
}

// scanRow reads one result row of width n.
func scanRow(rows *sql.Rows, n int) (types.Row, error) {
	cells := make([]any, n)
	ptrs := make([]any, n)
	for i := range cells {
		ptrs[i] = &cells[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	for i, c := range cells {
		if raw, ok := c.([]byte); ok {
			cells[i] = string(raw)
		}
	}
	return types.Row(cells), nil
}

// expectOneRow turns a zero rows-affected result into a *NotFoundError.
func expectOneRow(res sql.Result, table string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &types.StoreError{Op: "rows affected", Err: err}
	}
	if n == 0 {
		return &types.NotFoundError{Kind: "row", Name: rowRef(table, id)}
	}
	return nil
}
