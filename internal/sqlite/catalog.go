package sqlite

import (
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// ListTables returns base relations in creation order followed by the system
// catalog. Internal sqlite_* relations (e.g. sqlite_sequence) are skipped.
func (b *Backend) ListTables() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(
		`SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
		ORDER BY rowid`)
	if err != nil {
		return nil, &types.StoreError{Op: "list tables", Err: err}
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &types.StoreError{Op: "scan table name", Err: err}
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.StoreError{Op: "list tables", Err: err}
	}

	return append(tables, types.SystemCatalog), nil
}

// ListColumns returns the columns of table in declaration order.
// Returns a *NotFoundError if the relation does not exist.
func (b *Backend) ListColumns(table string) ([]types.Column, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	return b.columnsLocked(table)
}

// columnsLocked reads table_info for table. The caller must hold b.mu.
func (b *Backend) columnsLocked(table string) ([]types.Column, error) {
	b.logger.Debug("list columns", "table", table)

	rows, err := b.db.Query(
		`SELECT cid, name, type, "notnull" FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, &types.StoreError{Op: "list columns", Err: err}
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var (
			cid      int
			name     string
			declared string
			notNull  int
		)
		if err := rows.Scan(&cid, &name, &declared, &notNull); err != nil {
			return nil, &types.StoreError{Op: "scan column", Err: err}
		}
		columns = append(columns, types.Column{
			Name:         name,
			Kind:         types.KindOf(name, declared),
			Index:        cid,
			DeclaredType: declared,
			NotNull:      notNull != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &types.StoreError{Op: "list columns", Err: err}
	}

	if len(columns) == 0 {
		return nil, &types.NotFoundError{Kind: "table", Name: table}
	}
	return columns, nil
}
