package sqlite

import (
	"errors"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// classify maps a driver error to the registrar error taxonomy. Constraint
// violations (foreign key, NOT NULL, UNIQUE, CHECK) become *IntegrityError;
// everything else is a *StoreError.
func classify(table, op string, err error) error {
	if err == nil {
		return nil
	}
	var se *sqlitedrv.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return &types.IntegrityError{Table: table, Op: op, Err: err}
	}
	return &types.StoreError{Op: op + " " + table, Err: err}
}
