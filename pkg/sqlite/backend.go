// Package sqlite exposes the SQLite record store to other modules while
// keeping its implementation internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/registrar/internal/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Backend is a record store bound to one SQLite file.
type Backend interface {
	types.Repository

	// Attach opens the database named by config and creates the schema if
	// it is absent.
	Attach(config types.Config) error

	// Detach releases the database. Calling it twice is harmless.
	Detach() error

	// Seed inserts a small linked demo dataset unless Faculty holds rows.
	Seed() (int, error)

	// ExportJSONL writes a table to a JSON Lines file.
	ExportJSONL(table, path string) (int, error)

	// ImportJSONL inserts the objects of a JSON Lines file into a table.
	ImportJSONL(table, path string) (int, error)
}

// NewBackend creates a detached SQLite backend that logs through logger.
//
// Example:
//
//	backend := sqlite.NewBackend(nil)
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/registrar",
//	})
//	defer backend.Detach()
func NewBackend(logger *slog.Logger) Backend {
	return sqlite.NewBackend(logger)
}
