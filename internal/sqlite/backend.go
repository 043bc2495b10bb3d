package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Backend implements types.Catalog and types.Store over a single SQLite file.
// The connection is acquired by Attach and released by Detach.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *slog.Logger
}

// NewBackend creates a new SQLite backend instance that logs through logger.
// A nil logger discards output. The backend is not attached; call Attach with
// a Config to initialize.
func NewBackend(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Backend{logger: logger}
}

// Attach opens the database file named by config, enables foreign keys, and
// creates the fixed schema if it is absent. Creates DataDir if needed.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dbPath := config.DBPath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return &types.StoreError{Op: "create data dir", Err: err}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return &types.StoreError{Op: "open database", Err: err}
	}

	// foreign_keys is per connection; a single connection keeps it in force
	// for every statement and matches the one-writer model.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return &types.StoreError{Op: "enable foreign keys", Err: err}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return &types.StoreError{Op: "create schema", Err: err}
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	b.logger.Debug("attached", "path", dbPath)
	return nil
}

// Detach releases the database connection. After Detach, all operations
// return ErrDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return &types.StoreError{Op: "close database", Err: err}
		}
		b.db = nil
	}

	b.attached = false
	b.logger.Debug("detached", "path", b.config.DBPath())
	return nil
}

// Path returns the database file location of the current configuration.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.DBPath()
}

// checkAttached returns ErrDetached when no connection is open.
// The caller must hold b.mu.
func (b *Backend) checkAttached() error {
	if !b.attached {
		return types.ErrDetached
	}
	return nil
}

// quoteIdent quotes a table or column name for interpolation into SQL.
func quoteIdent(name string) string {
	out := make([]byte, 0, len(name)+2)
	out = append(out, '"')
	for i := 0; i < len(name); i++ {
		if name[i] == '"' {
			out = append(out, '"')
		}
		out = append(out, name[i])
	}
	out = append(out, '"')
	return string(out)
}

// rowRef names a single row for NotFoundError messages.
func rowRef(table string, id int64) string {
	return fmt.Sprintf("%s/%d", table, id)
}
