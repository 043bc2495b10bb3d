package types

import (
	"errors"
	"path/filepath"
)

// Config holds backend selection and parameters for Backend.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	DBFile  string `json:"db_file" yaml:"db_file"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultDBFile is the database file name used when Config.DBFile is empty.
const DefaultDBFile = "registrar.db"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDBFileInvalid  = errors.New("db file must be a plain file name")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DBFile != "" && filepath.Base(c.DBFile) != c.DBFile {
		return ErrDBFileInvalid
	}
	return nil
}

// DBPath returns the database file location inside DataDir.
func (c Config) DBPath() string {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	name := c.DBFile
	if name == "" {
		name = DefaultDBFile
	}
	return filepath.Join(dataDir, name)
}
