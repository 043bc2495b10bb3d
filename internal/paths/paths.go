// Package paths resolves where registrar keeps its configuration and its
// database file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory created under the platform base directories.
const AppDirName = "registrar"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "REGISTRAR_CONFIG_DIR"
	EnvDataDir   = "REGISTRAR_DATA_DIR"
)

// File names inside the resolved directories.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "registrar.log"
)

// platformDir holds platform lookups that tests override.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// base returns the platform base directory for one kind of file. On Linux
// xdgVar wins, falling back to home/xdgFallback. Other platforms use
// os.UserConfigDir for both kinds.
func base(xdgVar string, xdgFallback ...string) (string, error) {
	if platformDir.goos != "linux" {
		return platformDir.userConfigDir()
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return xdg, nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, xdgFallback...)...), nil
}

// DefaultConfigDir returns the platform default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/registrar (fallback ~/.config/registrar)
// macOS:   ~/Library/Application Support/registrar
// Windows: %APPDATA%/registrar
func DefaultConfigDir() (string, error) {
	dir, err := base("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// DefaultDataDir returns the platform default data directory.
//
// Linux:   $XDG_DATA_HOME/registrar (fallback ~/.local/share/registrar)
// Elsewhere the configuration directory is shared.
func DefaultDataDir() (string, error) {
	dir, err := base("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// ResolveConfigDir applies flag > REGISTRAR_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	return resolve(DefaultConfigDir, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir applies flag > config value > REGISTRAR_DATA_DIR >
// DefaultDataDir.
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(DefaultDataDir, flag, configValue, os.Getenv(EnvDataDir))
}

// resolve returns the first non-empty candidate as an absolute path, or the
// fallback when all are empty.
func resolve(fallback func() (string, error), candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	return fallback()
}

// ConfigFile returns the configuration file path inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// LogFile returns the path the terminal UI logs to inside dataDir.
func LogFile(dataDir string) string {
	return filepath.Join(dataDir, LogFileName)
}
