package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/registrar/internal/paths"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyDBFile    = "db_file"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// fileConfig is the layout of config.yaml.
type fileConfig struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	DBFile    string `yaml:"db_file"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Backend:   types.BackendSQLite,
		DBFile:    types.DefaultDBFile,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run. A missing file is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	def := defaultFileConfig()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyDBFile, def.DBFile)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile writes config.yaml with default values unless it
// exists.
func ensureDefaultConfigFile(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	path := paths.ConfigFile(configDir)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := renderConfig(defaultFileConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func renderConfig(fc fileConfig) ([]byte, error) {
	data, err := yaml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append([]byte("# registrar configuration\n"), data...), nil
}

// storeConfig builds the backend configuration from the loaded settings.
func (c *cli) storeConfig() (types.Config, error) {
	dataDir, err := c.resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend: c.cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
		DBFile:  c.cfg.GetString(cfgKeyDBFile),
	}, nil
}
