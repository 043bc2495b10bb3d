package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/registrar/internal/logging"
	"github.com/mesh-intelligence/registrar/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// cli carries global flag values and what PersistentPreRunE loads from them.
type cli struct {
	configDir string
	dataDir   string
	jsonOut   bool
	logLevel  string

	cfg    *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "registrar",
		Short: "Schema-driven record editor for the student registry",
		Long: `registrar edits the rows of a small student-registry database
(faculties, groups, students, benefits, relatives). The edit command opens a
terminal editor; the other commands perform one operation and exit.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.load,
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	root.PersistentFlags().StringVar(&c.configDir, "config-dir", "", "configuration directory (default: $REGISTRAR_CONFIG_DIR or the platform config dir)")
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "data directory (default: config data_dir, $REGISTRAR_DATA_DIR or the platform data dir)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (default: config log_level)")

	root.AddCommand(
		c.newInitCmd(),
		c.newTablesCmd(),
		c.newColumnsCmd(),
		c.newListCmd(),
		c.newCountCmd(),
		c.newAddCmd(),
		c.newUpdateCmd(),
		c.newDeleteCmd(),
		c.newExportCmd(),
		c.newImportCmd(),
		c.newSeedCmd(),
		c.newEditCmd(),
		c.newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// load reads config.yaml and builds the stderr logger every command shares.
func (c *cli) load(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(c.configDir)
	if err != nil {
		return err
	}
	c.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	c.cfg = cfg

	c.logger = logging.New(cmd.ErrOrStderr(), c.level(), cfg.GetString(cfgKeyLogFormat))
	return nil
}

// level is --log-level when set, else the configured level.
func (c *cli) level() string {
	if c.logLevel != "" {
		return c.logLevel
	}
	return c.cfg.GetString(cfgKeyLogLevel)
}

// resolveDataDir applies --data-dir > config data_dir > REGISTRAR_DATA_DIR >
// platform default.
func (c *cli) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(c.dataDir, c.cfg.GetString(cfgKeyDataDir))
}
