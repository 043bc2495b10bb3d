package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/internal/paths"
)

func (c *cli) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := c.resolveDataDir()
			if err != nil {
				return err
			}
			effective := fileConfig{
				Backend:   c.cfg.GetString(cfgKeyBackend),
				DataDir:   dataDir,
				DBFile:    c.cfg.GetString(cfgKeyDBFile),
				LogLevel:  c.level(),
				LogFormat: c.cfg.GetString(cfgKeyLogFormat),
			}

			out := cmd.OutOrStdout()
			if c.jsonOut {
				return printJSON(out, map[string]string{
					"config_file": paths.ConfigFile(c.configDir),
					"backend":     effective.Backend,
					"data_dir":    effective.DataDir,
					"db_file":     effective.DBFile,
					"log_level":   effective.LogLevel,
					"log_format":  effective.LogFormat,
				})
			}
			data, err := renderConfig(effective)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
