package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/internal/paths"
	"github.com/mesh-intelligence/registrar/pkg/sqlite"
)

func (c *cli) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and the database",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.storeConfig()
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			dbPath := cfg.DBPath()

			// Attaching creates the data directory, the file and the schema.
			if err := c.withBackend(func(sqlite.Backend) error { return nil }); err != nil {
				return fmt.Errorf("init: %w", err)
			}

			out := cmd.OutOrStdout()
			if c.jsonOut {
				return printJSON(out, map[string]string{
					"config":   paths.ConfigFile(c.configDir),
					"database": dbPath,
				})
			}
			fmt.Fprintln(out, "registrar initialized")
			fmt.Fprintln(out, "  config:  ", paths.ConfigFile(c.configDir))
			fmt.Fprintln(out, "  database:", dbPath)
			return nil
		},
	}
}
