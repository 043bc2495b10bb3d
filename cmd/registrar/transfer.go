package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/sqlite"
)

func (c *cli) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <table> [file]",
		Short: "Write a table to a JSON Lines file",
		Long: `Export writes one JSON object per row, keyed by column name. The file
defaults to <data-dir>/<table>.jsonl and is replaced atomically.`,
		Args: rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			var path string
			if len(args) == 2 {
				path = args[1]
			} else {
				dataDir, err := c.resolveDataDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dataDir, table+".jsonl")
			}

			return c.withBackend(func(b sqlite.Backend) error {
				n, err := b.ExportJSONL(table, path)
				if err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), map[string]any{"table": table, "rows": n, "file": path})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d row(s) of %s to %s\n", n, table, path)
				return nil
			})
		},
	}
}

func (c *cli) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <table> <file>",
		Short: "Insert the rows of a JSON Lines file",
		Long: `Import inserts one row per JSON object. Identities in the file are
ignored and new ones assigned. Import stops at the first rejected record.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, path := args[0], args[1]
			return c.withBackend(func(b sqlite.Backend) error {
				n, err := b.ImportJSONL(table, path)
				if err != nil {
					return fmt.Errorf("imported %d row(s) before failing: %w", n, err)
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), map[string]any{"table": table, "rows": n})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d row(s) into %s\n", n, table)
				return nil
			})
		},
	}
}

func (c *cli) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a small linked demo dataset",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withBackend(func(b sqlite.Backend) error {
				n, err := b.Seed()
				if err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), map[string]any{"rows": n})
				}
				if n == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Faculty already holds rows; nothing seeded")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d row(s)\n", n)
				return nil
			})
		},
	}
}
