package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

func (c *cli) newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the relations, system catalog last",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withBackend(func(b sqlite.Backend) error {
				tables, err := b.ListTables()
				if err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), tables)
				}
				for _, t := range tables {
					fmt.Fprintln(cmd.OutOrStdout(), t)
				}
				return nil
			})
		},
	}
}

func (c *cli) newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns <table>",
		Short: "Show the columns of a table",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withBackend(func(b sqlite.Backend) error {
				columns, err := b.ListColumns(args[0])
				if err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), columnObjects(columns))
				}
				lines := make([][]string, len(columns))
				for i, col := range columns {
					lines[i] = []string{
						strconv.Itoa(col.Index), col.Name, col.Kind.String(),
						col.DeclaredType, strconv.FormatBool(col.NotNull),
					}
				}
				printTable(cmd.OutOrStdout(), []string{"#", "NAME", "KIND", "DECLARED", "NOT NULL"}, lines)
				return nil
			})
		},
	}
}

func columnObjects(columns []types.Column) []map[string]any {
	out := make([]map[string]any, len(columns))
	for i, col := range columns {
		out[i] = map[string]any{
			"index":    col.Index,
			"name":     col.Name,
			"kind":     col.Kind.String(),
			"declared": col.DeclaredType,
			"not_null": col.NotNull,
		}
	}
	return out
}
