package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <table>",
		Short: "Print every row of a table",
		Long: `List prints the rows of a table in storage order.

Example:
  registrar list Faculty
  registrar list sqlite_master --json`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			return c.withBackend(func(b sqlite.Backend) error {
				columns, err := b.ListColumns(table)
				if err != nil {
					return err
				}
				rows, err := b.FetchAll(table)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if c.jsonOut {
					return printJSON(out, rowObjects(columns, rows))
				}
				if len(rows) == 0 {
					fmt.Fprintf(out, "No rows in %s.\n", table)
					return nil
				}
				lines := make([][]string, len(rows))
				for i, row := range rows {
					lines[i] = rowText(row, len(columns))
				}
				printTable(out, types.ColumnNames(columns), lines)
				fmt.Fprintf(out, "Total: %d row(s)\n", len(rows))
				return nil
			})
		},
	}
}

func (c *cli) newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <table>",
		Short: "Print the number of rows in a table",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			return c.withBackend(func(b sqlite.Backend) error {
				n, err := b.Count(table)
				if err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), map[string]any{"table": table, "count": n})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d records in %s\n", n, table)
				return nil
			})
		},
	}
}
