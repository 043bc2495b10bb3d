package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

func (c *cli) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <table> <column=value>...",
		Short: "Insert a row",
		Long: `Add inserts a row. Every column except id must be assigned; values are
checked the same way the editor checks its fields.

Example:
  registrar add Faculty name=CS dean=Smith office=101
  registrar add StudGroup name=11 FacultyId=1`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			return c.withBackend(func(b sqlite.Backend) error {
				columns, err := b.ListColumns(table)
				if err != nil {
					return err
				}
				values, err := parseAssignments(columns, nil, args[1:])
				if err != nil {
					return err
				}
				id, err := b.Insert(table, values)
				if err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), map[string]any{"table": table, "id": id})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s/%d\n", table, id)
				return nil
			})
		},
	}
}

func (c *cli) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <table> <id> <column=value>...",
		Short: "Change columns of a row",
		Long: `Update overwrites the assigned columns of one row. Columns not named keep
their current values.

Example:
  registrar update Faculty 1 dean=Jones`,
		Args: minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			return c.withBackend(func(b sqlite.Backend) error {
				columns, err := b.ListColumns(table)
				if err != nil {
					return err
				}
				current, err := findRow(b, table, id)
				if err != nil {
					return err
				}
				values, err := parseAssignments(columns, rowText(current, len(columns)), args[2:])
				if err != nil {
					return err
				}
				if err := b.Update(table, id, values); err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), map[string]any{"table": table, "id": id})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s/%d\n", table, id)
				return nil
			})
		},
	}
}

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <table> <id>",
		Short: "Remove a row",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			return c.withBackend(func(b sqlite.Backend) error {
				if err := b.Delete(table, id); err != nil {
					return err
				}
				if c.jsonOut {
					return printJSON(cmd.OutOrStdout(), map[string]any{"table": table, "id": id})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s/%d\n", table, id)
				return nil
			})
		},
	}
}

// findRow returns the row of table with the given identity.
func findRow(b sqlite.Backend, table string, id int64) (types.Row, error) {
	rows, err := b.FetchAll(table)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if rid, ok := row.ID(); ok && rid == id {
			return row, nil
		}
	}
	return nil, &types.NotFoundError{Kind: "row", Name: fmt.Sprintf("%s/%d", table, id)}
}
