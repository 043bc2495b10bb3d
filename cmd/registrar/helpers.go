package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/internal/logging"
	"github.com/mesh-intelligence/registrar/internal/validate"
	"github.com/mesh-intelligence/registrar/pkg/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// attachBackend opens the configured database. The caller must defer
// Detach.
func (c *cli) attachBackend() (sqlite.Backend, error) {
	cfg, err := c.storeConfig()
	if err != nil {
		return nil, err
	}
	backend := sqlite.NewBackend(logging.Component(c.logger, logging.ComponentDatabase))
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// withBackend runs fn against an attached backend and always detaches.
func (c *cli) withBackend(fn func(sqlite.Backend) error) error {
	backend, err := c.attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()
	return fn(backend)
}

// exitCodeFor maps an error to the process exit code: user errors (bad
// input, constraint violations, unknown names) are 1, everything else 2.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case types.IsUserError(err), isUsageError(err):
		return exitUserError
	default:
		return exitSysError
	}
}

// usageError marks bad command-line syntax.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

func rangeArgs(min, max int) cobra.PositionalArgs {
	return usageArgs(cobra.RangeArgs(min, max))
}

func minimumArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.MinimumNArgs(n))
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{msg: err.Error()}
		}
		return nil
	}
}

// parseID parses a row identity argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, &types.ValidationError{Column: types.IdentityColumn, Value: s, Message: "not a valid row id"}
	}
	return id, nil
}

// parseAssignments applies column=value arguments over base, the field text
// of every column in order, and coerces the result exactly as the editor
// does on save.
func parseAssignments(columns []types.Column, base []string, args []string) (types.Values, error) {
	pending := make([]string, len(columns))
	copy(pending, base)

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c.Name] = i
	}

	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, &usageError{msg: fmt.Sprintf("invalid assignment %q (expected column=value)", arg)}
		}
		i, ok := index[name]
		if !ok {
			return nil, &types.NotFoundError{Kind: "column", Name: name}
		}
		if columns[i].Kind == types.KindIdentity {
			return nil, &types.ValidationError{Column: name, Value: value, Message: "assigned by the store"}
		}
		if seen[name] {
			return nil, &types.ValidationError{Column: name, Value: value, Message: "assigned more than once"}
		}
		seen[name] = true
		pending[i] = value
	}
	return validate.Coerce(columns, pending)
}

// rowText renders a row as field text.
func rowText(row types.Row, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(row) {
			out[i] = types.CellText(row[i])
		}
	}
	return out
}

// rowObjects pairs cells with column names for JSON output.
func rowObjects(columns []types.Column, rows []types.Row) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]any, len(columns))
		for i, c := range columns {
			if i < len(row) {
				obj[c.Name] = row[i]
			}
		}
		out = append(out, obj)
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printTable writes aligned columns, trimming trailing padding.
func printTable(w io.Writer, header []string, lines [][]string) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(header, "\t"))
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(rule, "\t"))
	for _, l := range lines {
		fmt.Fprintln(tw, strings.Join(l, "\t"))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
