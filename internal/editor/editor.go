// Package editor implements the selection and edit state machine that keeps
// entry fields, the row list and the store consistent.
//
// The editor is either creating a new row (ModeCreate) or bound to one
// persisted row (ModeEdit). Each user action is a named transition method.
// Transitions are synchronous and the Editor is not safe for concurrent use;
// it is driven from a single event loop.
package editor

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/registrar/internal/validate"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Editor owns the active table, the mode and the pending field values.
type Editor struct {
	repo   types.Repository
	view   View
	logger *slog.Logger

	tables  []string
	table   string
	columns []types.Column
	rows    []types.Row

	mode     Mode
	rowID    int64
	selected int // index of the bound row in rows, -1 in ModeCreate
	cursor   int // highlighted row, -1 for none
	pending  []string
}

// New creates an editor over repo that renders to view. Every log line of the
// editor carries a session id so one editing session can be followed.
func New(repo types.Repository, view View, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Editor{
		repo:     repo,
		view:     view,
		logger:   logger.With("session", uuid.Must(uuid.NewV7()).String()),
		selected: -1,
		cursor:   -1,
	}
}

// Start lists the tables and selects the first one. Catalog failures are
// returned unreported; the caller must not continue without a catalog.
func (e *Editor) Start() error {
	tables, err := e.repo.ListTables()
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	if len(tables) == 0 {
		return &types.NotFoundError{Kind: "table", Name: "any"}
	}
	e.tables = tables
	e.view.RenderTables(slices.Clone(tables))
	return e.SelectTable(tables[0])
}

// SelectTable loads the columns and rows of name and resets to ModeCreate
// with blank fields. Selecting the system catalog disables New, Save and
// Delete.
func (e *Editor) SelectTable(name string) error {
	columns, err := e.repo.ListColumns(name)
	if err != nil {
		return fmt.Errorf("load columns of %s: %w", name, err)
	}
	rows, err := e.repo.FetchAll(name)
	if err != nil {
		return fmt.Errorf("load rows of %s: %w", name, err)
	}

	e.table = name
	e.columns = columns
	e.rows = rows
	e.logger.Debug("table selected", "table", name, "rows", len(rows))

	e.view.RenderColumns(name, slices.Clone(columns))
	e.view.RenderRows(slices.Clone(rows))
	e.reset()
	return nil
}

// New clears the fields and returns to ModeCreate. The identity field stays
// blank until the store assigns one.
func (e *Editor) New() error {
	if !e.Enabled(CmdNew) {
		return types.ErrCommandDisabled
	}
	e.reset()
	return nil
}

// SelectRow binds the editor to row i: the row's cells are copied into the
// fields and the mode becomes ModeEdit with the row's identity.
func (e *Editor) SelectRow(i int) error {
	if e.readOnly() {
		return types.ErrCommandDisabled
	}
	if i < 0 || i >= len(e.rows) {
		return &types.NotFoundError{Kind: "row", Name: fmt.Sprintf("%s#%d", e.table, i)}
	}
	if _, ok := e.rows[i].ID(); !ok {
		return &types.NotFoundError{Kind: "row", Name: fmt.Sprintf("%s#%d", e.table, i)}
	}
	e.enterEdit(i)
	return nil
}

// Highlight records the row under the view's cursor. Out-of-range indexes
// clear the highlight. The mode does not change.
func (e *Editor) Highlight(i int) {
	if i < 0 || i >= len(e.rows) {
		e.cursor = -1
	} else {
		e.cursor = i
	}
	e.render()
}

// SetField applies a keystroke edit: text is the full field content after
// the edit. It reports whether the edit was accepted. The identity field and
// every field of the system catalog reject edits; INTEGER fields accept only
// text that passes validate.AcceptIntegerEdit.
func (e *Editor) SetField(col int, text string) bool {
	if e.readOnly() || col < 0 || col >= len(e.columns) {
		return false
	}
	c := e.columns[col]
	switch c.Kind {
	case types.KindIdentity:
		return false
	case types.KindInteger:
		if !validate.AcceptIntegerEdit(text) {
			return false
		}
	case types.KindText:
	}
	e.pending[col] = text
	e.render()
	return true
}

// Save persists the fields. In ModeCreate the row is inserted, appended to
// the list and the editor moves to ModeEdit on it. In ModeEdit the bound row
// is updated in place. On failure the error is reported and returned, and
// the mode and fields are left as they were so the user can correct them.
func (e *Editor) Save() error {
	if !e.Enabled(CmdSave) {
		return types.ErrCommandDisabled
	}

	values, err := validate.Coerce(e.columns, e.pending)
	if err != nil {
		return e.fail("save", err)
	}

	switch e.mode {
	case ModeCreate:
		id, err := e.repo.Insert(e.table, values)
		if err != nil {
			return e.fail("insert", err)
		}
		e.rows = append(e.rows, e.buildRow(id, values))
		e.logger.Info("row created", "table", e.table, "id", id)
		e.view.RenderRows(slices.Clone(e.rows))
		e.enterEdit(len(e.rows) - 1)

	case ModeEdit:
		if err := e.repo.Update(e.table, e.rowID, values); err != nil {
			return e.fail("update", err)
		}
		e.rows[e.selected] = e.buildRow(e.rowID, values)
		e.logger.Info("row updated", "table", e.table, "id", e.rowID)
		e.view.RenderRows(slices.Clone(e.rows))
		e.enterEdit(e.selected)
	}
	return nil
}

// Delete removes the bound row from the store and the list, then returns to
// ModeCreate. It is disabled in ModeCreate and on the system catalog.
func (e *Editor) Delete() error {
	if !e.Enabled(CmdDelete) {
		return types.ErrCommandDisabled
	}

	if err := e.repo.Delete(e.table, e.rowID); err != nil {
		return e.fail("delete", err)
	}
	e.logger.Info("row deleted", "table", e.table, "id", e.rowID)

	e.rows = slices.Delete(e.rows, e.selected, e.selected+1)
	e.view.RenderRows(slices.Clone(e.rows))
	e.reset()
	return nil
}

// FocusChanged handles focus leaving the row list: the fields are
// re-synchronized with the highlighted row, which may have moved through
// keyboard navigation. It does nothing on the system catalog or without a
// highlight.
func (e *Editor) FocusChanged() error {
	if e.readOnly() || e.cursor < 0 {
		return nil
	}
	return e.SelectRow(e.cursor)
}

// Count reports the number of rows in the active table on the informational
// channel. Failures go to the same channel and do not end the session.
func (e *Editor) Count() error {
	if !e.Enabled(CmdCount) {
		return types.ErrCommandDisabled
	}
	n, err := e.repo.Count(e.table)
	if err != nil {
		e.logger.Warn("count failed", "table", e.table, "error", err)
		e.view.ReportInfo(fmt.Sprintf("count failed for %s: %v", e.table, err))
		return err
	}
	e.view.ReportInfo(fmt.Sprintf("%d records in %s", n, e.table))
	return nil
}

// Enabled reports whether cmd is currently available.
func (e *Editor) Enabled(cmd Command) bool {
	if e.table == "" {
		return false
	}
	switch cmd {
	case CmdNew, CmdSave:
		return !e.readOnly()
	case CmdDelete:
		return !e.readOnly() && e.mode == ModeEdit
	case CmdCount:
		return true
	default:
		return false
	}
}

// State returns a snapshot for rendering.
func (e *Editor) State() State {
	enabled := make(map[Command]bool, len(Commands))
	for _, cmd := range Commands {
		enabled[cmd] = e.Enabled(cmd)
	}
	return State{
		Table:       e.table,
		Mode:        e.mode,
		RowID:       e.rowID,
		Pending:     slices.Clone(e.pending),
		Highlighted: e.cursor,
		ReadOnly:    e.readOnly(),
		Enabled:     enabled,
	}
}

// Tables returns the table list loaded by Start.
func (e *Editor) Tables() []string { return slices.Clone(e.tables) }

// Columns returns the columns of the active table.
func (e *Editor) Columns() []types.Column { return slices.Clone(e.columns) }

// Rows returns the row list as currently shown.
func (e *Editor) Rows() []types.Row { return slices.Clone(e.rows) }

// reset is the transition into ModeCreate: blank fields, no bound row, no
// highlight.
func (e *Editor) reset() {
	e.pending = make([]string, len(e.columns))
	e.mode = ModeCreate
	e.rowID = 0
	e.selected = -1
	e.cursor = -1
	e.render()
}

// enterEdit is the transition into ModeEdit on rows[i]. SelectRow and a
// successful Save both end here.
func (e *Editor) enterEdit(i int) {
	row := e.rows[i]
	id, _ := row.ID()

	pending := make([]string, len(e.columns))
	for c := range pending {
		if c < len(row) {
			pending[c] = types.CellText(row[c])
		}
	}

	e.pending = pending
	e.mode = ModeEdit
	e.rowID = id
	e.selected = i
	e.cursor = i
	e.render()
}

// buildRow lays out coerced values in column order with id in the identity
// cell.
func (e *Editor) buildRow(id int64, values types.Values) types.Row {
	row := make(types.Row, len(e.columns))
	for i, c := range e.columns {
		if c.Kind == types.KindIdentity {
			row[i] = id
			continue
		}
		row[i] = values[c.Name]
	}
	return row
}

// fail reports err to the view and returns it. State is not touched.
func (e *Editor) fail(op string, err error) error {
	if types.IsUserError(err) {
		e.logger.Info(op+" rejected", "table", e.table, "error", err)
	} else {
		e.logger.Error(op+" failed", "table", e.table, "error", err)
	}
	e.view.ReportError(err.Error())
	return err
}

func (e *Editor) readOnly() bool {
	return types.IsSystemCatalog(e.table)
}

func (e *Editor) render() {
	e.view.RenderState(e.State())
}
