// Package tui is a terminal front end for the record editor. App implements
// editor.View: it draws what the editor renders and forwards keystrokes to
// the editor's transitions. The only state it keeps is which pane has focus
// and where its cursors are.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/registrar/internal/editor"
	"github.com/mesh-intelligence/registrar/internal/logging"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Focus represents which pane is focused.
type Focus int

const (
	FocusTables Focus = iota
	FocusRows
	FocusFields
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusTables:
		return "tables"
	case FocusRows:
		return "rows"
	case FocusFields:
		return "fields"
	default:
		return "unknown"
	}
}

// App is the bubbletea model of the editor screen.
type App struct {
	ed     *editor.Editor
	logger *slog.Logger
	keys   KeyMap

	width, height int

	// Last rendering received from the editor.
	tables  []string
	table   string
	columns []types.Column
	rows    []types.Row
	state   editor.State

	focus       Focus
	tableCursor int
	fieldCursor int

	message  string
	isError  bool
	showHelp bool
}

// New creates the screen and the editor behind it. Both derive their
// component loggers from logger.
func New(repo types.Repository, logger *slog.Logger) *App {
	a := &App{
		logger: logging.Component(logger, logging.ComponentTUI),
		keys:   DefaultKeyMap(),
		width:  100,
		height: 30,
		focus:  FocusTables,
	}
	a.ed = editor.New(repo, a, logging.Component(logger, logging.ComponentEditor))
	return a
}

// Start loads the catalog and selects the first table. It must succeed
// before the program runs.
func (a *App) Start() error {
	return a.ed.Start()
}

// Run starts the editor and blocks until the user quits.
func Run(repo types.Repository, logger *slog.Logger) error {
	a := New(repo, logger)
	if err := a.Start(); err != nil {
		return err
	}
	if _, err := tea.NewProgram(a, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// RenderTables implements editor.View.
func (a *App) RenderTables(tables []string) {
	a.tables = tables
	a.tableCursor = 0
}

// RenderColumns implements editor.View.
func (a *App) RenderColumns(table string, columns []types.Column) {
	a.table = table
	a.columns = columns
	a.fieldCursor = 0
	for i, c := range columns {
		if c.Editable() {
			a.fieldCursor = i
			break
		}
	}
	for i, t := range a.tables {
		if t == table {
			a.tableCursor = i
		}
	}
}

// RenderRows implements editor.View.
func (a *App) RenderRows(rows []types.Row) { a.rows = rows }

// RenderState implements editor.View.
func (a *App) RenderState(state editor.State) { a.state = state }

// ReportError implements editor.View.
func (a *App) ReportError(message string) {
	a.message, a.isError = message, true
}

// ReportInfo implements editor.View.
func (a *App) ReportInfo(message string) {
	a.message, a.isError = message, false
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}
	if a.showHelp {
		if key.Matches(msg, a.keys.Help) || msg.Type == tea.KeyEsc {
			a.showHelp = false
		}
		return a, nil
	}

	// Printable input goes to the focused field before any binding.
	if a.focus == FocusFields {
		switch msg.Type {
		case tea.KeyRunes:
			a.typeText(string(msg.Runes))
			return a, nil
		case tea.KeySpace:
			a.typeText(" ")
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	case key.Matches(msg, a.keys.NextPane):
		a.moveFocus((a.focus + 1) % focusCount)
	case key.Matches(msg, a.keys.PrevPane):
		a.moveFocus((a.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, a.keys.Up):
		a.handleUp()
	case key.Matches(msg, a.keys.Down):
		a.handleDown()
	case key.Matches(msg, a.keys.Select):
		a.handleSelect()
	case key.Matches(msg, a.keys.Erase):
		a.erase()
	case key.Matches(msg, a.keys.New):
		a.run(editor.CmdNew, a.ed.New)
	case key.Matches(msg, a.keys.Save):
		a.run(editor.CmdSave, a.ed.Save)
	case key.Matches(msg, a.keys.Delete):
		a.run(editor.CmdDelete, a.ed.Delete)
	case key.Matches(msg, a.keys.Count):
		a.run(editor.CmdCount, a.ed.Count)
	}
	return a, nil
}

// moveFocus changes the focused pane. Leaving the row list re-synchronizes
// the fields with the highlighted row.
func (a *App) moveFocus(to Focus) {
	from := a.focus
	a.focus = to
	if from == FocusRows && to != FocusRows {
		if err := a.ed.FocusChanged(); err != nil {
			a.ReportError(err.Error())
		}
	}
}

func (a *App) handleUp() {
	switch a.focus {
	case FocusTables:
		if a.tableCursor > 0 {
			a.tableCursor--
		}
	case FocusRows:
		if a.state.Highlighted > 0 {
			a.ed.Highlight(a.state.Highlighted - 1)
		}
	case FocusFields:
		if a.fieldCursor > 0 {
			a.fieldCursor--
		}
	}
}

func (a *App) handleDown() {
	switch a.focus {
	case FocusTables:
		if a.tableCursor < len(a.tables)-1 {
			a.tableCursor++
		}
	case FocusRows:
		if a.state.Highlighted < len(a.rows)-1 {
			a.ed.Highlight(a.state.Highlighted + 1)
		}
	case FocusFields:
		if a.fieldCursor < len(a.columns)-1 {
			a.fieldCursor++
		}
	}
}

func (a *App) handleSelect() {
	switch a.focus {
	case FocusTables:
		if a.tableCursor >= len(a.tables) {
			return
		}
		a.message = ""
		if err := a.ed.SelectTable(a.tables[a.tableCursor]); err != nil {
			a.ReportError(err.Error())
			return
		}
		a.focus = FocusRows
	case FocusRows:
		if a.state.Highlighted < 0 {
			return
		}
		if err := a.ed.SelectRow(a.state.Highlighted); err != nil && !errors.Is(err, types.ErrCommandDisabled) {
			a.ReportError(err.Error())
			return
		}
		if !a.state.ReadOnly {
			a.focus = FocusFields
		}
	case FocusFields:
		a.run(editor.CmdSave, a.ed.Save)
	}
}

// run invokes a command transition. The editor reports its own failures;
// only a disabled command needs a message here.
func (a *App) run(cmd editor.Command, fn func() error) {
	a.message = ""
	err := fn()
	if errors.Is(err, types.ErrCommandDisabled) {
		a.ReportInfo(cmd.String() + " is not available here")
	}
	a.logger.Debug("command", "cmd", cmd.String(), "table", a.table, "mode", a.state.Mode.String(), "error", err)
}

func (a *App) typeText(text string) {
	col := a.fieldCursor
	if col >= len(a.state.Pending) {
		return
	}
	a.ed.SetField(col, a.state.Pending[col]+text)
}

func (a *App) erase() {
	if a.focus != FocusFields {
		return
	}
	col := a.fieldCursor
	if col >= len(a.state.Pending) {
		return
	}
	r := []rune(a.state.Pending[col])
	if len(r) == 0 {
		return
	}
	a.ed.SetField(col, string(r[:len(r)-1]))
}

// View implements tea.Model.
func (a *App) View() string {
	if a.showHelp {
		return a.renderHelp()
	}

	tablesWidth := a.width / 5
	fieldsWidth := a.width / 3
	rowsWidth := a.width - tablesWidth - fieldsWidth - 6
	contentHeight := a.height - 5

	var b strings.Builder
	b.WriteString(titleStyle.Render("registrar") + "  " + dimItemStyle.Render(a.table))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderTablesPane(tablesWidth, contentHeight),
		a.renderRowsPane(rowsWidth, contentHeight),
		a.renderFieldsPane(fieldsWidth, contentHeight),
	))
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a *App) pane(f Focus) lipgloss.Style {
	if a.focus == f {
		return focusedPaneStyle
	}
	return paneStyle
}

func (a *App) renderTablesPane(width, height int) string {
	var content strings.Builder
	content.WriteString(paneHeaderStyle.Render("Tables"))
	content.WriteString("\n")

	for i, t := range a.tables {
		switch {
		case i == a.tableCursor && a.focus == FocusTables:
			content.WriteString(selectedItemStyle.Render("> " + t))
		case t == a.table:
			content.WriteString(selectedItemStyle.Render("  " + t))
		default:
			content.WriteString(normalItemStyle.Render("  " + t))
		}
		content.WriteString("\n")
	}
	return a.pane(FocusTables).Width(width).Height(height).Render(content.String())
}

func (a *App) renderRowsPane(width, height int) string {
	var content strings.Builder
	content.WriteString(tableHeaderStyle.Render(strings.Join(types.ColumnNames(a.columns), " | ")))
	content.WriteString("\n")

	if len(a.rows) == 0 {
		content.WriteString(dimItemStyle.Render("No rows"))
	}
	for i, row := range a.rows {
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = types.CellText(v)
		}
		line := strings.Join(cells, " | ")

		marker := "  "
		if i == a.state.Highlighted {
			marker = "> "
		}
		if a.state.Mode == editor.ModeEdit {
			if id, ok := row.ID(); ok && id == a.state.RowID {
				line = boundRowStyle.Render(line)
			}
		}
		content.WriteString(marker + line)
		content.WriteString("\n")
	}
	return a.pane(FocusRows).Width(width).Height(height).Render(content.String())
}

func (a *App) renderFieldsPane(width, height int) string {
	var content strings.Builder
	content.WriteString(paneHeaderStyle.Render("Record"))
	content.WriteString("\n")

	for i, c := range a.columns {
		value := ""
		if i < len(a.state.Pending) {
			value = a.state.Pending[i]
		}
		label := fieldLabelStyle.Render(c.Name)
		if !c.Editable() || a.state.ReadOnly {
			value = dimItemStyle.Render(value)
		}
		if i == a.fieldCursor && a.focus == FocusFields {
			label = fieldCursorStyle.Render(fieldLabelStyle.Render(c.Name))
			value += "█"
		}
		content.WriteString(label + value)
		content.WriteString("\n")
	}
	return a.pane(FocusFields).Width(width).Height(height).Render(content.String())
}

func (a *App) renderStatusBar() string {
	var parts []string

	switch {
	case a.state.ReadOnly:
		parts = append(parts, readOnlyBadge.Render("READ ONLY"))
	case a.state.Mode == editor.ModeEdit:
		parts = append(parts, modeEditBadge.Render(fmt.Sprintf("EDIT #%d", a.state.RowID)))
	default:
		parts = append(parts, modeCreateBadge.Render("CREATE"))
	}

	bindings := map[editor.Command]key.Binding{
		editor.CmdNew:    a.keys.New,
		editor.CmdSave:   a.keys.Save,
		editor.CmdDelete: a.keys.Delete,
		editor.CmdCount:  a.keys.Count,
	}
	for _, cmd := range editor.Commands {
		label := bindings[cmd].Help().Key + " " + cmd.String()
		if a.state.Enabled[cmd] {
			parts = append(parts, commandOnStyle.Render(label))
		} else {
			parts = append(parts, commandOffStyle.Render(label))
		}
	}

	if a.message != "" {
		if a.isError {
			parts = append(parts, errorStyle.Render(a.message))
		} else {
			parts = append(parts, infoStyle.Render(a.message))
		}
	}
	parts = append(parts, dimItemStyle.Render("f1:help"))
	return strings.Join(parts, "  ")
}

func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n\n")
	for _, kb := range a.keys.bindings() {
		h := kb.Help()
		b.WriteString(helpKeyStyle.Render(h.Key) + helpDescStyle.Render(h.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimItemStyle.Render("Press f1 or Esc to close"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, b.String())
}
