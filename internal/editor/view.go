package editor

import "github.com/mesh-intelligence/registrar/pkg/types"

// View is the presentation surface the editor drives. Implementations render
// what they are given and forward user actions back to the Editor's
// transition methods; they hold no editing state of their own.
type View interface {
	// RenderTables shows the selectable relations, system catalog last.
	RenderTables(tables []string)

	// RenderColumns lays out one entry field per column of table.
	RenderColumns(table string, columns []types.Column)

	// RenderRows replaces the row list.
	RenderRows(rows []types.Row)

	// RenderState shows the mode, the entry field contents, the highlighted
	// row and which commands are enabled.
	RenderState(state State)

	// ReportError tells the user an operation failed.
	ReportError(message string)

	// ReportInfo shows an informational message.
	ReportInfo(message string)
}
