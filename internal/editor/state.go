package editor

// Mode is the editor's top-level state.
type Mode int

// Editor modes.
const (
	// ModeCreate composes a row that has not been persisted yet.
	ModeCreate Mode = iota
	// ModeEdit is bound to one persisted row, identified by State.RowID.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "CREATE"
	case ModeEdit:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}

// Command names a user command whose availability the view reflects.
type Command int

// Commands.
const (
	CmdNew Command = iota
	CmdSave
	CmdDelete
	CmdCount
)

func (c Command) String() string {
	switch c {
	case CmdNew:
		return "new"
	case CmdSave:
		return "save"
	case CmdDelete:
		return "delete"
	case CmdCount:
		return "count"
	default:
		return "unknown"
	}
}

// Commands lists every command in display order.
var Commands = []Command{CmdNew, CmdSave, CmdDelete, CmdCount}

// State is a snapshot of the editor for rendering. Slices and maps are copies.
type State struct {
	Table       string
	Mode        Mode
	RowID       int64 // Identity of the bound row; zero in ModeCreate.
	Pending     []string
	Highlighted int // Index of the highlighted row, -1 for none.
	ReadOnly    bool
	Enabled     map[Command]bool
}
