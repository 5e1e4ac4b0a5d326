package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode. Grid and Pager are the two focus regions;
// Goto is the go-to-page prompt.
type Mode int

const (
	ModeGrid Mode = iota
	ModePager
	ModeGoto

	// ModeReturn asks the handler to go back to the focus region that was
	// active before a prompt opened.
	ModeReturn Mode = -1
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModePager:
		return "pager"
	case ModeGoto:
		return "goto"
	case ModeReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentPage() int
	PageCount() int
	CursorIndex() int
	VisibleCount() int
	HasPosts() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// Releaser is implemented by mode handlers that must go inert once removed
type Releaser interface {
	Release()
}
