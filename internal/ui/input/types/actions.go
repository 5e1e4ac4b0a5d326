package types

// Cursor movement inside the visible page
type MoveCursorAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Page actions
type PageStepAction struct {
	Delta int // -1 for previous, +1 for next
}

func (a PageStepAction) Type() string { return "page_step" }

type SelectPageAction struct {
	Page int
}

func (a SelectPageAction) Type() string { return "select_page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type OpenPostAction struct{}

func (a OpenPostAction) Type() string { return "open_post" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
