package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"postgrid/internal/ui/input/types"
)

// GotoMode prompts for a page number
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(keys types.KeyMap, ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Go to page: ", keys, ti),
	}
}

// HandleKey drops anything that is not a digit so the input only ever holds a number
func (m *GotoMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, consumed := m.TextInputMode.HandleKey(msg, ctx); consumed {
		return actions, true
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, true
			}
		}
	}
	return nil, false
}
