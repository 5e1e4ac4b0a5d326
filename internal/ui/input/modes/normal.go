package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"postgrid/internal/ui/input/types"
)

// GridMode handles keys while the post grid has focus. Arrow keys move the
// card cursor and never change the page.
type GridMode struct {
	keys types.KeyMap
}

func NewGridMode(keys types.KeyMap) *GridMode {
	return &GridMode{keys: keys}
}

func (m *GridMode) Name() string {
	return "grid"
}

func (m *GridMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *GridMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *GridMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return move("up"), true
	case key.Matches(msg, k.Down):
		return move("down"), true
	case key.Matches(msg, k.Left):
		return move("left"), true
	case key.Matches(msg, k.Right):
		return move("right"), true
	case key.Matches(msg, k.Home):
		return move("home"), true
	case key.Matches(msg, k.End):
		return move("end"), true
	case key.Matches(msg, k.Open):
		if !ctx.HasPosts() {
			return nil, false
		}
		return []types.Action{types.OpenPostAction{}}, true
	case key.Matches(msg, k.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModePager}}, true
	}
	return globalKeys(k, msg)
}

func move(direction string) []types.Action {
	return []types.Action{types.MoveCursorAction{Direction: direction}}
}

// globalKeys handles the bindings shared by both focus regions
func globalKeys(k types.KeyMap, msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, k.Goto):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true
	}
	return nil, false
}
