package modes

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"postgrid/internal/ui/input/types"
)

// PagerMode is the keyboard binding of a mounted pagination control. It is
// created for a fixed page count and goes inert once released, so a binding
// left over from an earlier page count can never act.
type PagerMode struct {
	keys     types.KeyMap
	pages    int
	released atomic.Bool
}

func NewPagerMode(keys types.KeyMap, pages int) *PagerMode {
	return &PagerMode{keys: keys, pages: pages}
}

func (m *PagerMode) Name() string {
	return "pager"
}

// Pages is the page count the binding was installed for
func (m *PagerMode) Pages() int {
	return m.pages
}

func (m *PagerMode) Release() {
	m.released.Store(true)
}

func (m *PagerMode) Released() bool {
	return m.released.Load()
}

func (m *PagerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PagerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PagerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if m.Released() {
		return nil, false
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.PrevPage):
		return m.pageAction(types.PageStepAction{Delta: -1})
	case key.Matches(msg, k.NextPage):
		return m.pageAction(types.PageStepAction{Delta: 1})
	case key.Matches(msg, k.FirstPage):
		return m.pageAction(types.SelectPageAction{Page: 1})
	case key.Matches(msg, k.LastPage):
		return m.pageAction(types.SelectPageAction{Page: m.pages})
	case key.Matches(msg, k.Focus), key.Matches(msg, k.Back):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGrid}}, true
	}
	return globalKeys(k, msg)
}

// pageAction swallows navigation keys when there is nothing to page through
func (m *PagerMode) pageAction(a types.Action) ([]types.Action, bool) {
	if m.pages <= 0 {
		return nil, true
	}
	return []types.Action{a}, true
}
