package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"postgrid/internal/pager"
	"postgrid/internal/ui/input/modes"
	"postgrid/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	returnMode  types.Mode // focus region to restore when a prompt closes
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	keys        types.KeyMap
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.CharLimit = 6

	h := &Handler{
		currentMode: types.ModeGrid,
		returnMode:  types.ModeGrid,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeGrid] = modes.NewGridMode(keys)
	h.modes[types.ModeGoto] = modes.NewGotoMode(keys, h.textInput)
	// ModePager is installed by the pagination control through PagerBinder

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		// The binding for this focus region was released; fall back to the grid
		h.currentMode = types.ModeGrid
		handler = h.modes[types.ModeGrid]
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		target := changeMode.Mode
		if target == types.ModeReturn {
			target = h.returnMode
		}
		if h.modes[target] == nil {
			// Nothing can take focus there (the control is not mounted)
			continue
		}

		if exit := h.modes[h.currentMode]; exit != nil {
			allActions = append(allActions, exit.Exit(ctx)...)
		}

		oldMode := h.currentMode
		if h.isTextMode(target) && !h.isTextMode(oldMode) {
			h.returnMode = oldMode
		}
		h.currentMode = target
		allActions = append(allActions, h.modes[target].Enter(ctx)...)

		if h.isTextMode(h.currentMode) {
			h.textInput.Reset()
			h.textInput.Focus()
			cmd = textinput.Blink
		} else if h.isTextMode(oldMode) {
			h.textInput.Blur()
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// Install registers mh for mode and returns a function that removes it again.
// The release function only removes mh itself; if another handler was
// installed for the mode since, it is left in place.
func (h *Handler) Install(mode types.Mode, mh types.ModeHandler) (release func()) {
	h.modes[mode] = mh
	return func() {
		if r, ok := mh.(types.Releaser); ok {
			r.Release()
		}
		if h.modes[mode] == mh {
			delete(h.modes, mode)
		}
	}
}

// PagerBinder returns the binder a pagination control uses to install its
// keyboard binding into this handler.
func (h *Handler) PagerBinder() pager.Binder {
	return pager.BinderFunc(func(pages int) func() {
		return h.Install(types.ModePager, modes.NewPagerMode(h.keys, pages))
	})
}

// Installed reports whether a handler is registered for mode
func (h *Handler) Installed(mode types.Mode) bool {
	return h.modes[mode] != nil
}

// ModeHandler returns the handler registered for mode, or nil
func (h *Handler) ModeHandler(mode types.Mode) types.ModeHandler {
	return h.modes[mode]
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeGrid
	}
	return h.currentMode
}

// Focus moves focus to mode if a handler is registered for it
func (h *Handler) Focus(mode types.Mode) bool {
	if h.modes[mode] == nil || h.isTextMode(mode) {
		return false
	}
	h.currentMode = mode
	return true
}

// Keys returns the key map the handler was built with
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// TextInput returns the shared text input while a prompt is open
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Prompt returns the label of the open prompt, if any
func (h *Handler) Prompt() string {
	if p, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok && h.isTextMode(h.currentMode) {
		return p.Prompt()
	}
	return ""
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeGoto
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
