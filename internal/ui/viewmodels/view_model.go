package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"postgrid/internal/pager"
	"postgrid/internal/ui/input/types"
	"postgrid/internal/ui/state"
	"postgrid/internal/ui/views"
)

// InputView is the part of the input handler the view needs
type InputView interface {
	CurrentMode() types.Mode
	Prompt() string
	TextInput() *textinput.Model
	Keys() types.KeyMap
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.AppState
	columns int
	help    help.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, columns int) *ViewModel {
	return &ViewModel{
		state:   appState,
		columns: columns,
		help:    help.New(),
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(control *pager.Control, in InputView) views.ViewState {
	mode := in.CurrentMode()

	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Source:        vm.state.Source,
		Watching:      vm.state.Watching,
		Loaded:        vm.state.Loaded,
		Posts:         vm.state.Visible,
		Total:         len(vm.state.Posts),
		Start:         vm.state.Start,
		Cursor:        vm.state.Cursor,
		Columns:       vm.columns,
		GridFocused:   mode == types.ModeGrid,
		Pages:         control.Pages(),
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		ShowHelp:      vm.state.ShowHelp,
		HelpModel:     vm.help,
		HelpKeys:      in.Keys().ForMode(mode),
		Pagination: views.PaginationState{
			Items:   control.Items(),
			Current: control.Current(),
			CanPrev: control.CanPrev(),
			CanNext: control.CanNext(),
			Focused: mode == types.ModePager,
		},
	}

	if ti := in.TextInput(); ti != nil {
		vs.Prompt = in.Prompt()
		vs.PromptInput = ti.View()
	}
	return vs
}
