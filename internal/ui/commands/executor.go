package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"postgrid/internal/eventbus"
	"postgrid/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCommand(e.ctx).Execute()
}

// ExecuteStatus creates and executes a status command
func (e *Executor) ExecuteStatus(message string, isError bool) tea.Cmd {
	return NewStatusCommand(e.ctx, message, isError).Execute()
}
