package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"postgrid/internal/eventbus"
	"postgrid/internal/ui/handlers"
	"postgrid/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

// ReloadCommand asks the posts source to read its file again
type ReloadCommand struct {
	ctx *CommandContext
}

// NewReloadCommand creates a new reload command
func NewReloadCommand(ctx *CommandContext) *ReloadCommand {
	return &ReloadCommand{ctx: ctx}
}

// Execute publishes the reload request; the result arrives as a
// PostsLoadedEvent or ErrorEvent.
func (c *ReloadCommand) Execute() tea.Cmd {
	if c.ctx.Bus == nil {
		return nil
	}
	c.ctx.State.SetStatus("Reloading posts...", false)
	c.ctx.Bus.Publish(eventbus.ReloadRequestedEvent{})
	return nil
}

// StatusCommand shows a message in the status bar for a while
type StatusCommand struct {
	ctx     *CommandContext
	message string
	isError bool
}

// NewStatusCommand creates a new status command
func NewStatusCommand(ctx *CommandContext, message string, isError bool) *StatusCommand {
	return &StatusCommand{
		ctx:     ctx,
		message: message,
		isError: isError,
	}
}

// Execute shows the message and schedules its removal
func (c *StatusCommand) Execute() tea.Cmd {
	c.ctx.State.SetStatus(c.message, c.isError)
	msg := c.message
	return tea.Tick(handlers.StatusTimeout, func(time.Time) tea.Msg {
		return handlers.ClearStatusMsg{Message: msg}
	})
}
