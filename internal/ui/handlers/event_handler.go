package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"postgrid/internal/domain"
	"postgrid/internal/eventbus"
	"postgrid/internal/ui/state"
)

// StatusTimeout is how long informational status messages stay up
const StatusTimeout = 3 * time.Second

// ClearStatusMsg removes a status message once its timer fires
type ClearStatusMsg struct {
	Message string // only cleared if still showing
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	setPosts func(posts []domain.Post)
	log      zerolog.Logger
}

// NewEventHandler creates a new event handler. setPosts is called with every
// loaded set of posts so the host can re-paginate.
func NewEventHandler(appState *state.AppState, setPosts func([]domain.Post), logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		state:    appState,
		setPosts: setPosts,
		log:      logger,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.PostsLoadedEvent:
		first := !h.state.Loaded
		if e.Source != "" {
			h.state.Source = e.Source
		}
		h.setPosts(e.Posts)
		h.log.Debug().Int("posts", len(e.Posts)).Str("source", e.Source).Msg("posts loaded")
		if first {
			return nil
		}
		return h.status(fmt.Sprintf("Loaded %d posts", len(e.Posts)), false)

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.log.Warn().Err(e.Err).Msg(e.Message)
		// Errors stay until something replaces them
		h.state.SetStatus("Error: "+msg, true)

	case eventbus.WatchStartedEvent:
		h.state.Watching = e.Path

	case eventbus.ConfigSavedEvent:
		return h.status("Config saved to "+e.Path, false)
	}

	return nil
}

func (h *EventHandler) status(msg string, isError bool) tea.Cmd {
	h.state.SetStatus(msg, isError)
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: msg}
	})
}

// HandleClear clears the status bar if msg is still the one showing
func (h *EventHandler) HandleClear(msg ClearStatusMsg) {
	if h.state.StatusMessage == msg.Message {
		h.state.ClearStatus()
	}
}
