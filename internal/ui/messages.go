package ui

import (
	"postgrid/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// postViewedMsg contains the result of showing a post in the pager
type postViewedMsg struct {
	postID string
	err    error
}
