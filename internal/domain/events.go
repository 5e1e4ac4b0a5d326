package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPostsLoaded     EventType = "PostsLoaded"
	EventReloadRequested EventType = "ReloadRequested"
	EventError           EventType = "Error"
	EventWatchStarted    EventType = "WatchStarted"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PostsLoadedEvent is emitted when the posts source has been (re)read
type PostsLoadedEvent struct {
	Source string
	Posts  []Post
}

func (e PostsLoadedEvent) Type() EventType { return EventPostsLoaded }

// ReloadRequestedEvent asks the posts source to read its file again
type ReloadRequestedEvent struct{}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// WatchStartedEvent is emitted once the watcher is tracking a file
type WatchStartedEvent struct {
	Path string
}

func (e WatchStartedEvent) Type() EventType { return EventWatchStarted }

// ConfigSavedEvent is emitted when configuration is written to disk
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
