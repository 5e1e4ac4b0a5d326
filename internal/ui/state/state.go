package state

import (
	"postgrid/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Post data
	Posts   []domain.Post // everything loaded from the source
	Visible []domain.Post // the slice shown on the current page
	Source  string        // display name of the posts source

	// Page slice bounds into Posts
	Start int
	End   int

	// Selection state
	Cursor int // index into Visible

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
	Watching      string // path being watched, empty when not watching
	Loaded        bool   // whether any load finished yet
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Posts:   make([]domain.Post, 0),
		Visible: make([]domain.Post, 0),
	}
}

// SetPosts replaces all posts
func (s *AppState) SetPosts(posts []domain.Post) {
	if posts == nil {
		posts = make([]domain.Post, 0)
	}
	s.Posts = posts
	s.Loaded = true
}

// SetVisible sets the page slice [start, end) of Posts
func (s *AppState) SetVisible(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(s.Posts) {
		end = len(s.Posts)
	}
	if start > end {
		start = end
	}
	s.Start, s.End = start, end
	s.Visible = s.Posts[start:end]
}

// SelectedPost returns the post under the cursor
func (s *AppState) SelectedPost() (domain.Post, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Visible) {
		return domain.Post{}, false
	}
	return s.Visible[s.Cursor], true
}

// SetStatus shows a status bar message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus removes the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
