package input

import (
	"postgrid/internal/pager"
	"postgrid/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Control *pager.Control
}

// CurrentPage returns the selected page, 0 when there are no pages
func (c *ModelContext) CurrentPage() int {
	return c.Control.Current()
}

// PageCount returns the number of pages
func (c *ModelContext) PageCount() int {
	return c.Control.Pages()
}

// CursorIndex returns the card cursor on the current page
func (c *ModelContext) CursorIndex() int {
	return c.State.Cursor
}

// VisibleCount returns how many cards the current page shows
func (c *ModelContext) VisibleCount() int {
	return len(c.State.Visible)
}

// HasPosts returns true if the current page shows any posts
func (c *ModelContext) HasPosts() bool {
	return len(c.State.Visible) > 0
}
