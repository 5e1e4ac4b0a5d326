package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"postgrid/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Source        string
	Watching      string
	Loaded        bool
	Posts         []domain.Post // posts on the current page
	Total         int           // posts across all pages
	Start         int           // index of Posts[0] across all pages
	Cursor        int
	Columns       int
	GridFocused   bool
	Pagination    PaginationState
	Pages         int
	Prompt        string // label of the open prompt, empty when closed
	PromptInput   string
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpModel     help.Model
	HelpKeys      help.KeyMap
}

// Layout records where clickable parts of the last render landed, in
// screen coordinates.
type Layout struct {
	BarRow   int
	BarCol   int
	Segments []Segment
}

// PageAt returns the pagination segment at screen position (x, y)
func (l Layout) PageAt(x, y int) (Segment, bool) {
	if y != l.BarRow || len(l.Segments) == 0 {
		return Segment{}, false
	}
	return HitTest(l.Segments, x-l.BarCol)
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	grid       *GridRenderer
	pagination *PaginationRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		grid:       NewGridRenderer(styles),
		pagination: NewPaginationRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) (string, Layout) {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - r.styles.Main.GetHorizontalPadding()

	content.WriteString(r.titleLine(state, availableWidth))
	content.WriteString("\n\n")

	if state.Prompt != "" {
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString(state.PromptInput)
		content.WriteString("\n\n")
	}

	switch {
	case !state.Loaded:
		content.WriteString(r.styles.Dim.Render("Loading posts..."))
	case len(state.Posts) == 0:
		content.WriteString(r.styles.Dim.Render("No posts found. Press r to reload."))
	default:
		content.WriteString(r.grid.Render(state.Posts, state.Columns, state.Cursor, availableWidth, state.GridFocused))
	}
	content.WriteString("\n\n")

	layout := Layout{
		BarRow: r.styles.Main.GetPaddingTop() + strings.Count(content.String(), "\n"),
		BarCol: r.styles.Main.GetPaddingLeft(),
	}
	bar, segments := r.pagination.Render(state.Pagination)
	layout.Segments = segments
	content.WriteString(bar)
	content.WriteString("\n\n")

	content.WriteString(r.statusLine(state))
	content.WriteString("\n")

	hm := state.HelpModel
	hm.ShowAll = state.ShowHelp
	hm.Width = availableWidth
	if state.HelpKeys != nil {
		content.WriteString(r.styles.Help.Render(hm.View(state.HelpKeys)))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String()), layout
}

func (r *Renderer) titleLine(state ViewState, width int) string {
	left := r.styles.Title.Render("postgrid")
	if state.Source != "" {
		left = fmt.Sprintf("%s  %s", left, r.styles.Source.Render(state.Source))
	}
	if state.Watching == "" {
		return left
	}

	right := r.styles.Watch.Render("● watching")
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}

func (r *Renderer) statusLine(state ViewState) string {
	var status string
	if state.Pages > 0 {
		status = fmt.Sprintf("Page %d of %d", state.Pagination.Current, state.Pages)
		if len(state.Posts) > 0 {
			status += fmt.Sprintf(" · posts %d-%d of %d", state.Start+1, state.Start+len(state.Posts), state.Total)
		}
	} else {
		status = "No pages"
	}
	status = r.styles.Status.Render(status)

	if state.StatusMessage == "" {
		return status
	}
	msgStyle := r.styles.StatusSuccess
	if state.StatusIsError {
		msgStyle = r.styles.StatusError
	}
	return status + "  " + msgStyle.Render(state.StatusMessage)
}
