package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"postgrid/internal/domain"
)

const (
	minCardWidth = 18
	cardGap      = 1
	cardLines    = 4 // title, meta, summary, tags
	dateLayout   = "2006-01-02"
)

// GridRenderer lays posts out as cards in rows
type GridRenderer struct {
	styles *Styles
}

// NewGridRenderer creates a new grid renderer
func NewGridRenderer(styles *Styles) *GridRenderer {
	return &GridRenderer{styles: styles}
}

// CardWidth returns the outer width of one card for the available width
func CardWidth(available, columns int) int {
	if columns < 1 {
		columns = 1
	}
	w := (available - cardGap*(columns-1)) / columns
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// Render draws posts in rows of columns cards. cursor marks the selected
// card; focused tells whether the grid owns keyboard focus.
func (r *GridRenderer) Render(posts []domain.Post, columns, cursor, width int, focused bool) string {
	if len(posts) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}
	cardWidth := CardWidth(width, columns)

	var rows []string
	for start := 0; start < len(posts); start += columns {
		end := start + columns
		if end > len(posts) {
			end = len(posts)
		}

		var cards []string
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, r.card(posts[i], cardWidth, i == cursor, focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (r *GridRenderer) card(p domain.Post, width int, selected, focused bool) string {
	style := r.styles.Card
	if selected {
		if focused {
			style = r.styles.CardSelected
		} else {
			style = r.styles.CardInactive
		}
	}

	// Width covers padding but not the border
	inner := width - style.GetHorizontalBorderSize()
	text := inner - style.GetHorizontalPadding()
	if text < 1 {
		text = 1
	}
	line := lipgloss.NewStyle().MaxWidth(text)

	meta := p.Author
	if !p.Published.IsZero() {
		if meta != "" {
			meta += " · "
		}
		meta += p.Published.Format(dateLayout)
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, "#"+t)
	}

	body := strings.Join([]string{
		line.Render(r.styles.CardTitle.Render(p.Title)),
		line.Render(r.styles.CardMeta.Render(meta)),
		line.Render(p.Summary(text)),
		line.Render(r.styles.CardTag.Render(strings.Join(tags, " "))),
	}, "\n")

	return style.Width(inner).Height(cardLines).Render(body)
}
