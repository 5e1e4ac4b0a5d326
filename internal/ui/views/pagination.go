package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"postgrid/internal/pager"
)

const (
	prevArrow = "‹"
	nextArrow = "›"
)

// SegmentKind tells what a part of the pagination bar does when clicked
type SegmentKind int

const (
	SegmentPage SegmentKind = iota
	SegmentGap
	SegmentPrev
	SegmentNext
)

// Segment is one rendered element of the pagination bar and the columns it
// covers, relative to the start of the bar.
type Segment struct {
	Kind     SegmentKind
	Page     int // for SegmentPage
	Start    int // first column, inclusive
	End      int // last column, exclusive
	Disabled bool
}

// PaginationState is what the bar needs to render
type PaginationState struct {
	Items   []pager.Item
	Current int
	CanPrev bool
	CanNext bool
	Focused bool
}

// PaginationRenderer renders the pagination bar
type PaginationRenderer struct {
	styles *Styles
}

// NewPaginationRenderer creates a new pagination renderer
func NewPaginationRenderer(styles *Styles) *PaginationRenderer {
	return &PaginationRenderer{styles: styles}
}

// Render draws the bar and reports where each element landed
func (r *PaginationRenderer) Render(s PaginationState) (string, []Segment) {
	if len(s.Items) == 0 {
		return r.styles.Dim.Render("no pages"), nil
	}

	var parts []string
	var segments []Segment
	col := 0

	add := func(text string, seg Segment) {
		if len(parts) > 0 {
			col++ // separator
		}
		w := lipgloss.Width(text)
		seg.Start, seg.End = col, col+w
		col += w
		parts = append(parts, text)
		segments = append(segments, seg)
	}

	add(r.arrow(prevArrow, s.CanPrev), Segment{Kind: SegmentPrev, Disabled: !s.CanPrev})
	for _, item := range s.Items {
		if item.Ellipsis {
			add(r.styles.PageGap.Render(item.String()), Segment{Kind: SegmentGap, Disabled: true})
			continue
		}
		add(r.page(item, s), Segment{Kind: SegmentPage, Page: item.Page, Disabled: item.Page == s.Current})
	}
	add(r.arrow(nextArrow, s.CanNext), Segment{Kind: SegmentNext, Disabled: !s.CanNext})

	return strings.Join(parts, " "), segments
}

func (r *PaginationRenderer) arrow(text string, enabled bool) string {
	if !enabled {
		return r.styles.PageDisabled.Render(text)
	}
	return r.styles.PageArrow.Render(text)
}

func (r *PaginationRenderer) page(item pager.Item, s PaginationState) string {
	if item.Page != s.Current {
		return r.styles.PageItem.Render(item.String())
	}
	if s.Focused {
		return r.styles.PageFocused.Render(item.String())
	}
	return r.styles.PageCurrent.Render(item.String())
}

// HitTest returns the segment covering column x of the bar
func HitTest(segments []Segment, x int) (Segment, bool) {
	for _, seg := range segments {
		if x >= seg.Start && x < seg.End {
			return seg, true
		}
	}
	return Segment{}, false
}
