package views

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postgrid/internal/domain"
	"postgrid/internal/pager"
	"postgrid/internal/ui/input/types"
)

func TestPaginationSegments(t *testing.T) {
	r := NewPaginationRenderer(NewStyles())

	bar, segs := r.Render(PaginationState{
		Items:   pager.Window(10, 5),
		Current: 5,
		CanPrev: true,
		CanNext: true,
	})

	assert.Equal(t, "‹ 1 ... 4 5 6 ... 10 ›", bar)
	require.Len(t, segs, 9)

	assert.Equal(t, Segment{Kind: SegmentPrev, Start: 0, End: 1}, segs[0])
	assert.Equal(t, Segment{Kind: SegmentPage, Page: 1, Start: 2, End: 3}, segs[1])
	assert.Equal(t, Segment{Kind: SegmentGap, Start: 4, End: 7, Disabled: true}, segs[2])
	assert.Equal(t, Segment{Kind: SegmentPage, Page: 5, Start: 10, End: 11, Disabled: true}, segs[4])
	assert.Equal(t, Segment{Kind: SegmentPage, Page: 10, Start: 18, End: 20}, segs[7])
	assert.Equal(t, Segment{Kind: SegmentNext, Start: 21, End: 22}, segs[8])
}

func TestPaginationDisabledArrows(t *testing.T) {
	r := NewPaginationRenderer(NewStyles())

	_, segs := r.Render(PaginationState{Items: pager.Window(3, 1), Current: 1, CanNext: true})
	assert.True(t, segs[0].Disabled)
	assert.False(t, segs[len(segs)-1].Disabled)

	bar, segs := r.Render(PaginationState{})
	assert.Equal(t, "no pages", bar)
	assert.Empty(t, segs)
}

func TestHitTest(t *testing.T) {
	r := NewPaginationRenderer(NewStyles())
	_, segs := r.Render(PaginationState{Items: pager.Window(10, 1), Current: 1, CanNext: true})

	// ‹ 1 2 3 4 5 ... 10 ›
	seg, ok := HitTest(segs, 4)
	require.True(t, ok)
	assert.Equal(t, SegmentPage, seg.Kind)
	assert.Equal(t, 2, seg.Page)

	seg, ok = HitTest(segs, 16)
	require.True(t, ok)
	assert.Equal(t, 10, seg.Page)

	_, ok = HitTest(segs, 3) // separator
	assert.False(t, ok)
	_, ok = HitTest(segs, 200)
	assert.False(t, ok)
}

func TestRenderLayoutPointsAtBar(t *testing.T) {
	r := NewRenderer()
	posts := []domain.Post{{Title: "One", Body: "first"}, {Title: "Two", Body: "second"}}

	out, layout := r.Render(ViewState{
		Width:       100,
		Height:      40,
		Loaded:      true,
		Posts:       posts,
		Total:       12,
		Columns:     2,
		GridFocused: true,
		Pages:       6,
		Pagination: PaginationState{
			Items:   pager.Window(6, 1),
			Current: 1,
			CanNext: true,
		},
		HelpModel: help.New(),
		HelpKeys:  types.DefaultKeyMap().ForMode(types.ModeGrid),
	})

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), layout.BarRow)
	bar := lines[layout.BarRow]
	assert.Contains(t, bar, "‹ 1 2 3 4 5 6 ›")

	// Column of page 3 on screen maps back to page 3
	col := utf8.RuneCountInString(bar[:strings.Index(bar, "3")])
	seg, ok := layout.PageAt(col, layout.BarRow)
	require.True(t, ok)
	assert.Equal(t, 3, seg.Page)

	_, ok = layout.PageAt(col, layout.BarRow+1)
	assert.False(t, ok)

	assert.Contains(t, out, "Page 1 of 6")
	assert.Contains(t, out, "posts 1-2 of 12")
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "Two")
}

func TestRenderEmptyStates(t *testing.T) {
	r := NewRenderer()

	out, layout := r.Render(ViewState{Width: 80})
	assert.Contains(t, out, "Loading posts...")
	assert.Empty(t, layout.Segments)

	out, _ = r.Render(ViewState{Width: 80, Loaded: true})
	assert.Contains(t, out, "No posts found")
	assert.Contains(t, out, "No pages")
}

func TestRenderStatusAndPrompt(t *testing.T) {
	r := NewRenderer()

	out, _ := r.Render(ViewState{
		Width:         80,
		Loaded:        true,
		Prompt:        "Go to page: ",
		PromptInput:   "7",
		StatusMessage: "not a page number: x",
		StatusIsError: true,
		Watching:      "/tmp/posts.yaml",
	})
	assert.Contains(t, out, "Go to page: 7")
	assert.Contains(t, out, "not a page number: x")
	assert.Contains(t, out, "watching")
}

func TestCardWidth(t *testing.T) {
	assert.Equal(t, 26, CardWidth(80, 3))
	assert.Equal(t, minCardWidth, CardWidth(20, 3))
	assert.Equal(t, 80, CardWidth(80, 0))
}
