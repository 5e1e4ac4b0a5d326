package pager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pages(ps ...int) []Item {
	items := make([]Item, len(ps))
	for i, p := range ps {
		if p == 0 {
			items[i] = Gap()
			continue
		}
		items[i] = PageItem(p)
	}
	return items
}

func TestWindowKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    []Item
	}{
		{"start", 10, 1, pages(1, 2, 3, 4, 5, 0, 10)},
		{"end", 10, 10, pages(1, 0, 6, 7, 8, 9, 10)},
		{"middle", 10, 5, pages(1, 0, 4, 5, 6, 0, 10)},
		{"last of start region", 10, 4, pages(1, 2, 3, 4, 5, 0, 10)},
		{"first of end region", 10, 7, pages(1, 0, 6, 7, 8, 9, 10)},
		{"just before end region", 10, 6, pages(1, 0, 5, 6, 7, 0, 10)},
		{"eight pages middle", 8, 5, pages(1, 0, 4, 5, 6, 7, 8)},
		{"large", 100, 50, pages(1, 0, 49, 50, 51, 0, 100)},
		{"single page", 1, 1, pages(1)},
		{"seven pages", 7, 7, pages(1, 2, 3, 4, 5, 6, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.total, tt.current))
		})
	}
}

func TestWindowSmallTotalsShowEveryPage(t *testing.T) {
	for total := 1; total <= MaxItems; total++ {
		for current := 1; current <= total; current++ {
			got := Window(total, current)
			require.Len(t, got, total)
			for i, item := range got {
				require.False(t, item.Ellipsis, "total=%d current=%d", total, current)
				require.Equal(t, i+1, item.Page)
			}
		}
	}
}

func TestWindowLargeTotalsAreBounded(t *testing.T) {
	for total := MaxItems + 1; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			got := Window(total, current)
			msg := fmt.Sprintf("total=%d current=%d", total, current)
			require.Len(t, got, MaxItems, msg)
			require.Equal(t, PageItem(1), got[0], msg)
			require.Equal(t, PageItem(total), got[len(got)-1], msg)
			require.True(t, Contains(got, current), msg)

			// Page numbers are strictly increasing
			last := 0
			for _, item := range got {
				if item.Ellipsis {
					continue
				}
				require.Greater(t, item.Page, last, msg)
				last = item.Page
			}
		}
	}
}

func TestWindowClampsCurrent(t *testing.T) {
	assert.Equal(t, Window(10, 1), Window(10, -3))
	assert.Equal(t, Window(10, 10), Window(10, 99))
}

func TestWindowNoPages(t *testing.T) {
	assert.Empty(t, Window(0, 1))
	assert.Empty(t, Window(-5, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 5))
	assert.Equal(t, 5, Clamp(6, 5))
	assert.Equal(t, 3, Clamp(3, 5))
	assert.Equal(t, 0, Clamp(3, 0))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1 ... 4 5 6 ... 10", Format(Window(10, 5), " "))
	assert.Equal(t, "1,2,3", Format(Window(3, 2), ","))
	assert.Equal(t, "", Format(nil, " "))
}
