// Package pager computes which page numbers a pagination control shows and
// owns the selected page.
package pager

import (
	"strconv"
	"strings"
)

// MaxItems is the largest number of items a window ever holds.
const MaxItems = 7

// Ellipsis is the text shown for a gap in the window.
const Ellipsis = "..."

// Item is one visible element of the pagination control: a page number or a gap.
type Item struct {
	Page     int // 0 for an ellipsis
	Ellipsis bool
}

// PageItem returns an item for page p.
func PageItem(p int) Item {
	return Item{Page: p}
}

// Gap returns an ellipsis item.
func Gap() Item {
	return Item{Ellipsis: true}
}

// String renders the item as it appears in the control
func (i Item) String() string {
	if i.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(i.Page)
}

// Window returns the items to display for total pages with current selected.
// current is clamped into [1, total]. A non-positive total yields no items.
func Window(total, current int) []Item {
	if total <= 0 {
		return nil
	}
	current = Clamp(current, total)

	if total <= MaxItems {
		items := make([]Item, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, PageItem(p))
		}
		return items
	}

	switch {
	case current <= 4:
		// Near start
		return []Item{PageItem(1), PageItem(2), PageItem(3), PageItem(4), PageItem(5), Gap(), PageItem(total)}
	case current >= total-3:
		// Near end
		return []Item{PageItem(1), Gap(), PageItem(total - 4), PageItem(total - 3), PageItem(total - 2), PageItem(total - 1), PageItem(total)}
	default:
		return []Item{PageItem(1), Gap(), PageItem(current - 1), PageItem(current), PageItem(current + 1), Gap(), PageItem(total)}
	}
}

// Clamp limits p to [1, total]. It returns 0 when total is not positive.
func Clamp(p, total int) int {
	if total <= 0 {
		return 0
	}
	if p < 1 {
		return 1
	}
	if p > total {
		return total
	}
	return p
}

// Format joins items with sep, e.g. "1 ... 4 5 6 ... 10".
func Format(items []Item, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, sep)
}

// Contains reports whether page p is rendered as a number in items.
func Contains(items []Item, p int) bool {
	for _, item := range items {
		if !item.Ellipsis && item.Page == p {
			return true
		}
	}
	return false
}
