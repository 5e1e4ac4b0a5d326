package logic

// GridNavigator moves the card cursor over a page of posts laid out in
// rows of a fixed number of columns.
type GridNavigator struct {
	columns int
}

// NewGridNavigator creates a navigator for the given column count
func NewGridNavigator(columns int) *GridNavigator {
	if columns < 1 {
		columns = 1
	}
	return &GridNavigator{columns: columns}
}

// Columns returns the column count
func (n *GridNavigator) Columns() int {
	return n.columns
}

// Move returns the cursor after moving in direction over count cards.
// Moves that would leave the grid keep the cursor where it is.
func (n *GridNavigator) Move(cursor, count int, direction string) int {
	if count <= 0 {
		return 0
	}
	cursor = n.Clamp(cursor, count)
	col := cursor % n.columns

	switch direction {
	case "up":
		if cursor-n.columns >= 0 {
			return cursor - n.columns
		}
	case "down":
		if cursor+n.columns < count {
			return cursor + n.columns
		}
		// Drop onto the last card when the next row is shorter
		if n.Row(cursor) < n.Row(count-1) {
			return count - 1
		}
	case "left":
		if col > 0 {
			return cursor - 1
		}
	case "right":
		if col < n.columns-1 && cursor+1 < count {
			return cursor + 1
		}
	case "home":
		return 0
	case "end":
		return count - 1
	}
	return cursor
}

// Clamp keeps cursor within [0, count)
func (n *GridNavigator) Clamp(cursor, count int) int {
	if count <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

// Row returns the row a card index is on
func (n *GridNavigator) Row(index int) int {
	return index / n.columns
}

// Rows returns how many rows count cards need
func (n *GridNavigator) Rows(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + n.columns - 1) / n.columns
}
