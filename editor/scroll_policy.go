package editor

// ScrollPolicy controls how the grid is allowed to scroll relative to the
// cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the grid without moving
	// the cursor.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps scrolling cursor-driven; wheel events are
	// ignored.
	ScrollFollowCursorOnly
)

// ScrollMargin is the number of rows kept visible above and below the cursor
// row while it moves.
const ScrollMargin = 5

// wheelRows is how far one wheel notch scrolls.
const wheelRows = 3

func (m *Model) followCursor() {
	h := m.gridRows()
	if h <= 0 {
		return
	}
	margin := minInt(ScrollMargin, (h-1)/2)
	row := m.sess.Cursor().Row

	if row < m.top+margin {
		m.top = row - margin
	}
	if row > m.top+h-1-margin {
		m.top = row - (h - 1 - margin)
	}
	m.clampTop()
}

func (m *Model) scrollBy(rows int) {
	m.top += rows
	m.clampTop()
}

func (m *Model) clampTop() {
	m.top = clampInt(m.top, 0, m.lastRow())
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
