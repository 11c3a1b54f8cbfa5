package editor

import "github.com/iw2rmb/hexhog/buffer"

// columnAt maps a grid x coordinate to a byte column. Clicks on the offset
// column land on column 0; clicks past the character column land on the
// last column.
func columnAt(x int) int {
	switch {
	case x < hexStart:
		return 0
	case x < hexStart+hexWidth:
		rel := x - hexStart
		if rel >= (buffer.RowWidth/2)*3 {
			// Second half sits one cell further right.
			rel--
		}
		return clampInt(rel/3, 0, buffer.RowWidth-1)
	case x < charStart:
		return buffer.RowWidth - 1
	default:
		return clampInt(x-charStart, 0, buffer.RowWidth-1)
	}
}

// cellX returns the x coordinate of the first hex digit of column col.
func cellX(col int) int {
	x := hexStart + col*3
	if col >= buffer.RowWidth/2 {
		x++
	}
	return x
}

// offsetAt maps model-local screen coordinates to a byte offset in
// [0, Len()]. The title line sits at y == 0.
func (m Model) offsetAt(x, y int) (int, bool) {
	gy := y - 1
	if x < 0 || gy < 0 || gy >= m.gridRows() {
		return 0, false
	}
	row := m.top + gy
	off := buffer.OffsetOf(row, columnAt(x))
	return clampInt(off, 0, m.sess.Len()), true
}

// screenOf maps offset to model-local screen coordinates of its hex cell.
func (m Model) screenOf(offset int) (x, y int, ok bool) {
	p := buffer.PositionOf(offset)
	y = p.Row - m.top + 1
	x = cellX(p.Col)
	if y < 1 || y > m.gridRows() {
		return x, y, false
	}
	return x, y, true
}
