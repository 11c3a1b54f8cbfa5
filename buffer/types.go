package buffer

// RowWidth is the number of bytes shown per grid row.
const RowWidth = 16

// Pos is the 2D view of a byte offset. Row and Col are 0-based and
// Row*RowWidth+Col is always the offset it was derived from.
type Pos struct {
	Row int
	Col int
}

// Range is an inclusive byte range: [Lo, Hi].
type Range struct {
	Lo int
	Hi int
}

// Span is a contiguous run of bytes identified by offset and length.
type Span struct {
	Offset int
	Len    int
}

// OffsetOf returns the linear offset of (row, col).
func OffsetOf(row, col int) int {
	return row*RowWidth + col
}

// PositionOf returns the grid position of offset.
func PositionOf(offset int) Pos {
	if offset < 0 {
		offset = 0
	}
	return Pos{Row: offset / RowWidth, Col: offset % RowWidth}
}

// Offset returns the linear offset of p.
func (p Pos) Offset() int { return OffsetOf(p.Row, p.Col) }

// Len returns the number of bytes covered by r.
func (r Range) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// Contains reports whether offset lies inside r.
func (r Range) Contains(offset int) bool {
	return offset >= r.Lo && offset <= r.Hi
}

// Span converts r into its (offset, length) form.
func (r Range) Span() Span {
	return Span{Offset: r.Lo, Len: r.Len()}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
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
