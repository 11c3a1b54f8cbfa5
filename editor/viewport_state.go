package editor

// ViewportState is a stable host-facing snapshot of the grid camera.
type ViewportState struct {
	// TopRow is the grid row rendered directly under the title line.
	TopRow int
	// VisibleRows is the number of grid rows available for rendering.
	VisibleRows int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{TopRow: m.top, VisibleRows: m.gridRows()}
}

// OffsetAt maps model-local screen coordinates (title line at y == 0) to a
// byte offset. ok is false outside the grid rows.
func (m Model) OffsetAt(x, y int) (int, bool) {
	return m.offsetAt(x, y)
}

// ScreenOf maps a byte offset to the model-local coordinates of its hex
// cell. ok is false when the row is scrolled out of view.
func (m Model) ScreenOf(offset int) (x, y int, ok bool) {
	return m.screenOf(offset)
}
