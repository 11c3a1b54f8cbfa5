package buffer

// MoveUnit is how far a Move travels.
type MoveUnit int

const (
	// MoveStep moves one byte left/right or one row up/down. Home/End go to
	// the first/last byte of the current row.
	MoveStep MoveUnit = iota
	// MovePage moves Rows rows up or down.
	MovePage
	// MoveDoc jumps to offset 0 (Home) or the append slot (End).
	MoveDoc
)

// MoveDir is the direction of a Move.
type MoveDir int

const (
	// DirLeft and DirRight step one byte.
	DirLeft MoveDir = iota
	DirRight
	// DirUp and DirDown step one row, or a page with MovePage.
	DirUp
	DirDown
	// DirHome and DirEnd go to the row edges, or the document edges with
	// MoveDoc.
	DirHome
	DirEnd
)

// Move describes one cursor movement for Session.Move.
type Move struct {
	Unit MoveUnit
	Dir  MoveDir
	// Rows is the page height for MovePage; values below 1 count as 1.
	Rows int
	// Extend anchors a selection at the old cursor if none is active.
	// Moves never clear an active selection.
	Extend bool
}

// Move moves the cursor, saturating at 0 and at the append slot (Len()).
func (s *Session) Move(m Move) {
	prev := s.idx
	next := clampInt(s.moveOffset(prev, m), 0, s.data.Len())

	startSel := m.Extend && !s.sel.active && next != prev
	if next == prev && !startSel {
		return
	}
	if startSel {
		s.sel = selectionState{active: true, anchor: prev}
	}
	s.idx = next
	s.version++
}

func (s *Session) MoveLeft()  { s.Move(Move{Unit: MoveStep, Dir: DirLeft}) }
func (s *Session) MoveRight() { s.Move(Move{Unit: MoveStep, Dir: DirRight}) }
func (s *Session) MoveUp()    { s.Move(Move{Unit: MoveStep, Dir: DirUp}) }
func (s *Session) MoveDown()  { s.Move(Move{Unit: MoveStep, Dir: DirDown}) }

func (s *Session) PageUp(rows int) { s.Move(Move{Unit: MovePage, Dir: DirUp, Rows: rows}) }

func (s *Session) PageDown(rows int) { s.Move(Move{Unit: MovePage, Dir: DirDown, Rows: rows}) }

func (s *Session) moveOffset(idx int, m Move) int {
	switch m.Unit {
	case MoveStep:
		return s.moveStep(idx, m.Dir)
	case MovePage:
		rows := maxInt(m.Rows, 1)
		switch m.Dir {
		case DirUp:
			return idx - rows*RowWidth
		case DirDown:
			return idx + rows*RowWidth
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome:
			return 0
		case DirEnd:
			return s.data.Len()
		}
	}
	return idx
}

func (s *Session) moveStep(idx int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return idx - 1
	case DirRight:
		return idx + 1
	case DirUp:
		return idx - RowWidth
	case DirDown:
		return idx + RowWidth
	case DirHome:
		return OffsetOf(PositionOf(idx).Row, 0)
	case DirEnd:
		return OffsetOf(PositionOf(idx).Row, RowWidth-1)
	default:
		return idx
	}
}
