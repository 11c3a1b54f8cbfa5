package buffer

import "crypto/sha256"

type Options struct {
	// HistoryLimit caps the undo stack; the oldest entry is evicted first.
	// Zero or negative keeps every change.
	HistoryLimit int

	// TrackAppends records overwrites of the append slot as Insert changes
	// so they can be undone. Off by default: such writes bypass history.
	TrackAppends bool
}

type selectionState struct {
	active bool
	anchor int
}

// Session owns the byte data, cursor, selection, clipboard and history of one
// open file.
type Session struct {
	data    *Data
	version uint64

	idx int
	sel selectionState

	clipboard []byte

	editing  bool
	editMode EditMode
	nib      NibbleInput

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool

	saved [sha256.Size]byte
}

// New returns a session over a copy of data with the cursor at offset 0.
func New(data []byte, opt Options) *Session {
	s := &Session{
		data: newData(data),
		opt:  opt,
	}
	s.saved = s.digest()
	return s
}

// Data returns read-only access to the bytes.
func (s *Session) Data() *Data { return s.data }

func (s *Session) Len() int { return s.data.Len() }

// Bytes returns a copy of the current content.
func (s *Session) Bytes() []byte { return s.data.Bytes() }

// Version increments on every observable state change.
func (s *Session) Version() uint64 { return s.version }

// Offset returns the cursor offset, in [0, Len()].
func (s *Session) Offset() int { return s.idx }

// Cursor returns the grid position of the cursor.
func (s *Session) Cursor() Pos { return PositionOf(s.idx) }

// SetOffset moves the cursor, clamped into [0, Len()].
func (s *Session) SetOffset(offset int) {
	next := clampInt(offset, 0, s.data.Len())
	if next == s.idx {
		return
	}
	s.idx = next
	s.version++
}

// SetCursor moves the cursor to p, clamped like SetOffset.
func (s *Session) SetCursor(p Pos) { s.SetOffset(p.Offset()) }

// Clipboard returns a copy of the clipboard bytes.
func (s *Session) Clipboard() []byte { return cloneBytes(s.clipboard) }

// SetClipboard replaces the clipboard. It does not touch history.
func (s *Session) SetClipboard(bs []byte) {
	s.clipboard = cloneBytes(bs)
}

// Selection reports the selection range and whether a selection is active.
func (s *Session) Selection() (Range, bool) {
	if !s.sel.active {
		return Range{}, false
	}
	return s.SelectionRange(), true
}

// SelectionRange returns the inclusive byte range under the selection.
//
// Without an active selection it is (idx, idx). With one it is the ordered
// (anchor, idx) pair with Hi clamped to Len()-1, and Lo never above Hi. An
// empty buffer always yields (0, 0).
func (s *Session) SelectionRange() Range {
	if !s.sel.active {
		return Range{Lo: s.idx, Hi: s.idx}
	}
	n := s.data.Len()
	if n == 0 {
		return Range{}
	}
	lo := minInt(s.sel.anchor, s.idx)
	hi := minInt(maxInt(s.sel.anchor, s.idx), n-1)
	return Range{Lo: minInt(lo, hi), Hi: hi}
}

// SelectionBytes returns a copy of the bytes in SelectionRange. It is empty
// when the range lies outside the data.
func (s *Session) SelectionBytes() []byte {
	r := s.SelectionRange()
	return s.data.Slice(r.Lo, r.Len())
}

// StartSelection anchors a selection at the cursor.
func (s *Session) StartSelection() {
	if s.sel.active && s.sel.anchor == s.idx {
		return
	}
	s.sel = selectionState{active: true, anchor: s.idx}
	s.version++
}

// ToggleSelection starts a selection at the cursor, or drops the active one.
func (s *Session) ToggleSelection() {
	if s.sel.active {
		s.ClearSelection()
		return
	}
	s.StartSelection()
}

func (s *Session) ClearSelection() {
	if !s.sel.active {
		return
	}
	s.sel = selectionState{}
	s.version++
}

// SelectionAnchor returns the anchor offset of the active selection.
func (s *Session) SelectionAnchor() (int, bool) {
	if !s.sel.active {
		return 0, false
	}
	return s.sel.anchor, true
}

// SetSelection anchors a selection at anchor and moves the cursor to end.
func (s *Session) SetSelection(anchor, end int) {
	n := s.data.Len()
	next := selectionState{active: true, anchor: clampInt(anchor, 0, n)}
	end = clampInt(end, 0, n)
	if next == s.sel && end == s.idx {
		return
	}
	s.sel = next
	s.idx = end
	s.version++
}

func (s *Session) digest() [sha256.Size]byte {
	return sha256.Sum256(s.data.b)
}

// Modified reports whether the content differs from what was loaded or last
// saved. Undoing back to that content counts as unmodified.
func (s *Session) Modified() bool {
	return s.digest() != s.saved
}
