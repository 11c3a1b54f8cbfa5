package buffer

// EditMode selects what a completed byte does at the cursor.
type EditMode uint8

const (
	// EditOverwrite replaces the byte under the cursor.
	EditOverwrite EditMode = iota
	// EditInsert inserts a new byte before the cursor.
	EditInsert
)

func (m EditMode) String() string {
	if m == EditInsert {
		return "insert"
	}
	return "overwrite"
}

// BeginEdit starts collecting hex nibbles for one byte. Any pending nibbles
// are discarded and the selection is dropped.
func (s *Session) BeginEdit(mode EditMode) {
	s.sel = selectionState{}
	s.editing = true
	s.editMode = mode
	s.nib = NibbleInput{}
	s.version++
}

// Editing reports the pending edit, if any.
func (s *Session) Editing() (NibbleInput, EditMode, bool) {
	return s.nib, s.editMode, s.editing
}

// TypeNibble feeds one hex digit into the pending edit, starting an
// overwrite edit if none is pending. When the second digit completes the
// byte, the byte is committed, the cursor advances and TypeNibble reports
// true. Non-hex runes are ignored.
func (s *Session) TypeNibble(r rune) bool {
	d, ok := ParseHexDigit(r)
	if !ok {
		return false
	}
	if !s.editing {
		s.BeginEdit(EditOverwrite)
	}

	s.nib = s.nib.Push(d)
	s.version++
	v, complete := s.nib.Byte()
	if !complete {
		return false
	}

	mode := s.editMode
	s.cancelNibbles()
	switch mode {
	case EditInsert:
		s.InsertBytes([]byte{v})
	default:
		s.Overwrite(v)
	}
	s.MoveRight()
	return true
}

// CancelEdit discards pending nibbles without emitting a change.
func (s *Session) CancelEdit() {
	if !s.editing {
		return
	}
	s.cancelNibbles()
	s.version++
}

func (s *Session) cancelNibbles() {
	s.editing = false
	s.nib = NibbleInput{}
}

// Overwrite writes v at the cursor.
//
// Inside the data this records Edit(idx, [old], [v]). On the append slot the
// byte is appended directly and stays out of history, unless
// Options.TrackAppends is set, in which case Insert(idx, [v]) is recorded.
func (s *Session) Overwrite(v byte) {
	idx := s.idx
	if old, ok := s.data.At(idx); ok {
		s.Apply(Edit(idx, []byte{old}, []byte{v}))
		return
	}
	if s.opt.TrackAppends {
		s.Apply(Insert(idx, []byte{v}))
		return
	}

	s.data.replace(idx, []byte{v})
	s.lastChange = Insert(idx, []byte{v})
	s.hasLastChange = true
	s.version++
}

// InsertBytes records Insert(idx, bs) at the cursor.
func (s *Session) InsertBytes(bs []byte) {
	if len(bs) == 0 {
		return
	}
	s.Apply(Insert(s.idx, bs))
}

// DeleteSelection removes the bytes in SelectionRange as one Delete change,
// then clamps the cursor to the last byte. With the cursor on the append
// slot and no selection, it steps left instead.
func (s *Session) DeleteSelection() {
	r := s.SelectionRange()
	n := s.data.Len()
	if r.Lo >= n {
		s.sel = selectionState{}
		s.MoveLeft()
		return
	}

	idx := s.idx
	s.sel = selectionState{}
	s.Apply(Delete(r.Lo, s.data.Slice(r.Lo, r.Len())))
	s.idx = clampInt(idx, 0, maxInt(s.data.Len()-1, 0))
}

// Yank copies the selection to the clipboard and drops the selection. It
// reports false, leaving the clipboard alone, when there is nothing to copy.
func (s *Session) Yank() bool {
	bs := s.SelectionBytes()
	s.ClearSelection()
	if len(bs) == 0 {
		return false
	}
	s.clipboard = bs
	s.version++
	return true
}

// Paste inserts the clipboard at the cursor and selects the pasted bytes,
// leaving the cursor on the last of them.
func (s *Session) Paste() bool {
	if len(s.clipboard) == 0 {
		return false
	}
	start := s.idx
	s.InsertBytes(s.clipboard)
	s.sel = selectionState{active: true, anchor: start}
	s.idx = start + len(s.clipboard) - 1
	s.version++
	return true
}
