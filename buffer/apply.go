package buffer

// Apply performs c and records it as a new edit, dropping any redo entries.
//
// c is normalized against the current data first: the offset is clamped to
// the append slot, an Edit's Old and a Delete's Bytes are re-read from the
// data, so the recorded change always reverts exactly.
func (s *Session) Apply(c Change) {
	c = s.normalize(c)
	c.applyTo(s.data)
	s.recordUndo(c)

	s.idx = clampInt(s.idx, 0, s.data.Len())
	s.lastChange = cloneChange(c)
	s.hasLastChange = true
	s.version++
}

func (s *Session) normalize(c Change) Change {
	c = cloneChange(c)
	c.Offset = clampInt(c.Offset, 0, s.data.Len())
	switch c.Kind {
	case ChangeEdit:
		c.Old = s.data.Slice(c.Offset, len(c.New))
	case ChangeDelete:
		c.Bytes = s.data.Slice(c.Offset, len(c.Bytes))
	}
	return c
}

// LastChange returns the most recent mutation, including the inverse that
// ran for an undo.
func (s *Session) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return cloneChange(s.lastChange), true
}
