package buffer

// historyState holds applied changes (undo) and undone changes (redo), both
// most-recent-last.
type historyState struct {
	undo []Change
	redo []Change
}

// recordUndo pushes c as a new edit: the redo stack is dropped.
func (s *Session) recordUndo(c Change) {
	s.pushUndo(c)
	s.hist.redo = nil
}

func (s *Session) pushUndo(c Change) {
	s.hist.undo = append(s.hist.undo, c)
	limit := s.opt.HistoryLimit
	if limit > 0 && len(s.hist.undo) > limit {
		s.hist.undo = append([]Change(nil), s.hist.undo[len(s.hist.undo)-limit:]...)
	}
}

func (s *Session) CanUndo() bool { return len(s.hist.undo) > 0 }

func (s *Session) CanRedo() bool { return len(s.hist.redo) > 0 }

// History returns copies of the undo and redo stacks, most-recent-last.
func (s *Session) History() (undo, redo []Change) {
	undo = make([]Change, 0, len(s.hist.undo))
	for _, c := range s.hist.undo {
		undo = append(undo, cloneChange(c))
	}
	redo = make([]Change, 0, len(s.hist.redo))
	for _, c := range s.hist.redo {
		redo = append(redo, cloneChange(c))
	}
	return undo, redo
}

// Undo reverts the most recent applied change. It reports false when there
// was nothing to undo.
func (s *Session) Undo() bool {
	if len(s.hist.undo) == 0 {
		return false
	}

	i := len(s.hist.undo) - 1
	c := s.hist.undo[i]
	s.hist.undo = s.hist.undo[:i]

	c.revertOn(s.data)
	s.hist.redo = append(s.hist.redo, c)

	s.afterHistoryStep(c.Inverse())
	return true
}

// Redo re-applies the most recently undone change. It reports false when
// there was nothing to redo.
//
// Unlike Apply, Redo does not drop the remaining redo entries, so a run of
// undos can be replayed one redo at a time. Only Apply drops them.
func (s *Session) Redo() bool {
	if len(s.hist.redo) == 0 {
		return false
	}

	i := len(s.hist.redo) - 1
	c := s.hist.redo[i]
	s.hist.redo = s.hist.redo[:i]

	c.applyTo(s.data)
	s.pushUndo(c)

	s.afterHistoryStep(c)
	return true
}

// afterHistoryStep records applied, the mutation that actually ran.
func (s *Session) afterHistoryStep(applied Change) {
	s.sel = selectionState{}
	s.cancelNibbles()
	s.idx = clampInt(s.idx, 0, s.data.Len())
	s.lastChange = cloneChange(applied)
	s.hasLastChange = true
	s.version++
}
