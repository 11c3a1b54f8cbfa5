package editor

import "github.com/iw2rmb/hexhog/buffer"

type ChangeEvent struct {
	Version uint64
	Offset  int
	Cursor  buffer.Pos
	Len     int

	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Modified bool

	// Change is the last mutation applied to the data, if any. Cursor and
	// selection changes leave it as it was.
	Change    buffer.Change
	HasChange bool
}

func buildChangeEvent(s *buffer.Session) ChangeEvent {
	ev := ChangeEvent{
		Version:  s.Version(),
		Offset:   s.Offset(),
		Cursor:   s.Cursor(),
		Len:      s.Len(),
		Modified: s.Modified(),
	}
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	ev.Change, ev.HasChange = s.LastChange()
	return ev
}
