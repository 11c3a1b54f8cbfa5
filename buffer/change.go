package buffer

import "fmt"

// ChangeKind identifies the mutation a Change describes.
type ChangeKind uint8

const (
	// ChangeEdit overwrites len(New) bytes in place. len(Old) == len(New).
	ChangeEdit ChangeKind = iota
	// ChangeInsert inserts Bytes at Offset.
	ChangeInsert
	// ChangeDelete removes Bytes, which start at Offset.
	ChangeDelete
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeEdit:
		return "Edit"
	case ChangeInsert:
		return "Insert"
	case ChangeDelete:
		return "Delete"
	default:
		return fmt.Sprintf("ChangeKind(%d)", uint8(k))
	}
}

// Change is a reversible description of one mutation.
//
// Edit uses Old and New. Insert and Delete use Bytes: the inserted content
// for Insert, the removed content for Delete.
type Change struct {
	Kind   ChangeKind
	Offset int
	Old    []byte
	New    []byte
	Bytes  []byte
}

// Edit returns an in-place overwrite of old with new at offset.
func Edit(offset int, old, new []byte) Change {
	return Change{Kind: ChangeEdit, Offset: offset, Old: cloneBytes(old), New: cloneBytes(new)}
}

// Insert returns an insertion of bs at offset.
func Insert(offset int, bs []byte) Change {
	return Change{Kind: ChangeInsert, Offset: offset, Bytes: cloneBytes(bs)}
}

// Delete returns a removal of bs, which currently starts at offset.
func Delete(offset int, bs []byte) Change {
	return Change{Kind: ChangeDelete, Offset: offset, Bytes: cloneBytes(bs)}
}

// Inverse returns the change that undoes c.
func (c Change) Inverse() Change {
	switch c.Kind {
	case ChangeEdit:
		return Edit(c.Offset, c.New, c.Old)
	case ChangeInsert:
		return Delete(c.Offset, c.Bytes)
	case ChangeDelete:
		return Insert(c.Offset, c.Bytes)
	default:
		return c
	}
}

// Span returns the bytes c writes, inserts, or removes.
func (c Change) Span() Span {
	switch c.Kind {
	case ChangeEdit:
		return Span{Offset: c.Offset, Len: len(c.New)}
	default:
		return Span{Offset: c.Offset, Len: len(c.Bytes)}
	}
}

func (c Change) String() string {
	switch c.Kind {
	case ChangeEdit:
		return fmt.Sprintf("Edit(%d, %s, %s)", c.Offset, FormatHex(c.Old), FormatHex(c.New))
	default:
		return fmt.Sprintf("%s(%d, %s)", c.Kind, c.Offset, FormatHex(c.Bytes))
	}
}

// applyTo performs the forward mutation of c on d.
func (c Change) applyTo(d *Data) {
	switch c.Kind {
	case ChangeEdit:
		d.replace(c.Offset, c.New)
	case ChangeInsert:
		d.insert(c.Offset, c.Bytes)
	case ChangeDelete:
		d.delete(c.Offset, len(c.Bytes))
	}
}

// revertOn undoes c on d. An Edit whose New ran past the end of the data
// (len(New) > len(Old)) also drops the bytes it appended.
func (c Change) revertOn(d *Data) {
	switch c.Kind {
	case ChangeEdit:
		d.replace(c.Offset, c.Old)
		if grown := len(c.New) - len(c.Old); grown > 0 {
			d.delete(c.Offset+len(c.Old), grown)
		}
	case ChangeInsert:
		d.delete(c.Offset, len(c.Bytes))
	case ChangeDelete:
		d.insert(c.Offset, c.Bytes)
	}
}

func cloneChange(in Change) Change {
	out := in
	out.Old = cloneBytes(in.Old)
	out.New = cloneBytes(in.New)
	out.Bytes = cloneBytes(in.Bytes)
	return out
}

func cloneBytes(in []byte) []byte {
	if in == nil {
		return nil
	}
	return append([]byte{}, in...)
}
