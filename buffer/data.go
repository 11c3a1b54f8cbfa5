package buffer

// Data is the mutable byte sequence behind a Session.
//
// Readers are exported; the three mutators are not, so every mutation goes
// through Change application.
type Data struct {
	b []byte
}

func newData(b []byte) *Data {
	return &Data{b: append([]byte(nil), b...)}
}

// Len returns the number of bytes.
func (d *Data) Len() int { return len(d.b) }

// At returns the byte at offset.
func (d *Data) At(offset int) (byte, bool) {
	if offset < 0 || offset >= len(d.b) {
		return 0, false
	}
	return d.b[offset], true
}

// Slice returns a copy of the bytes in [offset, offset+n), truncated at the
// end of the data.
func (d *Data) Slice(offset, n int) []byte {
	if offset < 0 || n <= 0 || offset >= len(d.b) {
		return nil
	}
	end := minInt(offset+n, len(d.b))
	return append([]byte(nil), d.b[offset:end]...)
}

// Bytes returns a copy of the whole sequence.
func (d *Data) Bytes() []byte {
	return append([]byte(nil), d.b...)
}

// replace overwrites bytes starting at offset, appending whatever runs past
// the current end. The length never shrinks.
func (d *Data) replace(offset int, bs []byte) {
	for i, v := range bs {
		pos := offset + i
		if pos < len(d.b) {
			d.b[pos] = v
		} else {
			d.b = append(d.b, v)
		}
	}
}

// insert shifts everything at or after offset right by len(bs).
// offset must be <= Len; larger offsets are clamped to the append slot.
func (d *Data) insert(offset int, bs []byte) {
	if len(bs) == 0 {
		return
	}
	offset = clampInt(offset, 0, len(d.b))
	d.b = append(d.b, bs...)
	copy(d.b[offset+len(bs):], d.b[offset:len(d.b)-len(bs)])
	copy(d.b[offset:], bs)
}

// delete removes up to n bytes at offset and returns how many were removed.
// Deleting past the end is a truncated no-op.
func (d *Data) delete(offset, n int) int {
	if offset < 0 || n <= 0 || offset >= len(d.b) {
		return 0
	}
	end := minInt(offset+n, len(d.b))
	removed := end - offset
	d.b = append(d.b[:offset], d.b[end:]...)
	return removed
}
