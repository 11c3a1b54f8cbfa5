package buffer

import (
	"bytes"
	"testing"
)

func TestData_ReplaceOverwritesAndAppends(t *testing.T) {
	d := newData([]byte{0x00, 0x01})
	d.replace(1, []byte{0xAA, 0xBB, 0xCC})
	if got, want := d.Bytes(), []byte{0x00, 0xAA, 0xBB, 0xCC}; !bytes.Equal(got, want) {
		t.Fatalf("data=%X, want %X", got, want)
	}

	d.replace(0, []byte{0x11})
	if got, want := d.Len(), 4; got != want {
		t.Fatalf("len after in-place replace: got %d, want %d", got, want)
	}
}

func TestData_InsertShiftsRight(t *testing.T) {
	d := newData([]byte{0x41, 0x44})
	d.insert(1, []byte{0x42, 0x43})
	if got, want := d.Bytes(), []byte{0x41, 0x42, 0x43, 0x44}; !bytes.Equal(got, want) {
		t.Fatalf("data=%X, want %X", got, want)
	}

	d.insert(d.Len(), []byte{0x45})
	if got, want := d.Bytes(), []byte{0x41, 0x42, 0x43, 0x44, 0x45}; !bytes.Equal(got, want) {
		t.Fatalf("data after append insert=%X, want %X", got, want)
	}

	d.insert(0, []byte{0x40})
	if got, want := d.Bytes()[0], byte(0x40); got != want {
		t.Fatalf("first byte=%X, want %X", got, want)
	}
}

func TestData_InsertIntoEmpty(t *testing.T) {
	d := newData(nil)
	d.insert(0, []byte{0xFF})
	if got, want := d.Bytes(), []byte{0xFF}; !bytes.Equal(got, want) {
		t.Fatalf("data=%X, want %X", got, want)
	}
}

func TestData_DeleteTruncatesPastEnd(t *testing.T) {
	d := newData([]byte{1, 2, 3, 4})
	if got, want := d.delete(2, 10), 2; got != want {
		t.Fatalf("removed=%d, want %d", got, want)
	}
	if got, want := d.Bytes(), []byte{1, 2}; !bytes.Equal(got, want) {
		t.Fatalf("data=%X, want %X", got, want)
	}

	if got := d.delete(2, 1); got != 0 {
		t.Fatalf("delete at end removed %d, want 0", got)
	}
	if got := d.delete(5, 1); got != 0 {
		t.Fatalf("delete past end removed %d, want 0", got)
	}
	if got, want := d.Len(), 2; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
}

func TestData_ReadersCopy(t *testing.T) {
	src := []byte{1, 2, 3}
	d := newData(src)
	src[0] = 9
	if v, _ := d.At(0); v != 1 {
		t.Fatalf("newData must copy its input")
	}

	out := d.Slice(0, 2)
	out[0] = 9
	if v, _ := d.At(0); v != 1 {
		t.Fatalf("Slice must return a copy")
	}

	if got := d.Slice(1, 10); !bytes.Equal(got, []byte{2, 3}) {
		t.Fatalf("truncated slice=%X, want 0203", got)
	}
	if got := d.Slice(3, 1); got != nil {
		t.Fatalf("slice at end=%X, want nil", got)
	}
	if _, ok := d.At(3); ok {
		t.Fatalf("At(len) must report false")
	}
}
