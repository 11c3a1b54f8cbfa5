package buffer

import (
	"bytes"
	"errors"
	"encoding/hex"
	"testing"
)

func TestParseHexDigit(t *testing.T) {
	cases := []struct {
		r    rune
		want byte
		ok   bool
	}{
		{r: '0', want: 0, ok: true},
		{r: '9', want: 9, ok: true},
		{r: 'a', want: 10, ok: true},
		{r: 'F', want: 15, ok: true},
		{r: 'g', ok: false},
		{r: ' ', ok: false},
		{r: 'é', ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseHexDigit(tc.r)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseHexDigit(%q)=(%d,%v), want (%d,%v)", tc.r, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []byte
	}{
		{name: "packed", in: "4142", want: []byte{0x41, 0x42}},
		{name: "spaced", in: "41 42\n43", want: []byte{0x41, 0x42, 0x43}},
		{name: "prefixed", in: "0x41 0X42", want: []byte{0x41, 0x42}},
		{name: "lower", in: "ff", want: []byte{0xFF}},
		{name: "empty", in: "  ", want: []byte{}},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("%s: got %X, want %X", tc.name, got, tc.want)
		}
	}
}

func TestParseHex_Errors(t *testing.T) {
	if _, err := ParseHex("414"); !errors.Is(err, hex.ErrLength) {
		t.Fatalf("odd length: got %v, want hex.ErrLength", err)
	}

	_, err := ParseHex("zz")
	var invalid hex.InvalidByteError
	if !errors.As(err, &invalid) {
		t.Fatalf("invalid digit: got %v, want hex.InvalidByteError", err)
	}
}

func TestFormatHex(t *testing.T) {
	if got, want := FormatHex(nil), "[]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := FormatHex([]byte{0x00, 0x0A, 0xFF}), "[00 0A FF]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
