package editor

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		b    byte
		want ByteClass
	}{
		{b: 0x00, want: ClassNull},
		{b: 'A', want: ClassASCIIPrintable},
		{b: '~', want: ClassASCIIPrintable},
		{b: ' ', want: ClassASCIIWhitespace},
		{b: '\t', want: ClassASCIIWhitespace},
		{b: '\r', want: ClassASCIIWhitespace},
		{b: 0x0B, want: ClassASCIIOther},
		{b: 0x7F, want: ClassASCIIOther},
		{b: 0x80, want: ClassNonASCII},
		{b: 0xFF, want: ClassNonASCII},
	}
	for _, tc := range cases {
		if got := Classify(tc.b); got != tc.want {
			t.Fatalf("Classify(%#02x): got %v, want %v", tc.b, got, tc.want)
		}
	}
}

func TestCharset_Glyph(t *testing.T) {
	cs := DefaultCharset()
	cases := []struct {
		b    byte
		want string
	}{
		{b: 0x00, want: "."},
		{b: 'z', want: "z"},
		{b: ' ', want: " "},
		{b: '\n', want: "·"},
		{b: 0x1B, want: "°"},
		{b: 0xC3, want: "×"},
	}
	for _, tc := range cases {
		if got := cs.Glyph(tc.b); got != tc.want {
			t.Fatalf("Glyph(%#02x): got %q, want %q", tc.b, got, tc.want)
		}
	}

	var zero Charset
	if got := zero.Glyph(0x00); got != "." {
		t.Fatalf("zero charset falls back to defaults: got %q", got)
	}
}
