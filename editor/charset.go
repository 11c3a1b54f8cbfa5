package editor

// ByteClass groups byte values for coloring and glyph selection.
type ByteClass uint8

const (
	ClassNull ByteClass = iota
	// ClassASCIIPrintable is 0x21..0x7E.
	ClassASCIIPrintable
	// ClassASCIIWhitespace is space, tab, LF, FF and CR.
	ClassASCIIWhitespace
	// ClassASCIIOther is every remaining byte below 0x80.
	ClassASCIIOther
	ClassNonASCII
)

func (c ByteClass) String() string {
	switch c {
	case ClassNull:
		return "null"
	case ClassASCIIPrintable:
		return "ascii_printable"
	case ClassASCIIWhitespace:
		return "ascii_whitespace"
	case ClassASCIIOther:
		return "ascii_other"
	default:
		return "non_ascii"
	}
}

// Classify returns the class of b.
func Classify(b byte) ByteClass {
	switch {
	case b == 0:
		return ClassNull
	case b >= 0x21 && b <= 0x7E:
		return ClassASCIIPrintable
	case b == ' ' || b == '\t' || b == '\n' || b == '\f' || b == '\r':
		return ClassASCIIWhitespace
	case b < 0x80:
		return ClassASCIIOther
	default:
		return ClassNonASCII
	}
}

// Charset holds the single-cell glyphs shown in the character column for
// bytes that have no printable form of their own.
type Charset struct {
	Null            string
	ASCIIWhitespace string
	ASCIIOther      string
	NonASCII        string
}

func DefaultCharset() Charset {
	return Charset{
		Null:            ".",
		ASCIIWhitespace: "·",
		ASCIIOther:      "°",
		NonASCII:        "×",
	}
}

// Glyph returns the character-column glyph for b. Printable ASCII and the
// space character stand for themselves.
func (cs Charset) Glyph(b byte) string {
	switch Classify(b) {
	case ClassNull:
		return orDefault(cs.Null, ".")
	case ClassASCIIPrintable:
		return string(rune(b))
	case ClassASCIIWhitespace:
		if b == ' ' {
			return " "
		}
		return orDefault(cs.ASCIIWhitespace, "·")
	case ClassASCIIOther:
		return orDefault(cs.ASCIIOther, "°")
	default:
		return orDefault(cs.NonASCII, "×")
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
