package buffer

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// ParseHexDigit returns the value of a single hex digit (either case).
func ParseHexDigit(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}

// ParseHex decodes hex text into bytes. Whitespace between digits is ignored
// and an optional 0x prefix per token is accepted, so "41 42", "4142" and
// "0x41 0x42" all decode to {0x41, 0x42}.
func ParseHex(s string) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range strings.FieldsFunc(s, unicode.IsSpace) {
		tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		sb.WriteString(tok)
	}
	out, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return out, nil
}

// FormatHex renders bs as space-separated upper-case byte pairs.
func FormatHex(bs []byte) string {
	if len(bs) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.Grow(len(bs)*3 + 1)
	sb.WriteByte('[')
	for i, v := range bs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
