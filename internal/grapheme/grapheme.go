// Package grapheme measures terminal text by grapheme cluster and cell width.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// IsSingleCell reports whether text is exactly one printable grapheme
// cluster that fills exactly one terminal cell.
func IsSingleCell(text string) bool {
	if Count(text) != 1 || Width(text) != 1 {
		return false
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// Fit pads or truncates text to exactly width cells. Truncation never
// splits a grapheme cluster and ends with tail when it fits.
func Fit(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	w := Width(text)
	if w == width {
		return text
	}
	if w < width {
		return text + strings.Repeat(" ", width-w)
	}

	budget := width - Width(tail)
	if budget < 0 {
		budget = width
		tail = ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := Width(c)
		if used+cw > budget {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	used += Width(tail)
	if used < width {
		sb.WriteString(strings.Repeat(" ", width-used))
	}
	return sb.String()
}
