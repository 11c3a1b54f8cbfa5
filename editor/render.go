package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/hexhog/buffer"
	"github.com/iw2rmb/hexhog/internal/grapheme"
)

// Grid geometry, in terminal cells.
const (
	offsetWidth = 8
	// hexWidth covers 16 two-digit cells, 15 separators and the extra gap
	// after the eighth cell.
	hexWidth  = buffer.RowWidth*2 + buffer.RowWidth - 1 + 1
	hexStart  = offsetWidth + 3
	charStart = hexStart + hexWidth + 3
	// RowCells is the rendered width of one grid row.
	RowCells = charStart + buffer.RowWidth
)

// gridCell is one slot of the rendered grid.
type gridCell struct {
	offset  int
	value   byte
	present bool
	pending bool
	cursor  bool
}

// gridView snapshots what a render needs from the session.
type gridView struct {
	s        *buffer.Session
	cursor   int
	sel      buffer.Range
	selOK    bool
	nib      buffer.NibbleInput
	editing  bool
	insertAt int
}

func newGridView(s *buffer.Session) gridView {
	v := gridView{s: s, cursor: s.Offset(), insertAt: -1}
	v.sel, v.selOK = s.Selection()
	var mode buffer.EditMode
	v.nib, mode, v.editing = s.Editing()
	if v.editing && mode == buffer.EditInsert {
		v.insertAt = v.cursor
	}
	return v
}

// cells returns the number of grid slots to draw: every byte, plus the
// pending insert cell, plus the append slot when the cursor is on it.
func (v gridView) cells() int {
	n := v.s.Len()
	if v.insertAt >= 0 {
		n++
	}
	if v.cursor >= n {
		n = v.cursor + 1
	}
	return n
}

// cellAt maps grid slot k to its content. A pending insert shifts every
// later byte one slot to the right.
func (v gridView) cellAt(k int) gridCell {
	c := gridCell{offset: k, cursor: k == v.cursor}
	if v.editing && k == v.cursor {
		c.pending = true
		return c
	}
	if v.insertAt >= 0 && k > v.insertAt {
		c.offset = k - 1
	}
	if b, ok := v.s.Data().At(c.offset); ok {
		c.value = b
		c.present = true
	}
	return c
}

func (v gridView) selected(offset int) bool {
	return v.selOK && v.sel.Contains(offset)
}

func (m *Model) renderContent() string {
	h := m.gridRows()
	if h <= 0 {
		return ""
	}

	v := newGridView(m.sess)
	total := v.cells()
	cursorRow := buffer.PositionOf(v.cursor).Row

	out := make([]string, 0, h)
	for row := m.top; row < m.top+h; row++ {
		start := row * buffer.RowWidth
		if start >= total {
			break
		}
		out = append(out, m.renderRow(v, row, total, row == cursorRow))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRow(v gridView, row, total int, active bool) string {
	st := m.cfg.Style
	start := row * buffer.RowWidth

	var sb strings.Builder
	offStyle := st.Offset
	if active {
		offStyle = st.OffsetActive
	}
	sb.WriteString(offStyle.Render(fmt.Sprintf("%08X", start)))
	sb.WriteString(" " + st.Border.Render("│") + " ")

	var chars strings.Builder
	for j := 0; j < buffer.RowWidth; j++ {
		k := start + j
		if k >= total {
			pad := buffer.RowWidth - j
			spaces := pad * 3
			if j < buffer.RowWidth/2 {
				spaces++
			}
			sb.WriteString(strings.Repeat(" ", spaces))
			chars.WriteString(strings.Repeat(" ", pad))
			break
		}

		c := v.cellAt(k)
		hexText, glyph, style := m.cellText(v, c)
		sb.WriteString(style.Render(hexText))
		chars.WriteString(style.Render(glyph))

		if j == buffer.RowWidth-1 {
			sb.WriteString(" ")
			continue
		}
		gap := " "
		if j == buffer.RowWidth/2-1 {
			gap = "  "
		}
		if c.present && !c.pending && v.selected(c.offset) && v.selected(c.offset+1) && k+1 < total {
			sb.WriteString(st.Selection.Render(gap))
		} else {
			sb.WriteString(gap)
		}
	}

	sb.WriteString(st.Border.Render("│") + " ")
	sb.WriteString(chars.String())
	return sb.String()
}

// cellText returns the hex text, character-column glyph and style for c.
func (m *Model) cellText(v gridView, c gridCell) (string, string, lipgloss.Style) {
	st := m.cfg.Style
	switch {
	case c.pending:
		return v.nib.String(), " ", st.Pending
	case !c.present:
		// Append slot.
		return "  ", " ", st.Cursor
	}

	style := st.forClass(Classify(c.value))
	if v.selected(c.offset) {
		style = st.Selection.Inherit(style)
	}
	if c.cursor {
		style = st.Cursor.Inherit(style)
	}
	return fmt.Sprintf("%02X", c.value), m.cfg.Charset.Glyph(c.value), style
}

func (m Model) renderTitle() string {
	name := m.cfg.Path
	if name == "" {
		name = "[no file]"
	} else {
		name = filepath.Base(name)
	}
	if m.sess.Modified() {
		name += " [+]"
	}
	title := " hexhog ─ " + name + " "
	if m.width > 0 && grapheme.Width(title) > m.width {
		title = grapheme.Fit(title, m.width, "…")
	}
	return m.cfg.Style.Title.Render(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
}

func (m Model) renderStatus() string {
	parts := []string{
		"h - help",
		m.modeLabel(),
		fmt.Sprintf("cursor: %08X", m.sess.Offset()),
		fmt.Sprintf("size: %d bytes", m.sess.Len()),
	}
	if r, ok := m.sess.Selection(); ok {
		parts = append(parts, fmt.Sprintf("sel: %d", r.Len()))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	text := " " + strings.Join(parts, " │ ") + " "
	if m.width > 0 && grapheme.Width(text) > m.width {
		text = grapheme.Fit(text, m.width, "…")
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.cfg.Style.Status.Render(text))
}

func (m Model) modeLabel() string {
	nib, mode, ok := m.sess.Editing()
	if !ok {
		return m.Mode().String()
	}
	return fmt.Sprintf("%s %s", mode, nib)
}

func (m Model) renderHelp() string {
	st := m.cfg.Style
	bindings := m.cfg.KeyMap.helpBindings()

	colW := 0
	for _, b := range bindings {
		h := b.Help()
		colW = maxInt(colW, grapheme.Width(h.Key+" - "+h.Desc))
	}
	colW += 2

	var lines []string
	for i := 0; i < len(bindings); i += 2 {
		var sb strings.Builder
		for j := i; j < i+2 && j < len(bindings); j++ {
			h := bindings[j].Help()
			kw := grapheme.Width(h.Key)
			sb.WriteString(st.HelpKey.Render(h.Key))
			sb.WriteString(st.HelpText.Render(grapheme.Fit(" - "+h.Desc, colW-kw, "…")))
		}
		lines = append(lines, sb.String())
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.HelpBorder.GetForeground()).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}

// overlayBottomRight draws popup over the bottom-right corner of base.
func overlayBottomRight(base, popup string, width int) string {
	baseLines := strings.Split(base, "\n")
	popLines := strings.Split(popup, "\n")
	popW := lipgloss.Width(popup)
	if width <= 0 {
		width = maxInt(lipgloss.Width(base), popW)
	}
	left := maxInt(width-popW, 0)

	for len(baseLines) < len(popLines) {
		baseLines = append(baseLines, "")
	}
	offset := len(baseLines) - len(popLines)
	for i, pl := range popLines {
		bl := baseLines[offset+i]
		bl = ansi.Truncate(bl, left, "")
		if w := ansi.StringWidth(bl); w < left {
			bl += strings.Repeat(" ", left-w)
		}
		baseLines[offset+i] = bl + pl
	}
	return strings.Join(baseLines, "\n")
}
