package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func gridLines(t *testing.T, m Model) []string {
	t.Helper()
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) < 3 {
		t.Fatalf("view too short: %q", lines)
	}
	grid := lines[1 : len(lines)-1]
	for i := range grid {
		grid[i] = strings.TrimRight(grid[i], " ")
	}
	return grid
}

func TestRender_GridRow(t *testing.T) {
	m := New(Config{Data: []byte("ABC")})
	m = m.SetSize(RowCells, 5)

	got := gridLines(t, m)
	want := "00000000 │ 41 42 43" + strings.Repeat(" ", 41) + "│ ABC"
	if got[0] != want {
		t.Fatalf("row 0:\n got: %q\nwant: %q", got[0], want)
	}
	if got[1] != "" {
		t.Fatalf("row 1: got %q, want blank padding", got[1])
	}
}

func TestRender_FullRowHasGapAfterEighthByte(t *testing.T) {
	data := make([]byte, 17)
	for i := range data {
		data[i] = byte(0x30 + i%10)
	}
	m := New(Config{Data: data})
	m = m.SetSize(RowCells, 5)

	got := gridLines(t, m)
	want := "00000000 │ 30 31 32 33 34 35 36 37  38 39 30 31 32 33 34 35 │ 0123456789012345"
	if got[0] != want {
		t.Fatalf("row 0:\n got: %q\nwant: %q", got[0], want)
	}
	if !strings.HasPrefix(got[1], "00000010 │ 36") {
		t.Fatalf("row 1: got %q", got[1])
	}
}

func TestRender_CharsetGlyphs(t *testing.T) {
	m := New(Config{
		Data:    []byte{0x00, ' ', '\n', 0x01, 0xFF},
		Charset: Charset{Null: "0", ASCIIWhitespace: "w", ASCIIOther: "o", NonASCII: "n"},
	})
	m = m.SetSize(RowCells, 5)

	got := gridLines(t, m)
	if !strings.HasSuffix(got[0], "│ 0 won") {
		t.Fatalf("char column: got %q", got[0])
	}
}

func TestRender_AppendSlotCursorCell(t *testing.T) {
	m := New(Config{Data: []byte{0xAA}})
	m = m.SetSize(RowCells, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	got := gridLines(t, m)
	if !strings.HasPrefix(got[0], "00000000 │ AA    ") {
		t.Fatalf("row 0: got %q", got[0])
	}
	if gotRows := len(got); gotRows != 3 {
		t.Fatalf("grid rows: got %d, want 3", gotRows)
	}
}

func TestRender_PendingNibbleCells(t *testing.T) {
	m := New(Config{Data: []byte{0xAB, 0xCD}})
	m = m.SetSize(RowCells, 5)

	m = press(m, "7")
	if got := gridLines(t, m)[0]; !strings.HasPrefix(got, "00000000 │ 7_ CD") {
		t.Fatalf("overwrite pending: got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = press(m, "i", "1")
	if got := gridLines(t, m)[0]; !strings.HasPrefix(got, "00000000 │ 1_ AB CD") {
		t.Fatalf("insert pending shifts bytes: got %q", got)
	}
}

func TestRender_ClassColorsProduceANSI(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	st := Style{
		ASCIIPrintable: r.NewStyle().Foreground(lipgloss.Color("#0000ff")),
		Cursor:         r.NewStyle().Reverse(true),
	}
	m := New(Config{Data: []byte("AB"), Style: st})
	m = m.SetSize(RowCells, 5)

	view := m.View()
	if !strings.Contains(view, "\x1b[") {
		t.Fatalf("expected ANSI sequences in %q", view)
	}
	if got := gridLines(t, m)[0]; !strings.HasPrefix(got, "00000000 │ 41 42") {
		t.Fatalf("stripped row: got %q", got)
	}
}

func TestRender_TitleAndStatus(t *testing.T) {
	m := New(Config{Path: "/tmp/data.bin", Data: []byte{1, 2, 3}})
	m = m.SetSize(RowCells, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	title, status := lines[0], lines[len(lines)-1]
	if !strings.Contains(title, "hexhog ─ data.bin") {
		t.Fatalf("title: got %q", title)
	}
	for _, want := range []string{"h - help", "move", "cursor: 00000001", "size: 3 bytes"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}

	m = press(m, "f", "f")
	lines = strings.Split(ansi.Strip(m.View()), "\n")
	if !strings.Contains(lines[0], "data.bin [+]") {
		t.Fatalf("modified title: got %q", lines[0])
	}
}

func TestRender_HelpPopup(t *testing.T) {
	m := New(Config{Data: make([]byte, 64)})
	m = m.SetSize(RowCells, 12)
	m = press(m, "h")

	view := ansi.Strip(m.View())
	for _, want := range []string{"h - help", "u - undo", "q - quit", "s - save"} {
		if !strings.Contains(view, want) {
			t.Fatalf("help popup missing %q:\n%s", want, view)
		}
	}
	if got, want := lipgloss.Height(m.View()), 12; got != want {
		t.Fatalf("height with popup: got %d, want %d", got, want)
	}
}
