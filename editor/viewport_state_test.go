package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewportState_WheelScrollsWithoutMovingCursor(t *testing.T) {
	m := New(Config{Data: make([]byte, 200)})
	m = m.SetSize(RowCells, 5)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got, want := m.ViewportState().TopRow, wheelRows; got != want {
		t.Fatalf("top after wheel down: got %d, want %d", got, want)
	}
	if got := m.sess.Offset(); got != 0 {
		t.Fatalf("wheel moved the cursor to %d", got)
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	}
	if got, want := m.ViewportState().TopRow, 12; got != want {
		t.Fatalf("top clamps at the append row: got %d, want %d", got, want)
	}
}

func TestViewportState_ScrollFollowCursorOnly_IgnoresWheel(t *testing.T) {
	m := New(Config{Data: make([]byte, 200), ScrollPolicy: ScrollFollowCursorOnly})
	m = m.SetSize(RowCells, 5)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.ViewportState().TopRow; got != 0 {
		t.Fatalf("top after wheel: got %d, want 0", got)
	}
}

func TestMouse_ClickAndDragSelect(t *testing.T) {
	m := New(Config{Data: make([]byte, 64)})
	m = m.SetSize(RowCells, 8)

	m, _ = m.Update(tea.MouseMsg{X: cellX(2), Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.sess.Offset(); got != 2 {
		t.Fatalf("offset after click: got %d, want 2", got)
	}

	m, _ = m.Update(tea.MouseMsg{X: cellX(4), Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	r, ok := m.sess.Selection()
	if !ok {
		t.Fatalf("expected drag to select")
	}
	if r.Lo != 2 || r.Hi != 20 {
		t.Fatalf("drag selection: got %v, want [2,20]", r)
	}

	m, _ = m.Update(tea.MouseMsg{X: cellX(4), Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: cellX(9), Y: 1, Action: tea.MouseActionMotion})
	if r2, _ := m.sess.Selection(); r2 != r {
		t.Fatalf("motion after release changed selection: got %v", r2)
	}
}
