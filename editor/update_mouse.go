package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && isWheel(msg) {
		if m.cfg.ScrollPolicy == ScrollAllowManual {
			switch msg.Button { //nolint:exhaustive
			case tea.MouseButtonWheelUp:
				m.scrollBy(-wheelRows)
			case tea.MouseButtonWheelDown:
				m.scrollBy(wheelRows)
			}
		}
		return m, nil
	}

	if m.Mode() != ModeMove {
		return m, nil
	}

	// Only left button interactions move the cursor or select.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		off, ok := m.OffsetAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if msg.Shift {
			anchor := m.sess.Offset()
			if a, ok := m.sess.SelectionAnchor(); ok {
				anchor = a
			}
			m.mouseAnchor = anchor
			m.sess.SetSelection(anchor, off)
		} else {
			m.mouseAnchor = off
			m.sess.ClearSelection()
			m.sess.SetOffset(off)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		off, _ := m.OffsetAt(m.clampMouseToGrid(msg.X, msg.Y))
		if off != m.mouseAnchor {
			m.sess.SetSelection(m.mouseAnchor, off)
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Button == tea.MouseButtonWheelUp ||
		msg.Button == tea.MouseButtonWheelDown ||
		msg.Button == tea.MouseButtonWheelLeft ||
		msg.Button == tea.MouseButtonWheelRight
}

func (m Model) clampMouseToGrid(x, y int) (int, int) {
	if m.width > 0 {
		x = clampInt(x, 0, m.width-1)
	}
	if h := m.gridRows(); h > 0 {
		y = clampInt(y, 1, h)
	}
	return x, y
}
