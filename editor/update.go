package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexhog/buffer"
)

const quitConfirmMsg = "unsaved changes, press q again to quit"

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	armed := m.quitArmed
	m.quitArmed = false
	m.status = ""

	if m.help {
		m.help = false
		return m, nil
	}

	if _, _, editing := m.sess.Editing(); editing {
		m.updateEditKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Quit):
		if m.sess.Modified() && !armed {
			m.quitArmed = true
			m.status = quitConfirmMsg
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, km.Left):
		m.sess.MoveLeft()
	case key.Matches(msg, km.Right):
		m.sess.MoveRight()
	case key.Matches(msg, km.Up):
		m.sess.MoveUp()
	case key.Matches(msg, km.Down):
		m.sess.MoveDown()
	case key.Matches(msg, km.PageUp):
		m.sess.PageUp(m.gridRows())
	case key.Matches(msg, km.PageDown):
		m.sess.PageDown(m.gridRows())
	case key.Matches(msg, km.Home):
		m.sess.Move(buffer.Move{Unit: buffer.MoveStep, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.sess.Move(buffer.Move{Unit: buffer.MoveStep, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.sess.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.sess.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.ToggleSelect):
		m.sess.ToggleSelection()
	case key.Matches(msg, km.Cancel):
		m.sess.ClearSelection()

	case key.Matches(msg, km.Yank):
		m.yank()
	case key.Matches(msg, km.Paste):
		m.sess.Paste()
	case key.Matches(msg, km.PasteHex):
		m.pasteHex()
	case key.Matches(msg, km.Delete):
		m.sess.DeleteSelection()
	case key.Matches(msg, km.Insert):
		m.sess.BeginEdit(buffer.EditInsert)

	case key.Matches(msg, km.Undo):
		m.sess.Undo()
	case key.Matches(msg, km.Redo):
		m.sess.Redo()
	case key.Matches(msg, km.Save):
		m.save()
	case key.Matches(msg, km.Help):
		m.sess.ClearSelection()
		m.help = true

	default:
		if r, ok := singleRune(msg); ok {
			m.sess.TypeNibble(r)
		}
	}
	return m, nil
}

// updateEditKey handles keys while a byte is being typed: hex digits feed
// the pending byte; Cancel and Delete abandon it.
func (m *Model) updateEditKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	if key.Matches(msg, km.Cancel) || key.Matches(msg, km.Delete) {
		m.sess.CancelEdit()
		return
	}
	if r, ok := singleRune(msg); ok {
		m.sess.TypeNibble(r)
	}
}

func singleRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste || len(msg.Runes) != 1 {
		return 0, false
	}
	return msg.Runes[0], true
}

func (m *Model) yank() {
	if !m.sess.Yank() {
		return
	}
	bs := m.sess.Clipboard()
	m.status = fmt.Sprintf("copied %d bytes", len(bs))
	if m.cfg.Clipboard == nil {
		return
	}
	if err := m.cfg.Clipboard.WriteText(fmt.Sprintf("% X", bs)); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
	}
}

// pasteHex replaces the session clipboard with hex text read from the
// system clipboard, then pastes it.
func (m *Model) pasteHex() {
	if m.cfg.Clipboard == nil {
		m.status = "no system clipboard"
		return
	}
	text, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.logger.Warn("clipboard read failed", "err", err)
		m.status = "clipboard unavailable"
		return
	}
	bs, err := buffer.ParseHex(text)
	if err != nil {
		m.status = err.Error()
		return
	}
	if len(bs) == 0 {
		m.status = "clipboard is empty"
		return
	}
	m.sess.SetClipboard(bs)
	m.sess.Paste()
}

func (m *Model) save() {
	if m.cfg.Path == "" {
		m.status = "no file name"
		return
	}
	n, err := m.sess.SaveTo(m.cfg.Path)
	if err != nil {
		m.logger.Error("save failed", "path", m.cfg.Path, "err", err)
		m.status = err.Error()
		return
	}
	m.logger.Info("saved", "path", m.cfg.Path, "bytes", n)
	m.status = fmt.Sprintf("saved %d bytes", n)
}
