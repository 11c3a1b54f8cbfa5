package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings used in move mode.
//
// Edit mode only listens for hex digits and Cancel; help mode closes on any
// key.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding
	DocStart, DocEnd      key.Binding

	ToggleSelect key.Binding
	Cancel       key.Binding

	Yank, Paste, PasteHex key.Binding
	Delete                key.Binding
	Insert                key.Binding

	Undo, Redo key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "row end")),
		DocStart: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		DocEnd:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),

		ToggleSelect: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Paste:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		PasteHex: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "paste hex")),
		Delete:   key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("bs", "delete")),
		Insert:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),

		Undo: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo: key.NewBinding(key.WithKeys("U", "ctrl+r"), key.WithHelp("U", "redo")),
		Save: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Help: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpBindings lists the bindings shown in the help popup, two per line.
func (km KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		km.Help, km.Undo,
		km.Quit, km.Redo,
		km.Insert, km.Save,
		km.ToggleSelect, km.Yank,
		km.Paste, km.PasteHex,
		km.Delete, km.PageDown,
		km.DocStart, km.DocEnd,
	}
}
