package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexhog/editor"
)

type app struct {
	editor editor.Model
}

func newApp(ed editor.Model) app { return app{editor: ed} }

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
