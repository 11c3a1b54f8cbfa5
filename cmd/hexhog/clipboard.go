package main

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/hexhog/editor"
)

var errNoClipboard = errors.New("system clipboard unsupported")

// systemClipboard adapts the OS clipboard to editor.Clipboard.
type systemClipboard struct{}

// newSystemClipboard returns nil when no clipboard utility is available, so
// the editor keeps yanks session-local.
func newSystemClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}

func (systemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", errNoClipboard
	}
	return clipboard.ReadAll()
}

func (systemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(s)
}
