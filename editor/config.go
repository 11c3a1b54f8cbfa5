package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/hexhog/buffer"
)

// Config configures the editor Model.
type Config struct {
	// Path is the file the session saves to; it is shown in the title.
	Path string
	// Initial bytes for the session.
	Data []byte

	Style   Style
	Charset Charset
	KeyMap  KeyMap

	// Clipboard is optional. When set, yanks are mirrored to it as hex text
	// and PasteHex reads from it.
	Clipboard Clipboard

	// Logger receives save and clipboard events; nil discards them.
	Logger *log.Logger

	ScrollPolicy ScrollPolicy

	// OnChange fires after any update that changed the session version.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
	TrackAppends bool
}

func (c Config) bufferOptions() buffer.Options {
	return buffer.Options{HistoryLimit: c.HistoryLimit, TrackAppends: c.TrackAppends}
}
