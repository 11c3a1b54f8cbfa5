package editor

// Clipboard mirrors yanked bytes to a system clipboard as hex text and reads
// hex text back for PasteHex.
//
// Errors must not crash the UI; they are logged and shown in the status line.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
