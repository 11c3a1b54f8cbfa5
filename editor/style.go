package editor

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette the editor is drawn with. Byte cells are
// colored by ByteClass; the remaining colors cover chrome.
type Theme struct {
	Null            lipgloss.TerminalColor
	ASCIIPrintable  lipgloss.TerminalColor
	ASCIIWhitespace lipgloss.TerminalColor
	ASCIIOther      lipgloss.TerminalColor
	NonASCII        lipgloss.TerminalColor

	Accent     lipgloss.TerminalColor
	Primary    lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Select     lipgloss.TerminalColor
	Background lipgloss.TerminalColor
}

func DefaultTheme() Theme {
	return Theme{
		Null:            lipgloss.Color("8"),
		ASCIIPrintable:  lipgloss.Color("4"),
		ASCIIWhitespace: lipgloss.Color("6"),
		ASCIIOther:      lipgloss.Color("3"),
		NonASCII:        lipgloss.Color("2"),
		Accent:          lipgloss.Color("4"),
		Primary:         lipgloss.Color("15"),
		Border:          lipgloss.Color("15"),
		Select:          lipgloss.Color("8"),
		Background:      lipgloss.NoColor{},
	}
}

// Style controls the editor's rendering.
type Style struct {
	// Byte cells, by class.
	Null            lipgloss.Style
	ASCIIPrintable  lipgloss.Style
	ASCIIWhitespace lipgloss.Style
	ASCIIOther      lipgloss.Style
	NonASCII        lipgloss.Style

	Offset       lipgloss.Style
	OffsetActive lipgloss.Style
	Border       lipgloss.Style

	// Selection is layered over a byte cell inside the selection range.
	Selection lipgloss.Style
	// Cursor is layered over the byte cell under the cursor.
	Cursor lipgloss.Style
	// Pending draws the nibble cell of an edit in progress.
	Pending lipgloss.Style

	Title  lipgloss.Style
	Status lipgloss.Style

	HelpBorder lipgloss.Style
	HelpKey    lipgloss.Style
	HelpText   lipgloss.Style
}

func DefaultStyle() Style { return StyleFromTheme(DefaultTheme()) }

// StyleFromTheme derives every style from a palette.
func StyleFromTheme(th Theme) Style {
	base := withBackground(lipgloss.NewStyle(), th.Background)
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return withForeground(base, c)
	}

	return Style{
		Null:            fg(th.Null),
		ASCIIPrintable:  fg(th.ASCIIPrintable),
		ASCIIWhitespace: fg(th.ASCIIWhitespace),
		ASCIIOther:      fg(th.ASCIIOther),
		NonASCII:        fg(th.NonASCII),

		Offset:       fg(th.Primary).Faint(true),
		OffsetActive: fg(th.Primary),
		Border:       fg(th.Border),

		Selection: withForeground(withBackground(lipgloss.NewStyle(), th.Select), th.Primary),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Pending:   withForeground(lipgloss.NewStyle(), th.Primary).Reverse(true),

		Title:  fg(th.Accent),
		Status: fg(th.Accent).Reverse(true),

		HelpBorder: fg(th.Primary),
		HelpKey:    fg(th.Accent),
		HelpText:   fg(th.Primary),
	}
}

func (s Style) forClass(c ByteClass) lipgloss.Style {
	switch c {
	case ClassNull:
		return s.Null
	case ClassASCIIPrintable:
		return s.ASCIIPrintable
	case ClassASCIIWhitespace:
		return s.ASCIIWhitespace
	case ClassASCIIOther:
		return s.ASCIIOther
	default:
		return s.NonASCII
	}
}

// nil colors leave the style untouched.
func withForeground(s lipgloss.Style, c lipgloss.TerminalColor) lipgloss.Style {
	if c == nil {
		return s
	}
	return s.Foreground(c)
}

func withBackground(s lipgloss.Style, c lipgloss.TerminalColor) lipgloss.Style {
	if c == nil {
		return s
	}
	return s.Background(c)
}
