package editor

import (
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/hexhog/buffer"
)

// Mode is the input mode the editor is in.
type Mode uint8

const (
	// ModeMove routes keys to navigation, selection and commands.
	ModeMove Mode = iota
	// ModeEdit collects the hex digits of one byte.
	ModeEdit
	// ModeHelp shows the key reference; any key closes it.
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeHelp:
		return "help"
	default:
		return "move"
	}
}

// chromeRows is the title line plus the status line.
const chromeRows = 2

// Model is a Bubble Tea component that renders and edits a buffer.Session as
// a hex grid.
type Model struct {
	cfg    Config
	sess   *buffer.Session
	logger *log.Logger

	width    int
	viewport viewport.Model
	// top is the first grid row shown.
	top int

	help      bool
	quitArmed bool
	status    string

	mouseDragging bool
	mouseAnchor   int

	lastVersion uint64
	lastOffset  int
}

func New(cfg Config) Model {
	return NewWithSession(cfg, buffer.New(cfg.Data, cfg.bufferOptions()))
}

// NewWithSession wraps an existing session; cfg.Data and the history options
// are ignored.
func NewWithSession(cfg Config, s *buffer.Session) Model {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:      cfg,
		sess:     s,
		logger:   logger,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = s.Version()
	m.lastOffset = s.Offset()
	m.rebuildContent()
	return m
}

func (m Model) Session() *buffer.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

// Mode reports the current input mode.
func (m Model) Mode() Mode {
	if m.help {
		return ModeHelp
	}
	if _, _, ok := m.sess.Editing(); ok {
		return ModeEdit
	}
	return ModeMove
}

// Status returns the transient status message, if any.
func (m Model) Status() string { return m.status }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < chromeRows {
		height = chromeRows
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height - chromeRows

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	m.syncFromSession()
	return m, cmd
}

func (m Model) View() string {
	grid := m.viewport.View()
	if m.help {
		grid = overlayBottomRight(grid, m.renderHelp(), m.width)
	}
	return m.renderTitle() + "\n" + grid + "\n" + m.renderStatus()
}

// syncFromSession follows the cursor, re-renders, and fires OnChange when
// the session version moved.
func (m *Model) syncFromSession() {
	ver := m.sess.Version()
	off := m.sess.Offset()
	changed := ver != m.lastVersion || off != m.lastOffset
	if off != m.lastOffset {
		m.followCursor()
	}
	m.lastVersion = ver
	m.lastOffset = off
	m.rebuildContent()

	if changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess))
	}
}

func (m *Model) rebuildContent() {
	m.clampTop()
	m.viewport.SetContent(m.renderContent())
}

func (m Model) gridRows() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

// lastRow is the grid row holding the append slot.
func (m Model) lastRow() int {
	return buffer.PositionOf(m.sess.Len()).Row
}
