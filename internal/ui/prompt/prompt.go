package prompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/log"
)

// Config defines prompt configuration with optional callbacks.
type Config struct {
	// Placeholder is the text shown when the buffer is empty.
	Placeholder string

	// StartInInsert starts the prompt in Insert mode instead of Normal.
	StartInInsert bool

	// SystemClipboard mirrors yanks to the OS clipboard and pulls from it
	// before pastes. Clipboard errors are logged, never surfaced.
	SystemClipboard bool

	// OnSubmit produces a custom message when content is submitted (Enter
	// in Normal mode). If nil, the prompt produces SubmitMsg.
	OnSubmit func(content string) tea.Msg

	// OnModeChange produces a custom message when the mode changes.
	// If nil, ModeChangeMsg is emitted.
	OnModeChange func(mode, previous Mode) tea.Msg
}

// SubmitMsg is sent when the user submits content.
type SubmitMsg struct {
	Content string
}

// ModeChangeMsg is sent when the editing mode changes.
type ModeChangeMsg struct {
	Mode     Mode
	Previous Mode
}

// Model holds the prompt state. The buffer itself lives in an editor.State;
// the model layers mode tracking, the minibuffer, and rendering on top.
type Model struct {
	config Config

	state  editor.State
	mode   Mode
	keymap keymap

	// Minibuffer for / and : input.
	input textinput.Model

	help     helpModel
	showHelp bool

	width   int
	height  int
	focused bool

	// Scrolling: first visible buffer row.
	scrollOffset int
}

// New creates a new prompt with the given configuration.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	m := ModeNormal
	if cfg.StartInInsert {
		m = ModeInsert
	}

	return Model{
		config: cfg,
		state:  editor.NewState(),
		mode:   m,
		input:  ti,
		help:   newHelpModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		m, cmd := m.handleKeyMsg(msg)
		m.ensureCursorVisible()
		return m, cmd
	}
	return m, nil
}

// keyToString converts a tea.KeyMsg to a keymap-compatible key string.
// Returns empty string for unhandled key types.
func keyToString(msg tea.KeyMsg) string {
	if msg.String() == "ctrl+r" {
		return "<ctrl+r>"
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return string(msg.Runes[0])
		}
		return "<runes>" // multi-rune input (bracketed paste)
	case tea.KeyEscape:
		return "<escape>"
	case tea.KeyEnter:
		return "<enter>"
	case tea.KeyBackspace:
		return "<backspace>"
	case tea.KeySpace:
		return " "
	case tea.KeyLeft:
		return "<left>"
	case tea.KeyRight:
		return "<right>"
	case tea.KeyUp:
		return "<up>"
	case tea.KeyDown:
		return "<down>"
	default:
		return ""
	}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key dismisses the help overlay.
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case ModeInsert:
		return m.handleInsertKey(msg)
	case ModeSearch, ModeGoto:
		return m.handleMinibufferKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

// handleNormalKey covers Normal and Visual mode, both served by the keymap.
func (m Model) handleNormalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := keyToString(msg)
	if key == "" {
		return m, nil
	}

	a := m.keymap.feed(m.mode, key, m.state)

	if a.submit {
		return m.submitContent()
	}
	if a.toggleHelp {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if a.pasting {
		m.pullSystemClipboard()
	}
	for _, cmd := range a.cmds {
		m.state = editor.Apply(m.state, cmd)
	}
	if a.yanked {
		m.pushSystemClipboard()
	}

	var teaCmd tea.Cmd
	if a.hasMode && a.setMode != m.mode {
		previous := m.mode
		m.mode = a.setMode
		if m.mode == ModeSearch || m.mode == ModeGoto {
			m.input.SetValue("")
			m.input.Focus()
		}
		teaCmd = m.modeChangeCmd(previous)
	}
	return m, teaCmd
}

func (m Model) handleInsertKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.state = editor.Apply(m.state, editor.EscapeInsert{})
		previous := m.mode
		m.mode = ModeNormal
		return m, m.modeChangeCmd(previous)
	case tea.KeyEnter:
		m.state = editor.Apply(m.state, editor.InsertText{Text: "\n"})
		return m, nil
	case tea.KeyBackspace:
		m.state = editor.Apply(m.state, editor.Backspace{})
		return m, nil
	case tea.KeySpace:
		m.state = editor.Apply(m.state, editor.InsertText{Text: " "})
		return m, nil
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			m.state = editor.Apply(m.state, editor.InsertText{Text: string(msg.Runes)})
		}
		return m, nil
	case tea.KeyLeft:
		m.state = editor.Apply(m.state, editor.MoveLeft{})
		return m, nil
	case tea.KeyRight:
		m.state = editor.Apply(m.state, editor.MoveRight{})
		return m, nil
	case tea.KeyUp:
		m.state = editor.Apply(m.state, editor.MoveUp{})
		return m, nil
	case tea.KeyDown:
		m.state = editor.Apply(m.state, editor.MoveDown{})
		return m, nil
	}
	return m, nil
}

// handleMinibufferKey feeds keys to the textinput while a search query or
// line number is being typed.
func (m Model) handleMinibufferKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.input.Blur()
		previous := m.mode
		m.mode = ModeNormal
		return m, m.modeChangeCmd(previous)
	case tea.KeyEnter:
		value := m.input.Value()
		m.input.Blur()
		previous := m.mode

		switch m.mode {
		case ModeSearch:
			m.state = editor.Apply(m.state, editor.Search{Query: value, Direction: editor.SearchForward})
		case ModeGoto:
			if line, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				m.state = editor.Apply(m.state, editor.GotoLine{Line: line})
			} else if value != "" {
				log.Warn(log.CatKeymap, "goto: not a line number", "input", value)
			}
		}

		m.mode = ModeNormal
		return m, m.modeChangeCmd(previous)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitContent() (Model, tea.Cmd) {
	content := m.Value()
	if m.config.OnSubmit != nil {
		return m, func() tea.Msg {
			return m.config.OnSubmit(content)
		}
	}
	return m, func() tea.Msg {
		return SubmitMsg{Content: content}
	}
}

func (m Model) modeChangeCmd(previous Mode) tea.Cmd {
	if m.config.OnModeChange != nil {
		return func() tea.Msg {
			return m.config.OnModeChange(m.mode, previous)
		}
	}
	return func() tea.Msg {
		return ModeChangeMsg{Mode: m.mode, Previous: previous}
	}
}

// ============================================================================
// Public API
// ============================================================================

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.help.setSize(w, h)
	m.ensureCursorVisible()
}

// Focus focuses the prompt.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus and abandons any pending operator sequence.
func (m *Model) Blur() {
	m.focused = false
	m.keymap.reset()
}

// Focused returns whether the prompt is focused.
func (m Model) Focused() bool {
	return m.focused
}

// Mode returns the current editing mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Value returns the buffer content as a single string with line breaks.
func (m Model) Value() string {
	return strings.Join(m.state.Lines(), "\n")
}

// Lines returns the buffer content as lines.
func (m Model) Lines() []string {
	return m.state.Lines()
}

// SetValue replaces the buffer content, discarding history.
func (m *Model) SetValue(s string) {
	if s == "" {
		m.state = editor.NewState()
	} else {
		m.state = editor.NewStateFromLines(strings.Split(s, "\n"))
	}
	m.mode = ModeNormal
	m.keymap.reset()
	m.scrollOffset = 0
}

// CursorPosition returns the cursor position in the buffer.
func (m Model) CursorPosition() editor.Position {
	return m.state.Cursor()
}

// State exposes the underlying buffer state, for tests and embedding hosts.
func (m Model) State() editor.State {
	return m.state
}

// Reset clears the content, history, and pending key state.
func (m *Model) Reset() {
	m.state = editor.NewState()
	m.mode = ModeNormal
	m.keymap.reset()
	m.scrollOffset = 0
}
