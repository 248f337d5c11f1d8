package prompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/ui/styles"
)

// ANSI codes for cursor and selection.
// Cursor uses reverse video, selection a dimmer gray background.
const (
	cursorOn     = "\x1b[7m"
	cursorOff    = "\x1b[27m"
	selectionOn  = "\x1b[48;5;238;38;5;255m"
	selectionOff = "\x1b[49;39m"
)

var placeholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)

// View renders the buffer, plus a status bar and, while a query is being
// typed, the minibuffer line. This implements the tea.Model View interface.
func (m Model) View() string {
	if m.showHelp {
		return m.help.view()
	}

	var b strings.Builder
	b.WriteString(m.renderBuffer())
	b.WriteByte('\n')
	if m.mode == ModeSearch || m.mode == ModeGoto {
		b.WriteString(m.renderMinibuffer())
	} else {
		b.WriteString(m.renderStatusBar())
	}
	return b.String()
}

// bufferHeight is the number of buffer rows visible above the status line.
func (m Model) bufferHeight() int {
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) renderBuffer() string {
	lines := m.state.Lines()

	if len(lines) == 1 && lines[0] == "" {
		return m.renderEmpty()
	}

	first := m.scrollOffset
	last := first + m.bufferHeight()
	if last > len(lines) {
		last = len(lines)
	}

	rendered := make([]string, 0, last-first)
	for row := first; row < last; row++ {
		line := m.renderLine(row, lines[row])
		// The +1 leaves room for an end-of-line cursor block.
		if m.width > 0 && displayWidth(lines[row])+1 > m.width {
			line = ansi.Truncate(line, m.width, "")
		}
		rendered = append(rendered, line)
	}
	return strings.Join(rendered, "\n")
}

func (m Model) renderEmpty() string {
	if m.focused || m.mode == ModeInsert {
		return cursorOn + " " + cursorOff
	}
	if m.config.Placeholder != "" {
		return placeholderStyle.Render(m.config.Placeholder)
	}
	return ""
}

// renderLine renders one buffer row with the selection background and the
// cursor block layered on top. Columns are codepoint indices, matching the
// engine's addressing.
func (m Model) renderLine(row int, line string) string {
	selStart, selEnd, selected := m.selectionRangeForRow(row)
	cursor := m.state.Cursor()
	cursorHere := cursor.Row == row

	if line == "" {
		if cursorHere {
			return cursorOn + " " + cursorOff
		}
		if selected {
			return selectionOn + " " + selectionOff
		}
		return " "
	}

	var out strings.Builder
	var selRun strings.Builder
	inSelRun := false
	flushSel := func() {
		if inSelRun {
			out.WriteString(selectionOn)
			out.WriteString(selRun.String())
			out.WriteString(selectionOff)
			selRun.Reset()
			inSelRun = false
		}
	}

	col := 0
	for _, r := range line {
		cluster := string(r)
		switch {
		case cursorHere && col == cursor.Col:
			flushSel()
			out.WriteString(cursorOn)
			out.WriteString(cluster)
			out.WriteString(cursorOff)
		case selected && col >= selStart && col < selEnd:
			selRun.WriteString(cluster)
			inSelRun = true
		default:
			flushSel()
			out.WriteString(cluster)
		}
		col++
	}
	flushSel()

	// Insert-mode cursor can rest one past the last codepoint.
	if cursorHere && cursor.Col >= col {
		out.WriteString(cursorOn + " " + cursorOff)
	}
	return out.String()
}

// selectionRangeForRow returns the selected column range on row, end
// exclusive, derived from the engine's ordered end-inclusive selection.
func (m Model) selectionRangeForRow(row int) (startCol, endCol int, ok bool) {
	start, end, active := m.state.Selection()
	if !active || m.mode != ModeVisual || row < start.Row || row > end.Row {
		return 0, 0, false
	}

	n := editor.RuneCount(m.state.Lines()[row])
	switch {
	case start.Row == end.Row:
		return start.Col, min(end.Col+1, n), true
	case row == start.Row:
		return start.Col, n, true
	case row == end.Row:
		return 0, min(end.Col+1, n), true
	default:
		return 0, n, true
	}
}

func (m Model) renderStatusBar() string {
	cursor := m.state.Cursor()

	indicator := m.modeIndicator()
	position := strconv.Itoa(cursor.Row+1) + ":" + strconv.Itoa(cursor.Col+1)
	pending := m.keymap.Pending()

	parts := []string{indicator, position}
	if pending != "" {
		parts = append(parts, pending)
	}
	left := strings.Join(parts, " ")

	bar := styles.StatusBarStyle.Render(left)
	if m.width > 0 {
		// Right-align the help hint when it fits.
		hint := styles.StatusBarStyle.Render("? help")
		gap := m.width - lipgloss.Width(bar) - lipgloss.Width(hint)
		if gap > 0 {
			bar += strings.Repeat(" ", gap) + hint
		}
		bar = ansi.Truncate(bar, m.width, "")
	}
	return bar
}

func (m Model) renderMinibuffer() string {
	sigil := "/"
	if m.mode == ModeGoto {
		sigil = ":"
	}
	line := sigil + m.input.View()
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "")
	}
	return line
}

func (m Model) modeIndicator() string {
	var color lipgloss.AdaptiveColor
	switch m.mode {
	case ModeInsert:
		color = styles.InsertModeColor
	case ModeVisual:
		color = styles.VisualModeColor
	default:
		color = styles.NormalModeColor
	}
	return styles.ModeIndicator(m.mode.String(), color)
}

// ============================================================================
// Scrolling
// ============================================================================

// ensureCursorVisible adjusts scrollOffset so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	if m.height <= 0 {
		m.scrollOffset = 0
		return
	}
	h := m.bufferHeight()
	row := m.state.Cursor().Row

	if row < m.scrollOffset {
		m.scrollOffset = row
	}
	if row >= m.scrollOffset+h {
		m.scrollOffset = row - h + 1
	}

	maxOffset := len(m.state.Lines()) - h
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// ScrollOffset returns the first visible buffer row.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

// displayWidth returns the terminal cell width of s, accounting for wide
// characters and grapheme clustering.
func displayWidth(s string) int {
	return uniseg.StringWidth(s)
}
