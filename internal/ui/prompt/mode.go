// Package prompt provides a vim-style multi-line prompt editor component for
// Bubble Tea applications. All buffer mutation goes through the pure engine
// in internal/editor; this package owns mode tracking, key translation,
// rendering, and the system clipboard bridge.
package prompt

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal is the default mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
	// ModeVisual is the mode for character-wise visual selection.
	ModeVisual
	// ModeSearch captures a search query on the minibuffer line.
	ModeSearch
	// ModeGoto captures a line number on the minibuffer line.
	ModeGoto
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeSearch:
		return "SEARCH"
	case ModeGoto:
		return "GOTO"
	default:
		return "UNKNOWN"
	}
}
