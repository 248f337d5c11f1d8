package editor

// Command is the closed set of editing commands the dispatcher accepts.
// It is a sealed sum type: the unexported marker method keeps outside
// packages from adding cases, so the type switch in Apply stays exhaustive
// over everything that can reach it. Adding a command kind means adding a
// struct here and a case in Apply — nowhere else.
//
// Counts default to 1; normalizeCount treats zero and negative values as 1.
type Command interface {
	isCommand()
}

// SearchDirection selects the scan direction of a search command.
type SearchDirection int

const (
	// SearchForward scans toward the end of the document, wrapping around.
	SearchForward SearchDirection = iota
	// SearchBackward is declared for the reverse scan. The reference
	// behavior reuses the forward scan for it unconditionally, and this
	// engine preserves that observable behavior.
	SearchBackward
)

// ChangeDir names the single-step motion a ChangeMotion operates over.
type ChangeDir int

const (
	// ChangeLeft changes the codepoints left of the cursor (ch).
	ChangeLeft ChangeDir = iota
	// ChangeRight changes the codepoints under and right of the cursor (cl).
	ChangeRight
	// ChangeDown changes the current line and the lines below (cj).
	ChangeDown
	// ChangeUp changes the current line and the lines above (ck).
	ChangeUp
)

// Motions.

// MoveLeft moves the cursor Count codepoints left, stopping at column 0.
type MoveLeft struct{ Count int }

// MoveRight moves the cursor Count codepoints right, stopping on the last
// codepoint of the line.
type MoveRight struct{ Count int }

// MoveUp moves the cursor Count lines up, restoring the preferred column.
type MoveUp struct{ Count int }

// MoveDown moves the cursor Count lines down, restoring the preferred column.
type MoveDown struct{ Count int }

// MoveWordForward moves to the start of the Count-th next word.
type MoveWordForward struct{ Count int }

// MoveWordBackward moves to the start of the Count-th previous word.
type MoveWordBackward struct{ Count int }

// MoveWordEnd moves to the last base codepoint of the Count-th word end.
type MoveWordEnd struct{ Count int }

// MoveLineStart moves to column 0.
type MoveLineStart struct{}

// MoveLineEnd moves to the last codepoint of the line.
type MoveLineEnd struct{}

// MoveFirstNonBlank moves to the first non-blank codepoint of the line.
type MoveFirstNonBlank struct{}

// MoveFirstLine moves to the first line.
type MoveFirstLine struct{}

// MoveLastLine moves to the last line.
type MoveLastLine struct{}

// GotoLine moves to the 1-based Line, clamped to the document.
type GotoLine struct{ Line int }

// Edits.

// DeleteChar deletes Count codepoints under and after the cursor.
type DeleteChar struct{ Count int }

// DeleteWordForward deletes from the cursor to the start of the next word,
// Count times.
type DeleteWordForward struct{ Count int }

// DeleteWordBackward deletes from the start of the previous word to the
// cursor, Count times.
type DeleteWordBackward struct{ Count int }

// DeleteWordEnd deletes from the cursor through the end of the word,
// Count times.
type DeleteWordEnd struct{ Count int }

// DeleteLine deletes Count whole lines starting at the cursor row.
type DeleteLine struct{ Count int }

// DeleteToLineEnd deletes from the cursor to the end of the line.
type DeleteToLineEnd struct{}

// ChangeWordForward deletes like DeleteWordForward and leaves the cursor
// ready for insertion.
type ChangeWordForward struct{ Count int }

// ChangeWordBackward deletes like DeleteWordBackward and leaves the cursor
// ready for insertion.
type ChangeWordBackward struct{ Count int }

// ChangeWordEnd deletes like DeleteWordEnd and leaves the cursor ready for
// insertion.
type ChangeWordEnd struct{ Count int }

// ChangeLine clears Count whole lines to a single empty line and leaves
// the cursor at its start.
type ChangeLine struct{ Count int }

// ChangeToLineEnd deletes to the end of the line and leaves the cursor in
// place for insertion.
type ChangeToLineEnd struct{}

// ChangeMotion changes over a single-step motion (ch/cj/ck/cl).
type ChangeMotion struct {
	Dir   ChangeDir
	Count int
}

// Mode-adjacent commands. The external mode tracker decides when insert
// mode is actually entered; the engine only places the cursor and, for
// the open-line commands, mutates the buffer.

// InsertAtCursor prepares insertion at the cursor column.
type InsertAtCursor struct{}

// AppendAfterCursor prepares insertion one codepoint right of the cursor.
type AppendAfterCursor struct{}

// AppendAtLineEnd prepares insertion past the last codepoint of the line.
type AppendAtLineEnd struct{}

// InsertAtLineStart prepares insertion at the first non-blank codepoint.
type InsertAtLineStart struct{}

// OpenLineBelow inserts an empty line below the cursor row and moves onto it.
type OpenLineBelow struct{}

// OpenLineAbove inserts an empty line above the cursor row and moves onto it.
type OpenLineAbove struct{}

// EscapeInsert leaves the insertion column range, stepping the cursor one
// codepoint left onto the last typed character.
type EscapeInsert struct{}

// InsertText inserts literal text (possibly containing line breaks) at the
// cursor. This is how insert-mode typing reaches the buffer.
type InsertText struct{ Text string }

// Backspace deletes the codepoint left of the cursor, joining with the
// previous line at column 0.
type Backspace struct{ Count int }

// Selection.

// SetAnchor starts a visual selection at the cursor.
type SetAnchor struct{}

// ClearAnchor drops the active selection.
type ClearAnchor struct{}

// Search.

// Search scans for Query and records it as the last search.
type Search struct {
	Query     string
	Direction SearchDirection
}

// SearchNext repeats the last search.
type SearchNext struct{ Direction SearchDirection }

// Clipboard.

// Yank stores Text in the implicit clipboard slot. A trailing line break
// marks the payload linewise.
type Yank struct{ Text string }

// YankSelection copies the anchored selection (end-inclusive) into the
// clipboard, moves the cursor to the selection start, and drops the anchor.
type YankSelection struct{}

// DeleteSelection deletes the anchored selection (end-inclusive) without
// touching the clipboard.
type DeleteSelection struct{}

// PasteAfter pastes the clipboard after the cursor: below the current line
// for a linewise payload, inline after the cursor otherwise.
type PasteAfter struct{ Count int }

// PasteBefore pastes the clipboard before the cursor: above the current
// line for a linewise payload, inline at the cursor otherwise.
type PasteBefore struct{ Count int }

// History.

// Undo restores the most recent snapshot.
type Undo struct{}

// Redo reapplies the most recently undone snapshot.
type Redo struct{}

func (MoveLeft) isCommand()           {}
func (MoveRight) isCommand()          {}
func (MoveUp) isCommand()             {}
func (MoveDown) isCommand()           {}
func (MoveWordForward) isCommand()    {}
func (MoveWordBackward) isCommand()   {}
func (MoveWordEnd) isCommand()        {}
func (MoveLineStart) isCommand()      {}
func (MoveLineEnd) isCommand()        {}
func (MoveFirstNonBlank) isCommand()  {}
func (MoveFirstLine) isCommand()      {}
func (MoveLastLine) isCommand()       {}
func (GotoLine) isCommand()           {}
func (DeleteChar) isCommand()         {}
func (DeleteWordForward) isCommand()  {}
func (DeleteWordBackward) isCommand() {}
func (DeleteWordEnd) isCommand()      {}
func (DeleteLine) isCommand()         {}
func (DeleteToLineEnd) isCommand()    {}
func (ChangeWordForward) isCommand()  {}
func (ChangeWordBackward) isCommand() {}
func (ChangeWordEnd) isCommand()      {}
func (ChangeLine) isCommand()         {}
func (ChangeToLineEnd) isCommand()    {}
func (ChangeMotion) isCommand()       {}
func (InsertAtCursor) isCommand()     {}
func (AppendAfterCursor) isCommand()  {}
func (AppendAtLineEnd) isCommand()    {}
func (InsertAtLineStart) isCommand()  {}
func (OpenLineBelow) isCommand()      {}
func (OpenLineAbove) isCommand()      {}
func (EscapeInsert) isCommand()       {}
func (InsertText) isCommand()         {}
func (Backspace) isCommand()          {}
func (SetAnchor) isCommand()          {}
func (ClearAnchor) isCommand()        {}
func (Search) isCommand()             {}
func (SearchNext) isCommand()         {}
func (Yank) isCommand()               {}
func (YankSelection) isCommand()      {}
func (DeleteSelection) isCommand()    {}
func (PasteAfter) isCommand()         {}
func (PasteBefore) isCommand()        {}
func (Undo) isCommand()               {}
func (Redo) isCommand()               {}

// normalizeCount maps the zero value and negative counts to 1.
func normalizeCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
