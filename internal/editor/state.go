package editor

// Position is a zero-based codepoint location in the buffer.
type Position struct {
	Row int
	Col int
}

// less orders positions document-wise: row first, then column.
func (p Position) less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// noPreferredCol marks the sticky column as unset.
const noPreferredCol = -1

// snapshot is one undo/redo history entry: a full copy of the line set
// plus the cursor. Snapshots never share backing storage with the live
// state, so later mutations cannot corrupt history.
type snapshot struct {
	lines  []string
	cursor Position
}

// State is the canonical buffer value. It is threaded through Apply as an
// immutable input and a fresh output; callers must treat every returned
// State as the new canonical state and never mutate the line set in place.
//
// Invariants, holding after every Apply:
//   - lines is never empty; a cleared document is a single empty line
//   - 0 <= cursor.Row < len(lines)
//   - 0 <= cursor.Col <= RuneCount(lines[cursor.Row])
type State struct {
	lines        []string
	cursor       Position
	preferredCol int

	anchor    Position
	hasAnchor bool

	clipboard    string
	hasClipboard bool

	lastSearch string

	undo []snapshot
	redo []snapshot
}

// NewState returns an empty buffer: one empty line, cursor at the origin.
func NewState() State {
	return NewStateFromLines(nil)
}

// NewStateFromLines returns a buffer holding the given lines. An empty or
// nil slice becomes a single empty line.
func NewStateFromLines(lines []string) State {
	ls := make([]string, len(lines))
	copy(ls, lines)
	if len(ls) == 0 {
		ls = []string{""}
	}
	return State{lines: ls, preferredCol: noPreferredCol}
}

// Lines returns the document lines in order. The slice is shared with the
// state; treat it as read-only.
func (s State) Lines() []string {
	return s.lines
}

// Cursor returns the current cursor position.
func (s State) Cursor() Position {
	return s.cursor
}

// Selection returns the active visual selection as an ordered inclusive
// (start, end) pair, or ok=false when no anchor is set.
func (s State) Selection() (start, end Position, ok bool) {
	if !s.hasAnchor {
		return Position{}, Position{}, false
	}
	start, end = s.anchor, s.cursor
	if end.less(start) {
		start, end = end, start
	}
	return start, end, true
}

// Clipboard returns the implicit clipboard slot. A payload ending in a
// line break is linewise; anything else is characterwise.
func (s State) Clipboard() (string, bool) {
	return s.clipboard, s.hasClipboard
}

// LastSearch returns the most recently used search query.
func (s State) LastSearch() string {
	return s.lastSearch
}

// CanUndo reports whether an undo snapshot is available.
func (s State) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (s State) CanRedo() bool { return len(s.redo) > 0 }

// lineLen returns the codepoint length of the given row.
func (s State) lineLen(row int) int {
	return RuneCount(s.lines[row])
}

// clampRow clamps the cursor row into the line set.
func (s *State) clampRow() {
	if s.cursor.Row < 0 {
		s.cursor.Row = 0
	}
	if s.cursor.Row >= len(s.lines) {
		s.cursor.Row = len(s.lines) - 1
	}
}

// clampColNormal clamps the cursor column to the last codepoint of the
// line, the legal resting range outside of insertion.
func (s *State) clampColNormal() {
	maxCol := s.lineLen(s.cursor.Row) - 1
	if maxCol < 0 {
		maxCol = 0
	}
	if s.cursor.Col > maxCol {
		s.cursor.Col = maxCol
	}
	if s.cursor.Col < 0 {
		s.cursor.Col = 0
	}
}

// clampColInsert clamps the cursor column to the insertion range, which
// extends one past the last codepoint.
func (s *State) clampColInsert() {
	maxCol := s.lineLen(s.cursor.Row)
	if s.cursor.Col > maxCol {
		s.cursor.Col = maxCol
	}
	if s.cursor.Col < 0 {
		s.cursor.Col = 0
	}
}

// cloneLines returns a full copy of the line set.
func (s State) cloneLines() []string {
	ls := make([]string, len(s.lines))
	copy(ls, s.lines)
	return ls
}
