package editor

import "strings"

// Search. The scan is forward-only: it starts one codepoint right of the
// cursor, runs to the end of the document, then wraps from the top back up
// to (but not including) the original position. The backward direction is
// part of the command surface but is intentionally not distinguished — see
// the note on SearchBackward.

// applySearch records query as the last search and moves the cursor to the
// first match. A missing or empty query leaves the cursor untouched.
func applySearch(s State, query string, _ SearchDirection) State {
	if query != "" {
		s.lastSearch = query
	}
	if query == "" {
		return s
	}

	if pos, ok := findForward(s.lines, s.cursor, query); ok {
		s.cursor = pos
	}
	return s
}

// findForward scans for query starting after from, wrapping around the
// document once.
func findForward(lines []string, from Position, query string) (Position, bool) {
	// Remainder of the current line, one past the cursor.
	if col, ok := indexInLine(lines[from.Row], query, from.Col+1); ok {
		return Position{Row: from.Row, Col: col}, true
	}
	// Lines below, then wrap to the lines above.
	for i := 1; i < len(lines); i++ {
		row := (from.Row + i) % len(lines)
		if col, ok := indexInLine(lines[row], query, 0); ok {
			return Position{Row: row, Col: col}, true
		}
	}
	// Original line from the start, up to but not including the cursor.
	if col, ok := indexInLine(lines[from.Row], query, 0); ok && col < from.Col {
		return Position{Row: from.Row, Col: col}, true
	}
	return Position{}, false
}

// indexInLine finds query in line at or after rune index fromCol and
// returns the match's rune index.
func indexInLine(line, query string, fromCol int) (int, bool) {
	if fromCol >= RuneCount(line) {
		return 0, false
	}
	startByte := runeToByteOffset(line, fromCol)
	i := strings.Index(line[startByte:], query)
	if i < 0 {
		return 0, false
	}
	return byteToRuneOffset(line, startByte+i), true
}
