package editor

import "strings"

// Command-level edits. Every mutation here reduces to one or more
// replaceRange calls plus cursor bookkeeping; nothing in this file touches
// the line set directly.

// deleteChars removes up to count codepoints under and after the cursor,
// bounded by the end of the line.
func deleteChars(s State, count int) State {
	row, col := s.cursor.Row, s.cursor.Col
	end := col + count
	if n := s.lineLen(row); end > n {
		end = n
	}
	if end <= col {
		return s
	}
	s = replaceRange(s, Position{Row: row, Col: col}, Position{Row: row, Col: end}, "")
	return s
}

// deleteWordForwardStep removes from the cursor to the start of the next
// word. When the next word sits on a later line — or no word remains — the
// deletion stops at the end of the current line.
func deleteWordForwardStep(s State) State {
	row, col := s.cursor.Row, s.cursor.Col
	end := Position{Row: row, Col: s.lineLen(row)}
	if pos, ok := nextWordStart(s.lines, s.cursor, true); ok && pos.Row == row {
		end = pos
	}
	if end.Col <= col {
		return s
	}
	return replaceRange(s, Position{Row: row, Col: col}, end, "")
}

// deleteWordBackwardStep removes from the start of the previous word up to
// the cursor, spanning line boundaries.
func deleteWordBackwardStep(s State) State {
	start, ok := prevWordStart(s.lines, s.cursor)
	if !ok {
		return s
	}
	return replaceRange(s, start, s.cursor, "")
}

// deleteWordEndStep removes from the cursor through the end of the word,
// inclusive of the word's last base codepoint and its combining marks.
func deleteWordEndStep(s State) State {
	target := wordEndTarget(s)
	if target == s.cursor && !atEndOfBaseWord(s.lines[s.cursor.Row], s.cursor.Col) {
		return s
	}
	// The end boundary is inclusive; extend past any combining marks so
	// they are removed with their base character.
	runes := RunesOf(s.lines[target.Row])
	endCol := target.Col + 1
	for endCol < len(runes) && isCombiningMark(runes[endCol]) {
		endCol++
	}
	return replaceRange(s, s.cursor, Position{Row: target.Row, Col: endCol}, "")
}

// wordEndTarget resolves where an end-of-word motion would land without
// moving the cursor.
func wordEndTarget(s State) Position {
	return wordEndStep(s).cursor
}

// deleteLines removes count whole lines starting at row, expressed through
// the flat-offset translator so replaceRange handles the line joining. The
// count clamps to the remaining lines; removing every line leaves a single
// empty one. The cursor lands on the first non-blank of the line that
// takes the deleted range's place.
func deleteLines(s State, row, count int) State {
	start, end := lineRangeOffsets(row, count, s.lines)
	startPos, endPos := positionFromOffsets(start, end, s.lines)
	s = replaceRange(s, startPos, endPos, "")

	if row >= len(s.lines) {
		row = len(s.lines) - 1
	}
	s.cursor = Position{Row: row, Col: firstNonBlank(s.lines[row])}
	return s
}

// changeLines clears count whole lines down to one empty line at row and
// parks the cursor at its start, ready for insertion.
func changeLines(s State, row, count int) State {
	if count > len(s.lines)-row {
		count = len(s.lines) - row
	}
	endRow := row + count - 1
	s = replaceRange(s, Position{Row: row}, Position{Row: endRow, Col: s.lineLen(endRow)}, "")
	s.cursor = Position{Row: row}
	return s
}

// deleteToLineEnd removes from the cursor to the end of the line, leaving
// the cursor at the cut point.
func deleteToLineEnd(s State) State {
	row, col := s.cursor.Row, s.cursor.Col
	n := s.lineLen(row)
	if col >= n {
		return s
	}
	return replaceRange(s, Position{Row: row, Col: col}, Position{Row: row, Col: n}, "")
}

// changeByMotion implements change-by-motion for the four single-step
// motions: horizontal changes remove codepoints around the cursor, and
// vertical changes are linewise over the current line plus count neighbors.
func changeByMotion(s State, dir ChangeDir, count int) State {
	switch dir {
	case ChangeLeft:
		row, col := s.cursor.Row, s.cursor.Col
		start := col - count
		if start < 0 {
			start = 0
		}
		if start == col {
			return s
		}
		return replaceRange(s, Position{Row: row, Col: start}, Position{Row: row, Col: col}, "")
	case ChangeRight:
		return deleteChars(s, count)
	case ChangeDown:
		row := s.cursor.Row
		return changeLines(s, row, count+1)
	case ChangeUp:
		row := s.cursor.Row - count
		if row < 0 {
			row = 0
		}
		return changeLines(s, row, s.cursor.Row-row+1)
	}
	return s
}

// backspaceStep removes the codepoint left of the cursor; at column 0 it
// joins the current line onto the previous one.
func backspaceStep(s State) State {
	row, col := s.cursor.Row, s.cursor.Col
	if col > 0 {
		return replaceRange(s, Position{Row: row, Col: col - 1}, Position{Row: row, Col: col}, "")
	}
	if row == 0 {
		return s
	}
	return replaceRange(s, Position{Row: row - 1, Col: s.lineLen(row - 1)}, Position{Row: row}, "")
}

// selectionText renders the anchored selection, end-inclusive, with line
// breaks between the covered lines.
func selectionText(s State) (string, bool) {
	start, end, ok := s.Selection()
	if !ok {
		return "", false
	}
	if start.Row == end.Row {
		return SliceByRunes(s.lines[start.Row], start.Col, end.Col+1), true
	}
	var b strings.Builder
	b.WriteString(SliceByRunes(s.lines[start.Row], start.Col, s.lineLen(start.Row)))
	for row := start.Row + 1; row < end.Row; row++ {
		b.WriteByte('\n')
		b.WriteString(s.lines[row])
	}
	b.WriteByte('\n')
	b.WriteString(SliceByRunes(s.lines[end.Row], 0, end.Col+1))
	return b.String(), true
}

// yankSelection copies the selection into the clipboard, moves the cursor
// to the selection start, and drops the anchor.
func yankSelection(s State) State {
	text, ok := selectionText(s)
	if !ok {
		return s
	}
	start, _, _ := s.Selection()
	s.clipboard = text
	s.hasClipboard = true
	s.cursor = start
	s.hasAnchor = false
	s.clampColNormal()
	return s
}

// deleteSelection removes the selection. The end boundary is inclusive of
// the codepoint under the cursor, so the exclusive replaceRange end is one
// past it.
func deleteSelection(s State) State {
	start, end, ok := s.Selection()
	if !ok {
		return s
	}
	s = replaceRange(s, start, Position{Row: end.Row, Col: end.Col + 1}, "")
	s.hasAnchor = false
	s.clampColNormal()
	return s
}

// paste inserts the clipboard payload relative to the cursor. A payload
// with a trailing line break is linewise and pastes as whole lines above
// or below the cursor row; anything else pastes inline.
func paste(s State, after bool) State {
	payload := s.clipboard
	if payload == "" {
		return s
	}
	row := s.cursor.Row

	if strings.HasSuffix(payload, "\n") {
		body := strings.TrimSuffix(payload, "\n")
		if after {
			end := Position{Row: row, Col: s.lineLen(row)}
			s = replaceRange(s, end, end, "\n"+body)
			s.cursor = Position{Row: row + 1}
		} else {
			start := Position{Row: row}
			s = replaceRange(s, start, start, body+"\n")
			s.cursor = Position{Row: row}
		}
		s.cursor.Col = firstNonBlank(s.lines[s.cursor.Row])
		return s
	}

	col := s.cursor.Col
	if after {
		col++
		if n := s.lineLen(row); col > n {
			col = n
		}
	}
	s = replaceRange(s, Position{Row: row, Col: col}, Position{Row: row, Col: col}, payload)
	// Rest on the last pasted codepoint rather than one past it.
	if s.cursor.Col > 0 {
		s.cursor.Col--
	}
	return s
}
