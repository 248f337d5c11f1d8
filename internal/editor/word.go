package editor

// Word scanner. The buffer is treated as an infinite logical strip of
// lines: forward scans walk off the end of one line onto the next, with
// the line break acting as a separator. All scans return ok=false at the
// document boundary and leave the fallback clamping to the caller.

// nextWordStart scans forward from pos for the first codepoint of the next
// word. When skipCurrent is set the remainder of the word under the cursor
// is skipped first; any run of separators (non-word codepoints and line
// breaks) is always skipped. Returns ok=false when no further word exists.
func nextWordStart(lines []string, pos Position, skipCurrent bool) (Position, bool) {
	row, col := pos.Row, pos.Col
	runes := RunesOf(lines[row])

	if skipCurrent {
		for col < len(runes) && isWordOrCombining(runes[col]) {
			col++
		}
	}

	for {
		for col < len(runes) {
			if isWordRune(runes[col]) {
				return Position{Row: row, Col: col}, true
			}
			col++
		}
		if row >= len(lines)-1 {
			return Position{}, false
		}
		row++
		col = 0
		runes = RunesOf(lines[row])
	}
}

// prevWordStart scans backward from pos for the start of the previous
// word, crossing line boundaries. Returns ok=false at the document start.
func prevWordStart(lines []string, pos Position) (Position, bool) {
	row, col := pos.Row, pos.Col
	runes := RunesOf(lines[row])
	col--

	// Skip separators backward, walking up through earlier lines.
	for {
		for col >= 0 && !isWordOrCombining(runes[col]) {
			col--
		}
		if col >= 0 {
			break
		}
		if row == 0 {
			return Position{}, false
		}
		row--
		runes = RunesOf(lines[row])
		col = len(runes) - 1
	}

	// Walk back to the first codepoint of the word.
	for col > 0 && isWordOrCombining(runes[col-1]) {
		col--
	}
	return Position{Row: row, Col: col}, true
}

// wordEndInLine finds the last base codepoint of the word containing or
// following col, restricted to a single line. Trailing combining marks are
// absorbed into the preceding base character, so the returned column is
// never a combining mark. Returns ok=false when no word end exists at or
// after col on this line. Callers that need "end of the next word while
// already sitting on a word end" must advance past the current word first;
// atEndOfBaseWord detects that case.
func wordEndInLine(line string, col int) (int, bool) {
	runes := RunesOf(line)
	if col < 0 {
		col = 0
	}
	pos := col

	// Skip separators to the next word when not inside one.
	for pos < len(runes) && !isWordRune(runes[pos]) {
		pos++
	}
	if pos >= len(runes) {
		return 0, false
	}

	// Advance to the end of the word run, then back off combining marks so
	// the cursor lands on the base character.
	for pos+1 < len(runes) && isWordOrCombining(runes[pos+1]) {
		pos++
	}
	for pos > 0 && isCombiningMark(runes[pos]) {
		pos--
	}
	if !isWordRune(runes[pos]) {
		return 0, false
	}
	return pos, true
}

// atEndOfBaseWord reports whether col sits on a word codepoint whose only
// followers within the word are combining marks. This detects "already on
// the last base character" so repeated end-of-word motions advance instead
// of sticking.
func atEndOfBaseWord(line string, col int) bool {
	runes := RunesOf(line)
	if col < 0 || col >= len(runes) || !isWordRune(runes[col]) {
		return false
	}
	for i := col + 1; i < len(runes); i++ {
		if isCombiningMark(runes[i]) {
			continue
		}
		return !isWordRune(runes[i])
	}
	return true
}

// firstNonBlank returns the column of the first non-blank codepoint of
// line, or 0 when the line is empty or all blanks.
func firstNonBlank(line string) int {
	for i, r := range RunesOf(line) {
		if !isBlank(r) {
			return i
		}
	}
	return 0
}
