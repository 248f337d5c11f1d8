package editor

import "strings"

// replaceRange is the single primitive through which every buffer mutation
// flows. It removes the content from start (inclusive) to end (exclusive),
// splices in text — which may embed line breaks — and repositions the
// cursor at the end of the inserted text. It is the only function allowed
// to resize the line set, and it upholds the never-empty invariant: a
// fully cleared document collapses to one empty line.
func replaceRange(s State, start, end Position, text string) State {
	start = s.clampPosition(start)
	end = s.clampPosition(end)
	if end.less(start) {
		start, end = end, start
	}

	prefix := SliceByRunes(s.lines[start.Row], 0, start.Col)
	suffix := SliceByRunes(s.lines[end.Row], end.Col, s.lineLen(end.Row))

	segments := strings.Split(text, "\n")
	replaced := make([]string, len(segments))
	copy(replaced, segments)
	replaced[0] = prefix + replaced[0]
	last := len(replaced) - 1
	endCol := RuneCount(replaced[last])
	replaced[last] += suffix

	next := make([]string, 0, start.Row+len(replaced)+len(s.lines)-end.Row-1)
	next = append(next, s.lines[:start.Row]...)
	next = append(next, replaced...)
	next = append(next, s.lines[end.Row+1:]...)

	s.lines = next
	s.cursor = Position{Row: start.Row + last, Col: endCol}
	return s
}

// clampPosition clamps p to an addressable buffer position, with the
// column allowed to sit one past the last codepoint (the exclusive bound).
func (s State) clampPosition(p Position) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(s.lines) {
		p.Row = len(s.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := s.lineLen(p.Row); p.Col > n {
		p.Col = n
	}
	return p
}

// Flat offset space for line-oriented operators: codepoints plus one slot
// per line break. Translating an (row, count) line range into offsets and
// back lets delete-lines and change-lines reuse replaceRange's
// line-joining logic instead of duplicating it.

// flatOffset converts a position to its flat codepoint offset.
func flatOffset(lines []string, p Position) int {
	off := 0
	for i := 0; i < p.Row; i++ {
		off += RuneCount(lines[i]) + 1
	}
	return off + p.Col
}

// lineRangeOffsets converts "count lines starting at row" into a flat
// [start, end) offset pair covering the lines and their line breaks. The
// count is clamped to the remaining lines; a range that reaches the end of
// the document consumes the preceding line break instead of a trailing one.
func lineRangeOffsets(row, count int, lines []string) (int, int) {
	if count > len(lines)-row {
		count = len(lines) - row
	}
	start := flatOffset(lines, Position{Row: row})
	if row+count >= len(lines) {
		lastRow := len(lines) - 1
		end := flatOffset(lines, Position{Row: lastRow, Col: RuneCount(lines[lastRow])})
		if start > 0 {
			start--
		}
		return start, end
	}
	return start, flatOffset(lines, Position{Row: row + count})
}

// positionFromOffsets converts a flat [start, end) offset pair back into
// the (start, end) position pair expected by replaceRange.
func positionFromOffsets(start, end int, lines []string) (Position, Position) {
	return positionAtOffset(start, lines), positionAtOffset(end, lines)
}

// positionAtOffset resolves a flat offset to a position, clamping to the
// end of the document. The offset of a line break resolves to the end of
// the line it terminates.
func positionAtOffset(off int, lines []string) Position {
	for row, line := range lines {
		n := RuneCount(line)
		if off <= n {
			return Position{Row: row, Col: off}
		}
		off -= n + 1
	}
	lastRow := len(lines) - 1
	return Position{Row: lastRow, Col: RuneCount(lines[lastRow])}
}
