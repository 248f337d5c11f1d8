package editor

import "fmt"

// Apply is the engine's single entry point: given the current buffer state
// and one fully resolved command, it returns the next state. It is total
// over the command set — boundary conditions clamp or no-op, they never
// error — and exhaustive over it: the type switch covers every concrete
// Command, and an unhandled kind is a programming error surfaced by the
// panic in the default arm, not a runtime condition to recover from.
//
// Counted motions repeat the single-step motion count times, each step
// re-evaluated against the line then under the cursor.
func Apply(s State, cmd Command) State {
	// The sticky column survives vertical motions only.
	switch cmd.(type) {
	case MoveUp, MoveDown:
	default:
		s.preferredCol = noPreferredCol
	}

	switch c := cmd.(type) {
	case MoveLeft:
		for i := 0; i < normalizeCount(c.Count); i++ {
			if s.cursor.Col > 0 {
				s.cursor.Col--
			}
		}
	case MoveRight:
		for i := 0; i < normalizeCount(c.Count); i++ {
			if s.cursor.Col < s.lineLen(s.cursor.Row)-1 {
				s.cursor.Col++
			}
		}
	case MoveUp:
		s = moveVertical(s, -normalizeCount(c.Count))
	case MoveDown:
		s = moveVertical(s, normalizeCount(c.Count))
	case MoveWordForward:
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = wordForwardStep(s)
		}
	case MoveWordBackward:
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = wordBackwardStep(s)
		}
	case MoveWordEnd:
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = wordEndStep(s)
		}
	case MoveLineStart:
		s.cursor.Col = 0
	case MoveLineEnd:
		s.cursor.Col = 0
		if n := s.lineLen(s.cursor.Row); n > 0 {
			s.cursor.Col = n - 1
		}
	case MoveFirstNonBlank:
		s.cursor.Col = firstNonBlank(s.lines[s.cursor.Row])
	case MoveFirstLine:
		s.cursor.Row = 0
		s.clampColNormal()
	case MoveLastLine:
		s.cursor.Row = len(s.lines) - 1
		s.clampColNormal()
	case GotoLine:
		row := c.Line - 1
		if row < 0 {
			row = 0
		}
		if row >= len(s.lines) {
			row = len(s.lines) - 1
		}
		s.cursor.Row = row
		s.cursor.Col = firstNonBlank(s.lines[row])

	case DeleteChar:
		s = pushUndo(s)
		s = deleteChars(s, normalizeCount(c.Count))
		s.clampColNormal()
	case DeleteWordForward:
		s = pushUndo(s)
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = deleteWordForwardStep(s)
		}
		s.clampColNormal()
	case DeleteWordBackward:
		s = pushUndo(s)
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = deleteWordBackwardStep(s)
		}
		s.clampColNormal()
	case DeleteWordEnd:
		s = pushUndo(s)
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = deleteWordEndStep(s)
		}
		s.clampColNormal()
	case DeleteLine:
		s = pushUndo(s)
		s = deleteLines(s, s.cursor.Row, normalizeCount(c.Count))
	case DeleteToLineEnd:
		s = pushUndo(s)
		s = deleteToLineEnd(s)
		s.clampColNormal()

	case ChangeWordForward:
		s = pushUndo(s)
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = deleteWordForwardStep(s)
		}
	case ChangeWordBackward:
		s = pushUndo(s)
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = deleteWordBackwardStep(s)
		}
	case ChangeWordEnd:
		s = pushUndo(s)
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = deleteWordEndStep(s)
		}
	case ChangeLine:
		s = pushUndo(s)
		s = changeLines(s, s.cursor.Row, normalizeCount(c.Count))
	case ChangeToLineEnd:
		s = pushUndo(s)
		s = deleteToLineEnd(s)
	case ChangeMotion:
		s = pushUndo(s)
		s = changeByMotion(s, c.Dir, normalizeCount(c.Count))

	case InsertAtCursor:
		s.clampColInsert()
	case AppendAfterCursor:
		s.cursor.Col++
		s.clampColInsert()
	case AppendAtLineEnd:
		s.cursor.Col = s.lineLen(s.cursor.Row)
	case InsertAtLineStart:
		s.cursor.Col = firstNonBlank(s.lines[s.cursor.Row])
	case OpenLineBelow:
		s = pushUndo(s)
		end := Position{Row: s.cursor.Row, Col: s.lineLen(s.cursor.Row)}
		s = replaceRange(s, end, end, "\n")
	case OpenLineAbove:
		s = pushUndo(s)
		start := Position{Row: s.cursor.Row}
		s = replaceRange(s, start, start, "\n")
		s.cursor = Position{Row: start.Row}
	case EscapeInsert:
		s.clampColInsert()
		if s.cursor.Col > 0 {
			s.cursor.Col--
		}
	case InsertText:
		s = pushUndo(s)
		s.clampColInsert()
		s = replaceRange(s, s.cursor, s.cursor, c.Text)
	case Backspace:
		s = pushUndo(s)
		for i := 0; i < normalizeCount(c.Count); i++ {
			s = backspaceStep(s)
		}

	case SetAnchor:
		s.anchor = s.cursor
		s.hasAnchor = true
	case ClearAnchor:
		s.hasAnchor = false

	case Search:
		s = applySearch(s, c.Query, c.Direction)
	case SearchNext:
		s = applySearch(s, s.lastSearch, c.Direction)

	case Yank:
		s.clipboard = c.Text
		s.hasClipboard = true
	case YankSelection:
		s = yankSelection(s)
	case DeleteSelection:
		if s.hasAnchor {
			s = pushUndo(s)
			s = deleteSelection(s)
		}
	case PasteAfter:
		if s.hasClipboard {
			s = pushUndo(s)
			for i := 0; i < normalizeCount(c.Count); i++ {
				s = paste(s, true)
			}
		}
	case PasteBefore:
		if s.hasClipboard {
			s = pushUndo(s)
			for i := 0; i < normalizeCount(c.Count); i++ {
				s = paste(s, false)
			}
		}

	case Undo:
		s = applyUndo(s)
	case Redo:
		s = applyRedo(s)

	default:
		panic(fmt.Sprintf("editor: unhandled command %T", cmd))
	}

	s.clampRow()
	return s
}

// moveVertical moves the cursor delta lines, keeping the sticky column so
// that passing through short lines and back restores the original column.
func moveVertical(s State, delta int) State {
	if s.preferredCol == noPreferredCol {
		s.preferredCol = s.cursor.Col
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	for i := 0; i < delta; i++ {
		next := s.cursor.Row + step
		if next < 0 || next >= len(s.lines) {
			break
		}
		s.cursor.Row = next
	}
	s.cursor.Col = s.preferredCol
	s.clampColNormal()
	return s
}

// wordForwardStep advances one word, falling back to the last codepoint of
// the buffer when the scan runs out of words.
func wordForwardStep(s State) State {
	if pos, ok := nextWordStart(s.lines, s.cursor, true); ok {
		s.cursor = pos
		return s
	}
	s.cursor.Row = len(s.lines) - 1
	s.cursor.Col = 0
	s.clampColNormal()
	if n := s.lineLen(s.cursor.Row); n > 0 {
		s.cursor.Col = n - 1
	}
	return s
}

// wordBackwardStep moves to the previous word start, falling back to the
// document origin.
func wordBackwardStep(s State) State {
	if pos, ok := prevWordStart(s.lines, s.cursor); ok {
		s.cursor = pos
		return s
	}
	s.cursor = Position{}
	return s
}

// wordEndStep moves to the end of the current word, or of the next word
// when already resting on a word's last base codepoint.
func wordEndStep(s State) State {
	line := s.lines[s.cursor.Row]
	start := s.cursor.Col
	if atEndOfBaseWord(line, start) {
		// Step over the trailing combining marks of the current word so the
		// scan targets the next one.
		runes := RunesOf(line)
		start++
		for start < len(runes) && isCombiningMark(runes[start]) {
			start++
		}
	}
	if col, ok := wordEndInLine(line, start); ok {
		s.cursor.Col = col
		return s
	}
	for row := s.cursor.Row + 1; row < len(s.lines); row++ {
		if col, ok := wordEndInLine(s.lines[row], 0); ok {
			s.cursor = Position{Row: row, Col: col}
			return s
		}
	}
	return s
}
