package editor

import "pgregory.net/rapid"

// st builds a buffer state for tests. No lines means one empty line.
func st(lines ...string) State {
	return NewStateFromLines(lines)
}

// at places the cursor of s, clamped like any dispatcher motion would.
func at(s State, row, col int) State {
	s.cursor = Position{Row: row, Col: col}
	s.clampRow()
	s.clampColInsert()
	return s
}

// combining acute accent, used to build base+mark sequences like "é".
const acute = "́"

// mutatingCommand draws a random content-mutating command for property
// tests. Counts stay small so generated documents keep some content.
func mutatingCommand(t *rapid.T) Command {
	n := rapid.IntRange(1, 3).Draw(t, "count")
	switch rapid.IntRange(0, 12).Draw(t, "kind") {
	case 0:
		return DeleteChar{Count: n}
	case 1:
		return DeleteWordForward{Count: n}
	case 2:
		return DeleteWordBackward{Count: n}
	case 3:
		return DeleteWordEnd{Count: n}
	case 4:
		return DeleteLine{Count: n}
	case 5:
		return DeleteToLineEnd{}
	case 6:
		return ChangeLine{Count: n}
	case 7:
		return ChangeToLineEnd{}
	case 8:
		return ChangeMotion{Dir: ChangeDir(rapid.IntRange(0, 3).Draw(t, "dir")), Count: n}
	case 9:
		return InsertText{Text: rapid.StringMatching(`[a-z0-9 ]{1,8}`).Draw(t, "text")}
	case 10:
		return Backspace{Count: n}
	case 11:
		return OpenLineBelow{}
	default:
		return OpenLineAbove{}
	}
}

// motionCommand draws a random non-mutating command.
func motionCommand(t *rapid.T) Command {
	n := rapid.IntRange(1, 4).Draw(t, "count")
	switch rapid.IntRange(0, 12).Draw(t, "kind") {
	case 0:
		return MoveLeft{Count: n}
	case 1:
		return MoveRight{Count: n}
	case 2:
		return MoveUp{Count: n}
	case 3:
		return MoveDown{Count: n}
	case 4:
		return MoveWordForward{Count: n}
	case 5:
		return MoveWordBackward{Count: n}
	case 6:
		return MoveWordEnd{Count: n}
	case 7:
		return MoveLineStart{}
	case 8:
		return MoveLineEnd{}
	case 9:
		return MoveFirstNonBlank{}
	case 10:
		return MoveFirstLine{}
	case 11:
		return MoveLastLine{}
	default:
		return GotoLine{Line: rapid.IntRange(1, 6).Draw(t, "line")}
	}
}
