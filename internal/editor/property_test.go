package editor

import (
	"testing"

	"pgregory.net/rapid"
)

func randomState(t *rapid.T) State {
	lines := rapid.SliceOfN(rapid.StringMatching(`[a-z _0-9]{0,12}`), 0, 6).Draw(t, "lines")
	s := NewStateFromLines(lines)
	s.cursor.Row = rapid.IntRange(0, len(s.lines)-1).Draw(t, "row")
	s.cursor.Col = rapid.IntRange(0, s.lineLen(s.cursor.Row)).Draw(t, "col")
	return s
}

// The buffer never has zero lines, whatever sequence of commands runs.
func TestPropertyNeverEmptyLines(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		steps := rapid.IntRange(1, 12).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "mutate") {
				s = Apply(s, mutatingCommand(t))
			} else {
				s = Apply(s, motionCommand(t))
			}
			if len(s.Lines()) == 0 {
				t.Fatalf("line set became empty after step %d", i)
			}
		}
	})
}

// The cursor stays inside the buffer after every command.
func TestPropertyCursorInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		steps := rapid.IntRange(1, 12).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "mutate") {
				s = Apply(s, mutatingCommand(t))
			} else {
				s = Apply(s, motionCommand(t))
			}
			cur := s.Cursor()
			if cur.Row < 0 || cur.Row >= len(s.Lines()) {
				t.Fatalf("cursor row %d out of range after step %d", cur.Row, i)
			}
			if cur.Col < 0 || cur.Col > RuneCount(s.Lines()[cur.Row]) {
				t.Fatalf("cursor col %d out of range after step %d", cur.Col, i)
			}
		}
	})
}

// Any run of mutations unwinds, one undo per mutation, to the original text.
func TestPropertyUndoUnwindsMutations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		orig := s.Lines()

		steps := rapid.IntRange(1, 8).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			s = Apply(s, mutatingCommand(t))
		}
		for i := 0; i < steps; i++ {
			s = Apply(s, Undo{})
		}

		if got := s.Lines(); !equalLines(got, orig) {
			t.Fatalf("undo did not restore original lines: got %q, want %q", got, orig)
		}
		if s.CanUndo() {
			t.Fatal("undo stack not drained")
		}
	})
}

// Undo then redo is an identity on the text.
func TestPropertyRedoRestoresMutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		s = Apply(s, mutatingCommand(t))
		after := s.Lines()

		s = Apply(s, Undo{})
		s = Apply(s, Redo{})
		if got := s.Lines(); !equalLines(got, after) {
			t.Fatalf("redo did not restore mutated lines: got %q, want %q", got, after)
		}
	})
}

// Motions never change the text.
func TestPropertyMotionsPreserveText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		orig := s.Lines()
		steps := rapid.IntRange(1, 12).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			s = Apply(s, motionCommand(t))
		}
		if got := s.Lines(); !equalLines(got, orig) {
			t.Fatalf("motion changed text: got %q, want %q", got, orig)
		}
	})
}

// Scanning forward to the next word start and then backward never
// overshoots: the previous word start seen from there sits at or before
// the position the forward scan left.
func TestPropertyWordScanRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z .,_0-9]{0,12}`), 1, 6).Draw(t, "lines")
		s := NewStateFromLines(lines)
		pos := Position{Row: rapid.IntRange(0, len(s.lines)-1).Draw(t, "row")}
		pos.Col = rapid.IntRange(0, s.lineLen(pos.Row)).Draw(t, "col")

		next, ok := nextWordStart(s.lines, pos, true)
		if !ok {
			return // no word after pos
		}
		prev, ok := prevWordStart(s.lines, next)
		if !ok {
			return // next is the first word in the document
		}
		if pos.less(prev) {
			t.Fatalf("backward scan overshot: from %v forward to %v, back to %v", pos, next, prev)
		}
	})
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
