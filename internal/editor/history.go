package editor

// Undo/redo discipline. Every mutating command snapshots the full line set
// and cursor immediately before it runs; pure motions never snapshot.
// Snapshots are complete copies rather than structural diffs, so restored
// states can be mutated freely without corrupting history.

// pushUndo records the current lines and cursor on the undo stack and
// invalidates the redo stack, since a new mutation forks history.
func pushUndo(s State) State {
	undo := make([]snapshot, len(s.undo), len(s.undo)+1)
	copy(undo, s.undo)
	s.undo = append(undo, snapshot{lines: s.cloneLines(), cursor: s.cursor})
	s.redo = nil
	return s
}

// applyUndo restores the most recent snapshot, pushing the pre-undo state
// onto the redo stack. A no-op when nothing has been recorded.
func applyUndo(s State) State {
	if len(s.undo) == 0 {
		return s
	}
	top := s.undo[len(s.undo)-1]

	redo := make([]snapshot, len(s.redo), len(s.redo)+1)
	copy(redo, s.redo)
	s.redo = append(redo, snapshot{lines: s.cloneLines(), cursor: s.cursor})

	s.undo = s.undo[:len(s.undo)-1]
	s.lines = top.lines
	s.cursor = top.cursor
	s.clampRow()
	s.clampColInsert()
	return s
}

// applyRedo reapplies the most recently undone snapshot, symmetric to
// applyUndo.
func applyRedo(s State) State {
	if len(s.redo) == 0 {
		return s
	}
	top := s.redo[len(s.redo)-1]

	undo := make([]snapshot, len(s.undo), len(s.undo)+1)
	copy(undo, s.undo)
	s.undo = append(undo, snapshot{lines: s.cloneLines(), cursor: s.cursor})

	s.redo = s.redo[:len(s.redo)-1]
	s.lines = top.lines
	s.cursor = top.cursor
	s.clampRow()
	s.clampColInsert()
	return s
}
