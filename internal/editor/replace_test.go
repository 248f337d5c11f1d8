package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceRangeSingleLine(t *testing.T) {
	s := replaceRange(st("hello world"), Position{0, 0}, Position{0, 6}, "")
	assert.Equal(t, []string{"world"}, s.Lines())
	assert.Equal(t, Position{0, 0}, s.Cursor())

	s = replaceRange(st("hello"), Position{0, 2}, Position{0, 2}, "XY")
	assert.Equal(t, []string{"heXYllo"}, s.Lines())
	assert.Equal(t, Position{0, 4}, s.Cursor())
}

func TestReplaceRangeMultiLine(t *testing.T) {
	// Deleting across lines keeps the start prefix and the end suffix.
	s := replaceRange(st("foo", "bar", "baz"), Position{0, 1}, Position{2, 1}, "")
	assert.Equal(t, []string{"faz"}, s.Lines())
	assert.Equal(t, Position{0, 1}, s.Cursor())

	// Inserting text with embedded line breaks re-splits the line set.
	s = replaceRange(st("ab"), Position{0, 1}, Position{0, 1}, "x\ny")
	assert.Equal(t, []string{"ax", "yb"}, s.Lines())
	assert.Equal(t, Position{1, 1}, s.Cursor())
}

func TestReplaceRangeNeverEmpty(t *testing.T) {
	s := replaceRange(st("only"), Position{0, 0}, Position{0, 4}, "")
	assert.Equal(t, []string{""}, s.Lines())

	s = replaceRange(st("a", "b", "c"), Position{0, 0}, Position{2, 1}, "")
	assert.Equal(t, []string{""}, s.Lines())
}

func TestReplaceRangeNoopIdempotent(t *testing.T) {
	orig := at(st("alpha", "beta"), 1, 2)
	s := replaceRange(orig, Position{1, 2}, Position{1, 2}, "")
	assert.Equal(t, orig.Lines(), s.Lines())
	assert.Equal(t, Position{1, 2}, s.Cursor())
}

func TestReplaceRangeClampsOutOfRange(t *testing.T) {
	s := replaceRange(st("ab"), Position{-3, -1}, Position{9, 99}, "z")
	assert.Equal(t, []string{"z"}, s.Lines())
	assert.Equal(t, Position{0, 1}, s.Cursor())
}

func TestReplaceRangeCombiningMarks(t *testing.T) {
	// Codepoint-indexed: removing [3,5) removes the base e and its mark.
	s := replaceRange(st("cafe"+acute), Position{0, 3}, Position{0, 5}, "")
	assert.Equal(t, []string{"caf"}, s.Lines())
}

func TestLineRangeOffsets(t *testing.T) {
	lines := []string{"ab", "cd", "ef"}

	// Interior range covers the lines plus their trailing breaks.
	start, end := lineRangeOffsets(0, 1, lines)
	sp, ep := positionFromOffsets(start, end, lines)
	assert.Equal(t, Position{0, 0}, sp)
	assert.Equal(t, Position{1, 0}, ep)

	// A range reaching the document end consumes the preceding break.
	start, end = lineRangeOffsets(2, 1, lines)
	sp, ep = positionFromOffsets(start, end, lines)
	assert.Equal(t, Position{1, 2}, sp)
	assert.Equal(t, Position{2, 2}, ep)

	// Count clamps to the remaining lines.
	start, end = lineRangeOffsets(1, 99, lines)
	sp, ep = positionFromOffsets(start, end, lines)
	assert.Equal(t, Position{0, 2}, sp)
	assert.Equal(t, Position{2, 2}, ep)

	// The whole document maps to the full span.
	start, end = lineRangeOffsets(0, 3, lines)
	sp, ep = positionFromOffsets(start, end, lines)
	assert.Equal(t, Position{0, 0}, sp)
	assert.Equal(t, Position{2, 2}, ep)
}

func TestFlatOffsetRoundTrip(t *testing.T) {
	lines := []string{"ab", "", "cde"}
	for row := range lines {
		for col := 0; col <= RuneCount(lines[row]); col++ {
			p := Position{Row: row, Col: col}
			assert.Equal(t, p, positionAtOffset(flatOffset(lines, p), lines))
		}
	}
}
