package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWordStart(t *testing.T) {
	lines := []string{"hello world", "  foo", "", "bar"}

	pos, ok := nextWordStart(lines, Position{0, 0}, true)
	require.True(t, ok)
	assert.Equal(t, Position{0, 6}, pos)

	// From inside a word the remainder is skipped first.
	pos, ok = nextWordStart(lines, Position{0, 2}, true)
	require.True(t, ok)
	assert.Equal(t, Position{0, 6}, pos)

	// Without skipCurrent a word codepoint under the cursor is the result.
	pos, ok = nextWordStart(lines, Position{0, 2}, false)
	require.True(t, ok)
	assert.Equal(t, Position{0, 2}, pos)

	// Crossing onto the next line, past its leading blanks.
	pos, ok = nextWordStart(lines, Position{0, 6}, true)
	require.True(t, ok)
	assert.Equal(t, Position{1, 2}, pos)

	// Empty lines are separators; the scan keeps going.
	pos, ok = nextWordStart(lines, Position{1, 2}, true)
	require.True(t, ok)
	assert.Equal(t, Position{3, 0}, pos)

	// Document end.
	_, ok = nextWordStart(lines, Position{3, 0}, true)
	assert.False(t, ok)
}

func TestNextWordStartCombiningMarks(t *testing.T) {
	lines := []string{"cafe" + acute + " bar"}

	// The combining mark extends the word, so the skip runs past it.
	pos, ok := nextWordStart(lines, Position{0, 0}, true)
	require.True(t, ok)
	assert.Equal(t, Position{0, 6}, pos)
}

func TestPrevWordStart(t *testing.T) {
	lines := []string{"hello world", "  foo"}

	pos, ok := prevWordStart(lines, Position{0, 6})
	require.True(t, ok)
	assert.Equal(t, Position{0, 0}, pos)

	// From inside a word, back to its start.
	pos, ok = prevWordStart(lines, Position{0, 8})
	require.True(t, ok)
	assert.Equal(t, Position{0, 6}, pos)

	// Crossing up onto the previous line.
	pos, ok = prevWordStart(lines, Position{1, 2})
	require.True(t, ok)
	assert.Equal(t, Position{0, 6}, pos)

	// Document start.
	_, ok = prevWordStart(lines, Position{0, 0})
	assert.False(t, ok)
}

func TestWordEndInLine(t *testing.T) {
	col, ok := wordEndInLine("hello world", 0)
	require.True(t, ok)
	assert.Equal(t, 4, col)

	// From a separator, the end of the following word.
	col, ok = wordEndInLine("hello world", 5)
	require.True(t, ok)
	assert.Equal(t, 10, col)

	// Nothing after the last word.
	_, ok = wordEndInLine("hello  ", 5)
	assert.False(t, ok)

	_, ok = wordEndInLine("", 0)
	assert.False(t, ok)
}

func TestWordEndInLineCombiningMarks(t *testing.T) {
	// "café" with a combining acute: the end of the word is the base e at
	// column 3, never the mark at column 4.
	col, ok := wordEndInLine("cafe"+acute, 0)
	require.True(t, ok)
	assert.Equal(t, 3, col)
}

func TestAtEndOfBaseWord(t *testing.T) {
	assert.True(t, atEndOfBaseWord("hello world", 4))
	assert.False(t, atEndOfBaseWord("hello world", 3))
	assert.False(t, atEndOfBaseWord("hello world", 5))
	assert.True(t, atEndOfBaseWord("hello", 4))

	// The base e is the end of the word even with a trailing mark.
	assert.True(t, atEndOfBaseWord("cafe"+acute, 3))
	assert.False(t, atEndOfBaseWord("cafe"+acute, 4))
	assert.True(t, atEndOfBaseWord("cafe"+acute+" x", 3))
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, 0, firstNonBlank("hello"))
	assert.Equal(t, 2, firstNonBlank("  hello"))
	assert.Equal(t, 1, firstNonBlank("\thello"))
	assert.Equal(t, 0, firstNonBlank(""))
	assert.Equal(t, 0, firstNonBlank("   "))
}
