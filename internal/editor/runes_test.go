package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneCount(t *testing.T) {
	assert.Equal(t, 0, RuneCount(""))
	assert.Equal(t, 5, RuneCount("hello"))
	assert.Equal(t, 4, RuneCount("héllo"[0:5])) // h, é (2 bytes), l, l
	assert.Equal(t, 5, RuneCount("cafe"+acute)) // combining mark counts as its own codepoint
}

func TestSliceByRunes(t *testing.T) {
	assert.Equal(t, "ell", SliceByRunes("hello", 1, 4))
	assert.Equal(t, "hello", SliceByRunes("hello", 0, 5))
	assert.Equal(t, "", SliceByRunes("hello", 3, 3))
	assert.Equal(t, "", SliceByRunes("hello", 4, 2))

	// Clamped to line bounds.
	assert.Equal(t, "llo", SliceByRunes("hello", 2, 99))
	assert.Equal(t, "he", SliceByRunes("hello", -3, 2))
	assert.Equal(t, "", SliceByRunes("hello", 7, 9))
}

func TestSliceByRunesMultibyte(t *testing.T) {
	line := "cafe" + acute + " au lait"
	assert.Equal(t, "cafe"+acute, SliceByRunes(line, 0, 5))
	assert.Equal(t, "e"+acute, SliceByRunes(line, 3, 5))
	assert.Equal(t, "au", SliceByRunes(line, 6, 8))
}

func TestRuneByteOffsetRoundTrip(t *testing.T) {
	line := "añb" + acute + "c"
	for i := 0; i <= RuneCount(line); i++ {
		b := runeToByteOffset(line, i)
		assert.Equal(t, i, byteToRuneOffset(line, b), "rune %d", i)
	}
	assert.Equal(t, len(line), runeToByteOffset(line, 99))
	assert.Equal(t, RuneCount(line), byteToRuneOffset(line, len(line)+5))
}
