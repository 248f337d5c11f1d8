// Package editor implements the modal buffer mutation engine behind the
// prompt editor: a pure state-transition core that maps classified editing
// commands onto deterministic mutations of a multi-line text buffer.
//
// All positions in this package are codepoint (rune) indices, never byte
// offsets. A string like "café" written as base e + combining acute holds
// five codepoints, and the combining mark occupies its own column. Grapheme
// rendering concerns (display cells, emoji width) live in the UI layer; the
// engine only guarantees codepoint accuracy.
package editor

import "unicode/utf8"

// RuneCount returns the number of codepoints in line.
func RuneCount(line string) int {
	return utf8.RuneCountInString(line)
}

// RunesOf materializes line as an ordered slice of codepoints for
// positional scanning.
func RunesOf(line string) []rune {
	return []rune(line)
}

// SliceByRunes returns the codepoints of line in [start, end), clamped to
// the line bounds. Similar to line[start:end] but rune-indexed.
func SliceByRunes(line string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	startByte := runeToByteOffset(line, start)
	if startByte >= len(line) {
		return ""
	}
	endByte := runeToByteOffset(line, end)
	return line[startByte:endByte]
}

// runeToByteOffset converts a rune index to a byte offset into line.
// Returns len(line) when runeIdx is past the last codepoint.
func runeToByteOffset(line string, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	idx := 0
	for byteOff := range line {
		if idx == runeIdx {
			return byteOff
		}
		idx++
	}
	return len(line)
}

// byteToRuneOffset converts a byte offset into line to a rune index.
// Offsets inside a multi-byte codepoint resolve to that codepoint's index.
func byteToRuneOffset(line string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff >= len(line) {
		return RuneCount(line)
	}
	return utf8.RuneCountInString(line[:byteOff])
}
