package editor

import "unicode"

// Character classification for word boundary detection.
//
// Word boundary decisions must look one codepoint ahead so that zero-width
// combining marks attach to their preceding base character instead of
// terminating the word. Every scanner in word.go goes through these
// predicates rather than testing runes directly.

// isWordRune reports whether r belongs to the language-neutral "word"
// class: letters, digits, and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isCombiningMark reports whether r is a zero-width combining codepoint
// (Unicode categories Mn, Mc, Me).
func isCombiningMark(r rune) bool {
	return unicode.IsMark(r)
}

// isWordOrCombining reports whether r is a word codepoint or a combining
// mark extending the preceding word codepoint.
func isWordOrCombining(r rune) bool {
	return isWordRune(r) || isCombiningMark(r)
}

// isBlank reports whether r is a space or tab.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
