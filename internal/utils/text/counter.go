// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for character and word counting
// that are shared across the generation pipeline and HTTP handlers.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This function correctly handles multi-byte characters including accented
// letters and emoji by counting runes instead of bytes.
//
// Examples:
//
//	CountRunes("hello")    // returns 5 (ASCII text)
//	CountRunes("señal")    // returns 5 (accented text)
//	CountRunes("")         // returns 0 (empty string)
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words in the given text.
// Consecutive whitespace counts as a single separator.
//
// Examples:
//
//	CountWords("hello world")  // returns 2
//	CountWords("  spaced  ")   // returns 1
//	CountWords("")             // returns 0
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// TruncateRunes returns text shortened to at most limit runes.
// Byte-safe for multi-byte characters.
func TruncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
