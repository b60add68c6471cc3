// File: stringx.go
// Title: Core String Utility Functions
// Description: Whitespace predicates, trimming and truncation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.3.0: IsWhitespace excludes no-break spaces, TrimWhitespace

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsWhitespace reports whether r is whitespace. No-break spaces (U+00A0,
// U+2007, U+202F) are not.
func IsWhitespace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.IsSpace(r) || r == '\u001c' || r == '\u001d' || r == '\u001e' || r == '\u001f'
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !IsWhitespace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// TrimWhitespace strips leading and trailing whitespace. The input is
// returned as is, without copying, when there is nothing to strip.
func TrimWhitespace(s string) string {
	start, end := 0, len(s)

	for start < end {
		r, size := utf8.DecodeRuneInString(s[start:])
		if !IsWhitespace(r) {
			break
		}
		start += size
	}
	for start < end {
		r, size := utf8.DecodeLastRuneInString(s[start:end])
		if !IsWhitespace(r) {
			break
		}
		end -= size
	}

	return s[start:end]
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes including the ellipsis.
// Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(ellipsis)[:maxLen])
	}

	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}
