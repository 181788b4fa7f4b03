// Package utils provides shared utilities for text, math, and logging.
package utils

import (
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Truncate returns s cut to maxLen runes, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}

// NewTitleCollator returns a locale-aware comparer for display titles using
// the root collation order. A collator is not safe for concurrent use, so
// create one per sort.
func NewTitleCollator() *collate.Collator {
	return collate.New(language.Und)
}
