// Package textfold compares and bounds user-entered display strings.
package textfold

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Key returns the case-folded form of s used for uniqueness checks.
// A Caser keeps state between calls, so every call gets its own.
func Key(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Equal reports whether a and b match ignoring letter case.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// Len counts runes, not bytes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	count := 0
	for idx := range s {
		if count == max {
			return s[:idx]
		}
		count++
	}

	return s
}
