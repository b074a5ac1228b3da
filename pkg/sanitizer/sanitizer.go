// Package sanitizer normalizes free-text input before validation and
// persistence. Stored values are what the sanitizer produced, never the raw
// request strings.
package sanitizer

import "strings"

// Name collapses inner whitespace runs and trims the ends.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Email trims and lowercases an address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone trims and drops inner spaces so "+250 798 287 944" and
// "+250798287944" compare equal.
func Phone(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

// Text trims leading and trailing whitespace only, keeping inner formatting.
func Text(s string) string {
	return strings.TrimSpace(s)
}
