package common

import "strings"

// Blank reports whether s is empty or consists only of whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FirstNonEmpty returns the first non-empty value, or "" if all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
