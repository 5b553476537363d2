// Package utils provides common utility functions.
package utils

import (
	"strconv"
	"strings"
)

// FormatIntList renders an integer slice as a bracketed list, e.g. "[21, 40]".
// An empty or nil slice renders as "[]".
func FormatIntList(values []int) string {
	if len(values) == 0 {
		return "[]"
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// NormalizeWhitespace replaces runs of whitespace with a single space.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateString truncates a string to max length, appending an ellipsis.
func TruncateString(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}

	return str[:maxLength] + "..."
}
