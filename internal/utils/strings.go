package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space and trims the ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
