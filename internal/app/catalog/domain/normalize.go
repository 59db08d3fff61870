package domain

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and drops whitespace, hyphens and underscores.
// It is used only for substring search matching.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
