package util

import (
	"strings"
	"unicode"
)

// SanitizeFileName makes name safe to use as a single path element or a
// Content-Disposition filename. Separators, traversal and control characters
// become underscores; an unusable result falls back to def.
func SanitizeFileName(name, def string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "..", "_")
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"':
			return '_'
		case unicode.IsControl(r):
			return '_'
		default:
			return r
		}
	}, s)
	if s == "" || s == "." {
		return def
	}
	return s
}
