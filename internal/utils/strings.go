package utils

import (
	"strings"
	"unicode/utf8"
)

// DescriptionLimit is the number of characters shown before a description is cut.
const DescriptionLimit = 100

// Ellipsis is appended to cut descriptions.
const Ellipsis = "..."

// TruncateDescription keeps the first DescriptionLimit characters of s and
// appends Ellipsis when s is longer. Characters are code points, so Thai text
// is never split inside a rune.
func TruncateDescription(s string) string {
	return TruncateRunes(s, DescriptionLimit)
}

// TruncateRunes cuts s to n runes plus Ellipsis; shorter strings pass through.
func TruncateRunes(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + Ellipsis
		}
		i++
	}
	return s
}

// Safe returns fallback when v is blank.
func Safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// SafeFilenamePart strips characters that are unsafe in download filenames.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "all"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if utf8.RuneCountInString(s) > 40 {
		s = string([]rune(s)[:40])
	}
	return s
}
