package filekit

import "strings"

// LineFilter drops lines by content during loading and random picking.
// Matching is case-sensitive and exact; a line is skipped when it matches
// any configured pattern. The zero value skips nothing.
//
// Note that an empty prefix matches every line.
type LineFilter struct {
	// SkipPrefixes drops lines that start with any of these strings.
	SkipPrefixes []string

	// SkipContains drops lines that contain any of these substrings.
	SkipContains []string
}

// Skip reports whether line matches any configured pattern.
func (f LineFilter) Skip(line string) bool {
	for _, prefix := range f.SkipPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	for _, sub := range f.SkipContains {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}
