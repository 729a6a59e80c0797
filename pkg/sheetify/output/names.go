// Package output writes a sheet plan to its export artifacts.
package output

import (
	"strconv"
	"strings"
)

// maxSheetNameLen is the spreadsheet tab-name limit.
const maxSheetNameLen = 31

// defaultSheetName replaces names that sanitize to the empty string.
const defaultSheetName = "Sheet"

// invalidNameChars are forbidden in spreadsheet tab names.
const invalidNameChars = `\/*?:[]`

// SanitizeSheetName normalizes a proposed sheet name for spreadsheet
// compatibility: forbidden characters become "_", surrounding whitespace is
// trimmed, empty names default to "Sheet", and the result is truncated to 31
// characters.
func SanitizeSheetName(name string) string {
	s := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidNameChars, r) {
			return '_'
		}
		return r
	}, name)
	s = strings.TrimSpace(s)
	if s == "" {
		s = defaultSheetName
	}
	return truncateName(s, maxSheetNameLen)
}

// truncateName cuts s to at most n characters without splitting a rune.
func truncateName(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// nameRegistry hands out sanitized sheet names, resolving collisions by
// appending "_1", "_2", ... and truncating the base to stay within the
// tab-name limit.
type nameRegistry struct {
	taken map[string]bool
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{taken: make(map[string]bool)}
}

// Claim sanitizes name and reserves a unique variant of it.
func (r *nameRegistry) Claim(name string) string {
	base := SanitizeSheetName(name)
	candidate := base
	for i := 1; r.taken[candidate]; i++ {
		suffix := "_" + strconv.Itoa(i)
		candidate = truncateName(base, maxSheetNameLen-len(suffix)) + suffix
	}
	r.taken[candidate] = true
	return candidate
}
