package utils

import "unicode"

// IsWordInput reports whether s is plain letters, the only input the
// codec can encode into cell patterns.
func IsWordInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsPatternInput reports whether s looks like raw cell patterns: only
// '0', '1' and spaces, with at least one bit.
func IsPatternInput(s string) bool {
	hasBit := false
	for _, r := range s {
		switch r {
		case '0', '1':
			hasBit = true
		case ' ', '\t':
		default:
			return false
		}
	}
	return hasBit
}

// IsRepetitive checks if a string consists of one repeated character
// (e.g. "aaa"), which produces low-value suggestions.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}
