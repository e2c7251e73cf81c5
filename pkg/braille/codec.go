/*
Package braille encodes dictionary symbols as six-dot cell patterns.

A pattern is a fixed-width string over {0,1}: position i holds dot i+1
of the cell, '1' meaning the dot is raised. The table covers the
Grade-1 letters 'a' through 'z'; every other symbol has no pattern and
is reported as unknown rather than guessed at.
*/
package braille

import "fmt"

// Pattern is one encoded cell, always PatternWidth characters of '0'/'1'.
type Pattern string

// PatternWidth is the number of dots in a cell.
const PatternWidth = 6

// cells holds the Grade-1 letter patterns. Position i of a pattern is
// dot i+1, so 'a' (dot 1) reads "100000".
var cells = map[rune]Pattern{
	'a': "100000",
	'b': "110000",
	'c': "100100",
	'd': "100110",
	'e': "100010",
	'f': "110100",
	'g': "110110",
	'h': "110010",
	'i': "010100",
	'j': "010110",
	'k': "101000",
	'l': "111000",
	'm': "101100",
	'n': "101110",
	'o': "101010",
	'p': "111100",
	'q': "111110",
	'r': "111010",
	's': "011100",
	't': "011110",
	'u': "101001",
	'v': "111001",
	'w': "010111",
	'x': "101101",
	'y': "101111",
	'z': "101011",
}

// Encode resolves a symbol to its cell pattern. The second return is
// false when the symbol has no defined pattern.
func Encode(r rune) (Pattern, bool) {
	p, ok := cells[r]
	return p, ok
}

// EncodeWord encodes every symbol of word, in order. It fails on the
// first symbol without a pattern.
func EncodeWord(word string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(word))
	for _, r := range word {
		p, ok := Encode(r)
		if !ok {
			return nil, fmt.Errorf("no cell pattern for symbol %q", r)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// ParsePattern validates a pattern string arriving from outside the
// process: exactly PatternWidth characters, each '0' or '1'.
func ParsePattern(s string) (Pattern, error) {
	if len(s) != PatternWidth {
		return "", fmt.Errorf("pattern %q has width %d, want %d", s, len(s), PatternWidth)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return "", fmt.Errorf("pattern %q has invalid character at dot %d", s, i+1)
		}
	}
	return Pattern(s), nil
}

// Hamming counts differing dot positions between two patterns. Both
// inputs are fixed-width by construction, so the result is 0..PatternWidth.
func Hamming(a, b Pattern) int {
	d := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Flip returns p with dot i+1 inverted. Out of range indexes return p
// unchanged.
func Flip(p Pattern, i int) Pattern {
	if i < 0 || i >= len(p) {
		return p
	}
	b := []byte(p)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return Pattern(b)
}
