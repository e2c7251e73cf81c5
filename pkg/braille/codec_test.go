package braille

import "testing"

func TestEncode(t *testing.T) {
	testCases := []struct {
		symbol  rune
		pattern Pattern
		known   bool
		desc    string
	}{
		{'a', "100000", true, "dot 1 only"},
		{'b', "110000", true, "dots 1-2"},
		{'p', "111100", true, "dots 1-4"},
		{'w', "010111", true, "dots 2,4,5,6"},
		{'z', "101011", true, "dots 1,3,5,6"},
		{'A', "", false, "uppercase has no cell"},
		{'7', "", false, "digits have no cell"},
		{'é', "", false, "outside the alphabet"},
	}

	for _, tc := range testCases {
		p, ok := Encode(tc.symbol)
		if ok != tc.known {
			t.Errorf("Encode(%q): known = %v, want %v (%s)", tc.symbol, ok, tc.known, tc.desc)
			continue
		}
		if tc.known && p != tc.pattern {
			t.Errorf("Encode(%q) = %s, want %s (%s)", tc.symbol, p, tc.pattern, tc.desc)
		}
	}
}

func TestEncodeWord(t *testing.T) {
	patterns, err := EncodeWord("cat")
	if err != nil {
		t.Fatalf("EncodeWord(cat): %v", err)
	}
	want := []Pattern{"100100", "100000", "011110"}
	if len(patterns) != len(want) {
		t.Fatalf("EncodeWord(cat) returned %d patterns, want %d", len(patterns), len(want))
	}
	for i := range want {
		if patterns[i] != want[i] {
			t.Errorf("EncodeWord(cat)[%d] = %s, want %s", i, patterns[i], want[i])
		}
	}

	if _, err := EncodeWord("ca7"); err == nil {
		t.Error("EncodeWord(ca7) should fail on the digit")
	}
}

func TestParsePattern(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
		desc  string
	}{
		{"100100", true, "valid cell"},
		{"000000", true, "blank cell"},
		{"111111", true, "full cell"},
		{"10010", false, "too narrow"},
		{"1001000", false, "too wide"},
		{"", false, "empty"},
		{"100a00", false, "non bit character"},
		{"100 00", false, "space inside"},
	}

	for _, tc := range testCases {
		p, err := ParsePattern(tc.input)
		if tc.valid && err != nil {
			t.Errorf("ParsePattern(%q): unexpected error %v (%s)", tc.input, err, tc.desc)
		}
		if !tc.valid && err == nil {
			t.Errorf("ParsePattern(%q) should fail (%s)", tc.input, tc.desc)
		}
		if tc.valid && string(p) != tc.input {
			t.Errorf("ParsePattern(%q) = %s", tc.input, p)
		}
	}
}

func TestHamming(t *testing.T) {
	testCases := []struct {
		a, b Pattern
		want int
	}{
		{"100000", "100000", 0},
		{"100000", "110000", 1},
		{"000000", "111111", 6},
		{"011110", "101101", 4},
	}

	for _, tc := range testCases {
		if got := Hamming(tc.a, tc.b); got != tc.want {
			t.Errorf("Hamming(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		// symmetric
		if got := Hamming(tc.b, tc.a); got != tc.want {
			t.Errorf("Hamming(%s, %s) = %d, want %d", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestFlip(t *testing.T) {
	if got := Flip("100000", 0); got != "000000" {
		t.Errorf("Flip dot 1 = %s, want 000000", got)
	}
	if got := Flip("100000", 5); got != "100001" {
		t.Errorf("Flip dot 6 = %s, want 100001", got)
	}
	if got := Flip("100000", 9); got != "100000" {
		t.Errorf("Flip out of range should be a no-op, got %s", got)
	}
}
