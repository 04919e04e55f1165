package arabic

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the first decimal or integer number: optional minus,
// digits, optional fractional part.
var numberPattern = regexp.MustCompile(`-?\d+\.?\d*`)

// numberWord pairs a pre-normalized spelled-out Arabic numeral with its value.
// Ordered slice rather than a map so lookup order is deterministic.
type numberWord struct {
	word  string
	value float64
}

// Spelled-out Arabic numerals zero through ten, covering the common taa
// marbuta / haa spelling pairs and the dialectal dual form of two. All entries
// are already in normalized form (taa marbuta folded to haa).
var numberWords = []numberWord{
	{"صفر", 0},
	{"واحد", 1},
	{"اثنان", 2},
	{"اثنين", 2},
	{"ثلاثه", 3},
	{"اربعه", 4},
	{"خمسه", 5},
	{"سته", 6},
	{"سبعه", 7},
	{"ثمانيه", 8},
	{"تسعه", 9},
	{"عشره", 10},
}

// ExtractNumber pulls a numeric value out of free-form answer text. Digits in
// any of the three supported systems win; spelled-out Arabic numerals 0-10 are
// the fallback. The second return is false when the text carries no numeric
// intent at all; callers must skip such answers, not treat them as zero.
func ExtractNumber(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	// Digits are folded without full normalization so "-" and "." survive.
	folded := FoldDigits(text)
	if m := numberPattern.FindString(folded); m != "" {
		// A trailing dot ("3.") parses fine with ParseFloat, but guard anyway.
		if v, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64); err == nil {
			return v, true
		}
	}

	normalized := Normalize(text)
	for _, nw := range numberWords {
		if strings.Contains(normalized, nw.word) {
			return nw.value, true
		}
	}

	return 0, false
}
