// Package arabic canonicalizes Arabic, English and mixed dialectal survey text
// so that keyword and option matching behaves the same regardless of spelling
// convention, diacritics or digit system used by the respondent.
package arabic

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const tatweel = 'ـ' // kashida, elongation only, carries no meaning

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// Trailing/leading punctuation stripped after normalization. The Arabic
	// forms are included for inputs where mapping did not apply (preserved
	// digits path keeps the text otherwise intact).
	edgePunctuation = ".,;:!?؟،؛"
)

// isDiacritic reports whether r is an Arabic diacritical or annotation mark:
// tashkeel (U+064B-065F), superscript alef (U+0670), Quranic annotation marks
// (U+06D6-06ED) and presentation-form diacritics (U+FE70-FE7F).
func isDiacritic(r rune) bool {
	switch {
	case r >= 0x064B && r <= 0x065F:
		return true
	case r == 0x0670:
		return true
	case r >= 0x06D6 && r <= 0x06ED:
		return true
	case r >= 0xFE70 && r <= 0xFE7F:
		return true
	}
	return false
}

// isZeroWidth reports whether r is a zero-width character (ZWSP, ZWNJ, ZWJ,
// BOM) that would silently break substring matching.
func isZeroWidth(r rune) bool {
	return (r >= 0x200B && r <= 0x200D) || r == 0xFEFF
}

// foldDigit maps Arabic-Indic (U+0660-0669) and Extended Arabic-Indic
// (U+06F0-06F9) digits onto ASCII '0'-'9'. Other runes pass through.
func foldDigit(r rune) rune {
	switch {
	case r >= 0x0660 && r <= 0x0669:
		return '0' + (r - 0x0660)
	case r >= 0x06F0 && r <= 0x06F9:
		return '0' + (r - 0x06F0)
	}
	return r
}

// foldLetter collapses the letter-form variants that differ across dialects
// and input methods: all hamza-bearing alef forms to plain alef, hamza on waw
// or yaa to the bare carrier, alef maqsura to yaa and taa marbuta to haa.
// Standalone hamza is dropped (-1).
func foldLetter(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ', 'ٱ':
		return 'ا'
	case 'ؤ':
		return 'و'
	case 'ئ':
		return 'ي'
	case 'ء':
		return -1
	case 'ى':
		return 'ي'
	case 'ة':
		return 'ه'
	case '؟':
		return '?'
	case '،':
		return ','
	case '؛':
		return ';'
	}
	return r
}

// Normalize canonicalizes text for comparison: NFC composition, lowercasing,
// zero-width and tatweel removal, diacritic stripping, hamza/alef/yaa/taa
// folding, digit folding to ASCII, Arabic punctuation mapping, whitespace
// collapsing and edge-punctuation trimming. It is pure, total and idempotent;
// empty input yields "".
func Normalize(text string) string {
	return normalize(text, false)
}

// NormalizeKeepDigits is Normalize without the digit folding step, for callers
// that fold digits separately to keep signs and decimal points intact.
func NormalizeKeepDigits(text string) string {
	return normalize(text, true)
}

func normalize(text string, preserveNumbers bool) string {
	if text == "" {
		return ""
	}

	t := strings.TrimSpace(text)

	// Zero-width characters first: they can split what should be one token.
	t = strings.Map(func(r rune) rune {
		if isZeroWidth(r) {
			return -1
		}
		return r
	}, t)

	t = norm.NFC.String(t)
	t = strings.ToLower(t)

	t = strings.Map(func(r rune) rune {
		if r == tatweel || isDiacritic(r) {
			return -1
		}
		return foldLetter(r)
	}, t)

	if !preserveNumbers {
		t = strings.Map(foldDigit, t)
	}

	t = whitespaceRun.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)
	t = strings.Trim(t, edgePunctuation)

	return t
}

// FoldDigits converts Arabic-Indic and Extended Arabic-Indic digits to ASCII
// without touching anything else. Used by number extraction, which must not
// lose minus signs or decimal points to full normalization.
func FoldDigits(text string) string {
	return strings.Map(foldDigit, text)
}
