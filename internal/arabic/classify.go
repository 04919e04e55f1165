package arabic

import "strings"

// YesNoResult is the outcome of yes/no answer normalization.
type YesNoResult string

const (
	Yes          YesNoResult = "yes"
	No           YesNoResult = "no"
	YesNoUnknown YesNoResult = "unknown"
)

// Satisfaction is the three-way classification of a CSAT choice answer.
type Satisfaction string

const (
	Satisfied           Satisfaction = "satisfied"
	Neutral             Satisfaction = "neutral"
	Dissatisfied        Satisfaction = "dissatisfied"
	SatisfactionUnknown Satisfaction = "unknown"
)

// YesNo normalizes a free-form answer to yes/no intent. Matching is
// substring-based in both directions so partially captured answers
// ("نعم بالتاكيد" against "نعم", "اي" against "ايوا") still resolve.
// Returns YesNoUnknown when neither vocabulary matches.
func YesNo(text string) YesNoResult {
	if text == "" {
		return YesNoUnknown
	}

	normalized := Normalize(text)
	if normalized == "" {
		return YesNoUnknown
	}

	for _, p := range yesPatterns {
		if strings.Contains(normalized, p) || strings.Contains(p, normalized) {
			return Yes
		}
	}
	for _, p := range noPatterns {
		if strings.Contains(normalized, p) || strings.Contains(p, normalized) {
			return No
		}
	}

	return YesNoUnknown
}

// ClassifyCSATChoice maps a choice answer onto the satisfied/neutral/
// dissatisfied split using the tiered vocabulary. Satisfied is checked first
// and dissatisfied before neutral, so strongly-worded negatives that share a
// token with a mild phrase ("غير مقبول" vs "مقبول") land in the right bucket.
func ClassifyCSATChoice(text string) Satisfaction {
	if text == "" {
		return SatisfactionUnknown
	}

	normalized := Normalize(text)

	if containsAny(normalized, satisfiedKeywords) {
		return Satisfied
	}
	if containsAny(normalized, dissatisfiedKeywords) {
		return Dissatisfied
	}
	if containsAny(normalized, neutralKeywords) {
		return Neutral
	}

	return SatisfactionUnknown
}

// MatchIntent reports whether the normalized text contains any of the given
// pre-normalized keywords. Used to decide whether a question's wording is
// "about" a metric topic (NPSKeywords, CSATKeywords).
func MatchIntent(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	return containsAny(Normalize(text), keywords)
}

func containsAny(normalized string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}
