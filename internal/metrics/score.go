package metrics

import (
	"fmt"
	"math"
)

// ScorePoint is one cell of the per-score-point distribution across a rating
// scale.
type ScorePoint struct {
	Score   int     `json:"score"`
	Count   int     `json:"count"`
	Percent float64 `json:"pct"`
}

// RoundHalfUp1 rounds to one decimal with ties resolved away from zero, so
// repeated runs over identical input are bit-for-bit reproducible and match
// the half-up convention used throughout the reporting layer.
func RoundHalfUp1(x float64) float64 {
	if x < 0 {
		return -math.Floor(-x*10+0.5) / 10
	}
	return math.Floor(x*10+0.5) / 10
}

// Percent returns count/total as a percentage rounded half-up to one decimal.
// A zero total yields 0 rather than NaN.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundHalfUp1(100 * float64(count) / float64(total))
}

// NPSScore computes promoter% - detractor% in [-100, 100], rounded half-up to
// one decimal. Panics on negative counts: those indicate a caller bug, not
// bad survey data.
func NPSScore(promoters, passives, detractors int) float64 {
	assertNonNegative("promoters", promoters)
	assertNonNegative("passives", passives)
	assertNonNegative("detractors", detractors)

	total := promoters + passives + detractors
	if total == 0 {
		return 0
	}
	return RoundHalfUp1(100 * float64(promoters-detractors) / float64(total))
}

// NPSDistribution counts answers per integer score point across the whole
// scale range, including zero-count points, with half-up percentages. Values
// are rounded to the nearest integer; anything outside [minScale, maxScale]
// is ignored.
func NPSDistribution(values []float64, minScale, maxScale int) []ScorePoint {
	counts := make([]int, maxScale-minScale+1)
	total := 0
	for _, v := range values {
		s := int(math.Round(v))
		if s < minScale || s > maxScale {
			continue
		}
		counts[s-minScale]++
		total++
	}

	dist := make([]ScorePoint, 0, len(counts))
	for i, c := range counts {
		dist = append(dist, ScorePoint{
			Score:   minScale + i,
			Count:   c,
			Percent: Percent(c, total),
		})
	}
	return dist
}

// NPSInterpretation buckets an NPS score into a qualitative label.
func NPSInterpretation(score float64) string {
	switch {
	case score >= 70:
		return "Excellent - World class"
	case score >= 50:
		return "Great - Above average"
	case score >= 30:
		return "Good - Industry average"
	case score >= 0:
		return "Fair - Needs improvement"
	default:
		return "Poor - Critical issues"
	}
}

// CSATScore computes satisfied / total * 100 rounded half-up to one decimal.
// Panics on negative counts (caller bug).
func CSATScore(satisfied, neutral, dissatisfied int) float64 {
	assertNonNegative("satisfied", satisfied)
	assertNonNegative("neutral", neutral)
	assertNonNegative("dissatisfied", dissatisfied)

	total := satisfied + neutral + dissatisfied
	if total == 0 {
		return 0
	}
	return RoundHalfUp1(100 * float64(satisfied) / float64(total))
}

// CSATInterpretation buckets a CSAT score into a qualitative label.
func CSATInterpretation(score float64) string {
	switch {
	case score >= 85:
		return "Excellent - Highly satisfied"
	case score >= 75:
		return "Good - Generally satisfied"
	case score >= 65:
		return "Fair - Room for improvement"
	default:
		return "Poor - Action required"
	}
}

func assertNonNegative(name string, v int) {
	if v < 0 {
		panic(fmt.Sprintf("metrics: negative %s count %d", name, v))
	}
}
