// Package metrics holds the scale-threshold derivation and score math shared
// by the NPS and CSAT aggregations.
package metrics

import "math"

// NPSThresholds derives the NPS band boundaries for an arbitrary rating
// scale, returning (detractorMax, passiveMax): detractors are scores at or
// below detractorMax, passives at or below passiveMax, promoters above.
//
// Star scales (0-5 and 1-5) map onto NPS semantics as detractor<=2,
// passive 3-4, promoter=5. The classic 0-10 scale uses the standard
// detractor<=6, passive 7-8, promoter 9-10. Any other scale is split
// proportionally (bottom ~40% / middle ~40% / top ~20%) with clamps that keep
// all three bands non-empty and non-overlapping.
func NPSThresholds(minScale, maxScale int) (detractorMax, passiveMax int) {
	span := maxScale - minScale

	if minScale == 0 && maxScale == 5 {
		return 2, 4
	}
	if minScale == 1 && maxScale == 5 {
		return 2, 4
	}
	if minScale == 0 && maxScale == 10 {
		return 6, 8
	}

	detractorMax = int(math.Floor(float64(minScale) + 0.40*float64(span)))
	passiveMax = int(math.Floor(float64(minScale) + 0.80*float64(span)))

	if detractorMax > maxScale-2 {
		detractorMax = maxScale - 2
	}
	if passiveMax < detractorMax+1 {
		passiveMax = detractorMax + 1
	}
	if passiveMax > maxScale-1 {
		passiveMax = maxScale - 1
	}

	return detractorMax, passiveMax
}

// CSATRatingThresholds derives the satisfied/neutral/dissatisfied split for a
// CSAT rating question, returning (dissatisfiedMax, neutralMax).
//
// The common scales carry explicit cut points: on 1-5, dissatisfied 1-2,
// neutral 3, satisfied 4-5 (40%/60% points of the scale); on 1-10,
// dissatisfied 1-5, neutral 6-7, satisfied 8-10 (50%/70% points). Other
// scales use a ~60/20/20 split with the same non-empty-band clamps as NPS.
func CSATRatingThresholds(minScale, maxScale int) (dissatisfiedMax, neutralMax int) {
	span := maxScale - minScale

	if minScale == 1 && maxScale == 5 {
		return 2, 3
	}
	if minScale == 1 && maxScale == 10 {
		return 5, 7
	}

	dissatisfiedMax = int(math.Floor(float64(minScale) + 0.60*float64(span)))
	neutralMax = int(math.Floor(float64(minScale) + 0.80*float64(span)))

	if dissatisfiedMax > maxScale-2 {
		dissatisfiedMax = maxScale - 2
	}
	if neutralMax < dissatisfiedMax+1 {
		neutralMax = dissatisfiedMax + 1
	}
	if neutralMax > maxScale-1 {
		neutralMax = maxScale - 1
	}

	return dissatisfiedMax, neutralMax
}
