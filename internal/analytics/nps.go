package analytics

import (
	"math"
	"time"

	"github.com/masaar-cx/survey-analytics-service/internal/arabic"
	"github.com/masaar-cx/survey-analytics-service/internal/metrics"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

// ComputeNPS classifies every numeric answer to q into a promoter, passive or
// detractor band and reduces the counts to an NPS result. Answers that carry
// no numeric intent, or a value outside the declared scale, shrink the sample
// rather than counting as zero. Returns nil when q is nil.
func ComputeNPS(q *models.Question, answers []models.AnswerRecord) *models.NPSResult {
	if q == nil {
		return nil
	}

	minScale, maxScale := q.ScaleBounds()
	detractorMax, passiveMax := metrics.NPSThresholds(minScale, maxScale)

	var promoters, passives, detractors int
	values := make([]float64, 0, len(answers))

	for _, a := range answers {
		v, ok := arabic.ExtractNumber(a.Text)
		if !ok {
			continue
		}
		score := int(math.Round(v))
		if score < minScale || score > maxScale {
			continue
		}
		values = append(values, v)

		switch {
		case score <= detractorMax:
			detractors++
		case score <= passiveMax:
			passives++
		default:
			promoters++
		}
	}

	total := promoters + passives + detractors
	score := metrics.NPSScore(promoters, passives, detractors)

	return &models.NPSResult{
		QuestionID:     q.ID,
		QuestionText:   q.Text,
		ScaleMin:       minScale,
		ScaleMax:       maxScale,
		Score:          score,
		Interpretation: metrics.NPSInterpretation(score),
		Promoters:      promoters,
		Passives:       passives,
		Detractors:     detractors,
		Total:          total,
		PromoterPct:    metrics.Percent(promoters, total),
		PassivePct:     metrics.Percent(passives, total),
		DetractorPct:   metrics.Percent(detractors, total),
		Distribution:   metrics.NPSDistribution(values, minScale, maxScale),
		GeneratedAt:    time.Now(),
	}
}
