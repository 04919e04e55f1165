package analytics

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/masaar-cx/survey-analytics-service/internal/arabic"
	"github.com/masaar-cx/survey-analytics-service/internal/metrics"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

// ClassifySatisfaction resolves one answer to q into the satisfied/neutral/
// dissatisfied split.
//
// Choice and yes/no answers try the option satisfaction map first: an exact
// content-hash match on the raw answer, then a hash match on the normalized
// answer against normalized options. When no mapping resolves, classification
// degrades to the keyword vocabulary, and for yes/no questions finally to
// yes/no intent (yes = satisfied, no = dissatisfied). Rating answers go
// through number extraction and the CSAT scale bands. Anything that resists
// every stage comes back SatisfactionUnknown.
func ClassifySatisfaction(q *models.Question, options []models.QuestionOption, text string) arabic.Satisfaction {
	switch q.Type.Canonical() {
	case models.QuestionTypeRating:
		return classifyRatingSatisfaction(q, text)
	case models.QuestionTypeSingleChoice, models.QuestionTypeYesNo:
		return classifyChoiceSatisfaction(q, options, text)
	}
	return arabic.SatisfactionUnknown
}

func classifyRatingSatisfaction(q *models.Question, text string) arabic.Satisfaction {
	v, ok := arabic.ExtractNumber(text)
	if !ok {
		return arabic.SatisfactionUnknown
	}

	minScale, maxScale := q.ScaleBounds()
	score := int(math.Round(v))
	if score < minScale || score > maxScale {
		return arabic.SatisfactionUnknown
	}

	dissatisfiedMax, neutralMax := metrics.CSATRatingThresholds(minScale, maxScale)
	switch {
	case score <= dissatisfiedMax:
		return arabic.Dissatisfied
	case score <= neutralMax:
		return arabic.Neutral
	default:
		return arabic.Satisfied
	}
}

func classifyChoiceSatisfaction(q *models.Question, options []models.QuestionOption, text string) arabic.Satisfaction {
	if sv, ok := lookupSatisfactionValue(options, text); ok {
		return satisfactionFromValue(sv)
	}

	if s := arabic.ClassifyCSATChoice(text); s != arabic.SatisfactionUnknown {
		return s
	}

	if q.Type.Canonical() == models.QuestionTypeYesNo {
		switch arabic.YesNo(text) {
		case arabic.Yes:
			return arabic.Satisfied
		case arabic.No:
			return arabic.Dissatisfied
		}
	}

	return arabic.SatisfactionUnknown
}

// lookupSatisfactionValue finds the mapped satisfaction value for an answer:
// first by content hash of the raw text, then by comparing normalized answer
// text against normalized option text for answers captured with different
// spelling conventions than the designed option.
func lookupSatisfactionValue(options []models.QuestionOption, text string) (int, bool) {
	rawHash := models.HashText(text)
	for i := range options {
		if options[i].SatisfactionValue != nil && options[i].OptionHash == rawHash {
			return *options[i].SatisfactionValue, true
		}
	}

	normalized := arabic.Normalize(text)
	if normalized == "" {
		return 0, false
	}
	for i := range options {
		if options[i].SatisfactionValue == nil {
			continue
		}
		if arabic.Normalize(options[i].OptionText) == normalized {
			return *options[i].SatisfactionValue, true
		}
	}

	return 0, false
}

func satisfactionFromValue(v int) arabic.Satisfaction {
	switch v {
	case models.SatisfactionValueSatisfied:
		return arabic.Satisfied
	case models.SatisfactionValueNeutral:
		return arabic.Neutral
	case models.SatisfactionValueDissatisfied:
		return arabic.Dissatisfied
	}
	return arabic.SatisfactionUnknown
}

// ComputeCSAT aggregates the answers of every qualifying question into one
// CSAT result. Unknown classifications shrink the sample; they never count
// as a category here. Returns nil when no questions qualify.
func ComputeCSAT(
	questions []models.Question,
	answersByQuestion map[uuid.UUID][]models.AnswerRecord,
	optionsByQuestion map[uuid.UUID][]models.QuestionOption,
) *models.CSATResult {
	if len(questions) == 0 {
		return nil
	}

	var satisfied, neutral, dissatisfied int
	refs := make([]models.CSATQuestionRef, 0, len(questions))

	for i := range questions {
		q := &questions[i]
		refs = append(refs, models.CSATQuestionRef{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			QuestionType: q.Type.Canonical(),
		})

		options := optionsByQuestion[q.ID]
		for _, a := range answersByQuestion[q.ID] {
			switch ClassifySatisfaction(q, options, a.Text) {
			case arabic.Satisfied:
				satisfied++
			case arabic.Neutral:
				neutral++
			case arabic.Dissatisfied:
				dissatisfied++
			}
		}
	}

	total := satisfied + neutral + dissatisfied
	score := metrics.CSATScore(satisfied, neutral, dissatisfied)

	return &models.CSATResult{
		Questions:       refs,
		Score:           score,
		Interpretation:  metrics.CSATInterpretation(score),
		Satisfied:       satisfied,
		Neutral:         neutral,
		Dissatisfied:    dissatisfied,
		Total:           total,
		SatisfiedPct:    metrics.Percent(satisfied, total),
		NeutralPct:      metrics.Percent(neutral, total),
		DissatisfiedPct: metrics.Percent(dissatisfied, total),
		GeneratedAt:     time.Now(),
	}
}
