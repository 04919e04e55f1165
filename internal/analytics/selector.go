// Package analytics is the pure computation engine behind the survey
// analytics API: question selection, NPS/CSAT aggregation, period tracking
// and the response heatmap. It performs no I/O and owns no state; callers
// hand it an in-memory snapshot of questions and answers.
package analytics

import (
	"github.com/masaar-cx/survey-analytics-service/internal/arabic"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

// MetricKind names the metric a question is being selected for.
type MetricKind string

const (
	MetricNPS  MetricKind = "nps"
	MetricCSAT MetricKind = "csat"
)

// npsEligible reports whether q can carry the NPS metric: rating type with a
// valid scale.
func npsEligible(q *models.Question) bool {
	return q.Type.Canonical() == models.QuestionTypeRating && q.HasValidScale()
}

// csatEligible reports whether q can carry the CSAT metric: single-choice,
// yes/no, or rating with a valid scale.
func csatEligible(q *models.Question) bool {
	switch q.Type.Canonical() {
	case models.QuestionTypeSingleChoice, models.QuestionTypeYesNo:
		return true
	case models.QuestionTypeRating:
		return q.HasValidScale()
	}
	return false
}

// selector is one step of the fallback chain: it either picks questions or
// yields to the next step by returning an empty slice.
type selector func(questions []models.Question) []models.Question

// SelectNPSQuestion picks the single question whose answers feed the NPS
// computation, or nil when the survey has no eligible rating question at all.
// Priority: explicit flag, legacy semantic tag, recommendation-topic wording,
// first eligible question in declared order.
func SelectNPSQuestion(questions []models.Question) *models.Question {
	chain := []selector{
		func(qs []models.Question) []models.Question {
			return firstWhere(qs, func(q *models.Question) bool {
				return q.NPSCalculate && npsEligible(q)
			})
		},
		func(qs []models.Question) []models.Question {
			return firstWhere(qs, func(q *models.Question) bool {
				return q.SemanticTag == models.SemanticTagNPS && npsEligible(q)
			})
		},
		func(qs []models.Question) []models.Question {
			return firstWhere(qs, func(q *models.Question) bool {
				return npsEligible(q) && arabic.MatchIntent(q.Text, arabic.NPSKeywords)
			})
		},
		func(qs []models.Question) []models.Question {
			return firstWhere(qs, npsEligible)
		},
	}

	for _, sel := range chain {
		if picked := sel(questions); len(picked) > 0 {
			return &picked[0]
		}
	}
	return nil
}

// SelectCSATQuestions picks the questions whose answers feed the CSAT
// computation. Unlike NPS, every flagged (or, failing that, every tagged)
// question participates and their answers aggregate together; only when
// neither signal exists does selection fall back to a single question chosen
// by topic wording and then by position.
func SelectCSATQuestions(questions []models.Question) []models.Question {
	chain := []selector{
		func(qs []models.Question) []models.Question {
			return allWhere(qs, func(q *models.Question) bool {
				return q.CSATCalculate && csatEligible(q)
			})
		},
		func(qs []models.Question) []models.Question {
			return allWhere(qs, func(q *models.Question) bool {
				return q.SemanticTag == models.SemanticTagCSAT && csatEligible(q)
			})
		},
		selectCSATByTopic,
		func(qs []models.Question) []models.Question {
			return firstWhere(qs, csatEligible)
		},
	}

	for _, sel := range chain {
		if picked := sel(questions); len(picked) > 0 {
			return picked
		}
	}
	return nil
}

// selectCSATByTopic scans eligible questions for satisfaction-topic wording,
// trying question types in reliability order: rating wording most reliably
// signals satisfaction intent, then yes/no, then single-choice.
func selectCSATByTopic(questions []models.Question) []models.Question {
	typePriority := []models.QuestionType{
		models.QuestionTypeRating,
		models.QuestionTypeYesNo,
		models.QuestionTypeSingleChoice,
	}

	for _, qt := range typePriority {
		picked := firstWhere(questions, func(q *models.Question) bool {
			return q.Type.Canonical() == qt && csatEligible(q) &&
				arabic.MatchIntent(q.Text, arabic.CSATKeywords)
		})
		if len(picked) > 0 {
			return picked
		}
	}
	return nil
}

func firstWhere(questions []models.Question, pred func(*models.Question) bool) []models.Question {
	for i := range questions {
		if pred(&questions[i]) {
			return questions[i : i+1]
		}
	}
	return nil
}

func allWhere(questions []models.Question, pred func(*models.Question) bool) []models.Question {
	var out []models.Question
	for i := range questions {
		if pred(&questions[i]) {
			out = append(out, questions[i])
		}
	}
	return out
}
