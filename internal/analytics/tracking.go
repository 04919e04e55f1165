package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/masaar-cx/survey-analytics-service/internal/arabic"
	"github.com/masaar-cx/survey-analytics-service/internal/metrics"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

// TrackCSAT groups CSAT-classified answers into day, week or month buckets in
// the target timezone and derives a per-period score. Only complete,
// timestamped answers participate. Answers that classify as unknown are
// accumulated as neutral, the established tracking policy for ambiguous
// choice answers. Periods with no answers are absent, not zero-filled; output
// is ordered ascending by period key.
func TrackCSAT(
	questions []models.Question,
	answersByQuestion map[uuid.UUID][]models.AnswerRecord,
	optionsByQuestion map[uuid.UUID][]models.QuestionOption,
	groupBy models.GroupBy,
	loc *time.Location,
) []models.PeriodBucket {
	buckets := make(map[string]*models.PeriodBucket)

	for i := range questions {
		q := &questions[i]
		options := optionsByQuestion[q.ID]

		for _, a := range answersByQuestion[q.ID] {
			if !a.IsComplete || a.SubmittedAt == nil {
				continue
			}

			key := PeriodKey(a.SubmittedAt.In(loc), groupBy)
			b, ok := buckets[key]
			if !ok {
				b = &models.PeriodBucket{Period: key}
				buckets[key] = b
			}

			switch ClassifySatisfaction(q, options, a.Text) {
			case arabic.Satisfied:
				b.Satisfied++
			case arabic.Dissatisfied:
				b.Dissatisfied++
			default:
				// Neutral and unknown alike.
				b.Neutral++
			}
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.PeriodBucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		b.Total = b.Satisfied + b.Neutral + b.Dissatisfied
		b.Score = metrics.CSATScore(b.Satisfied, b.Neutral, b.Dissatisfied)
		out = append(out, *b)
	}
	return out
}

// PeriodKey derives the tracking period label for t: the calendar date for
// days, the Sunday-anchored week start date for weeks (the regional week
// convention), and year-month for months. Keys sort chronologically as plain
// strings.
func PeriodKey(t time.Time, groupBy models.GroupBy) string {
	switch groupBy {
	case models.GroupByWeek:
		weekStart := t.AddDate(0, 0, -int(t.Weekday()))
		return weekStart.Format("2006-01-02")
	case models.GroupByMonth:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	default:
		return t.Format("2006-01-02")
	}
}
