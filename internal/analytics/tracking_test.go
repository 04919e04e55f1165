package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

func answerAt(text string, at time.Time) models.AnswerRecord {
	return models.AnswerRecord{Text: text, SubmittedAt: &at, IsComplete: true}
}

func dubai(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dubai")
	require.NoError(t, err)
	return loc
}

func TestTrackCSAT_DailyBuckets(t *testing.T) {
	loc := dubai(t)
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, loc)
	day2 := time.Date(2025, 3, 12, 14, 0, 0, 0, loc)

	buckets := TrackCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: {
				answerAt("ممتاز", day1),
				answerAt("ضعيف", day1),
				answerAt("ممتاز", day2),
			},
		},
		nil,
		models.GroupByDay,
		loc,
	)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-03-10", buckets[0].Period)
	assert.Equal(t, 1, buckets[0].Satisfied)
	assert.Equal(t, 1, buckets[0].Dissatisfied)
	assert.Equal(t, 2, buckets[0].Total)
	assert.Equal(t, 50.0, buckets[0].Score)

	assert.Equal(t, "2025-03-12", buckets[1].Period)
	assert.Equal(t, 100.0, buckets[1].Score)
}

func TestTrackCSAT_WeekAnchorsOnSunday(t *testing.T) {
	loc := dubai(t)
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)

	// 2025-03-12 is a Wednesday; its Sunday-anchored week starts 2025-03-09.
	wednesday := time.Date(2025, 3, 12, 10, 0, 0, 0, loc)
	// 2025-03-09 is the Sunday itself, same bucket.
	sunday := time.Date(2025, 3, 9, 23, 0, 0, 0, loc)

	buckets := TrackCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: {answerAt("ممتاز", wednesday), answerAt("ممتاز", sunday)},
		},
		nil,
		models.GroupByWeek,
		loc,
	)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-03-09", buckets[0].Period)
	assert.Equal(t, 2, buckets[0].Total)
}

func TestTrackCSAT_MonthlyBuckets(t *testing.T) {
	loc := dubai(t)
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)

	buckets := TrackCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: {
				answerAt("ممتاز", time.Date(2025, 1, 31, 12, 0, 0, 0, loc)),
				answerAt("ممتاز", time.Date(2025, 2, 1, 12, 0, 0, 0, loc)),
			},
		},
		nil,
		models.GroupByMonth,
		loc,
	)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-01", buckets[0].Period)
	assert.Equal(t, "2025-02", buckets[1].Period)
}

func TestTrackCSAT_UnknownCountsAsNeutral(t *testing.T) {
	loc := dubai(t)
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, loc)

	buckets := TrackCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: {answerAt("ممتاز", at), answerAt("بدون تصنيف", at)},
		},
		nil,
		models.GroupByDay,
		loc,
	)

	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Satisfied)
	assert.Equal(t, 1, buckets[0].Neutral)
	assert.Equal(t, 2, buckets[0].Total)
	assert.Equal(t, 50.0, buckets[0].Score)
}

func TestTrackCSAT_IncompleteAndUntimestampedSkipped(t *testing.T) {
	loc := dubai(t)
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, loc)

	incomplete := answerAt("ممتاز", at)
	incomplete.IsComplete = false

	buckets := TrackCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: {
				incomplete,
				{Text: "ممتاز", IsComplete: true}, // no timestamp
				answerAt("ممتاز", at),
			},
		},
		nil,
		models.GroupByDay,
		loc,
	)

	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Total)
}

func TestTrackCSAT_TimezoneShiftsPeriod(t *testing.T) {
	loc := dubai(t)
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)

	// 22:30 UTC on March 10 is already March 11 in Dubai (UTC+4).
	utcEvening := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)

	buckets := TrackCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{q.ID: {answerAt("ممتاز", utcEvening)}},
		nil,
		models.GroupByDay,
		loc,
	)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-03-11", buckets[0].Period)
}

func TestTrackCSAT_Empty(t *testing.T) {
	assert.Empty(t, TrackCSAT(nil, nil, nil, models.GroupByDay, time.UTC))
}

func TestPeriodKey(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	at := time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2025-03-12", PeriodKey(at, models.GroupByDay))
	assert.Equal(t, "2025-03-09", PeriodKey(at, models.GroupByWeek))
	assert.Equal(t, "2025-03", PeriodKey(at, models.GroupByMonth))
}
