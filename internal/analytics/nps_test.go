package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

func answers(texts ...string) []models.AnswerRecord {
	out := make([]models.AnswerRecord, 0, len(texts))
	for _, t := range texts {
		out = append(out, models.AnswerRecord{Text: t, IsComplete: true})
	}
	return out
}

func TestComputeNPS_ClassicScale(t *testing.T) {
	q := question("هل توصي بنا؟", models.QuestionTypeRating, func(q *models.Question) {
		q.MinScale = intPtr(0)
		q.MaxScale = intPtr(10)
	})

	result := ComputeNPS(&q, answers("9", "9", "10", "7", "2", "1"))
	require.NotNil(t, result)

	assert.Equal(t, 3, result.Promoters)
	assert.Equal(t, 1, result.Passives)
	assert.Equal(t, 2, result.Detractors)
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, 16.7, result.Score)
	assert.Equal(t, 0, result.ScaleMin)
	assert.Equal(t, 10, result.ScaleMax)
	assert.Equal(t, "Fair - Needs improvement", result.Interpretation)
	assert.Len(t, result.Distribution, 11)
}

func TestComputeNPS_ArabicDigitsAndWords(t *testing.T) {
	q := question("قيم تجربتك", models.QuestionTypeRating, func(q *models.Question) {
		q.MinScale = intPtr(0)
		q.MaxScale = intPtr(10)
	})

	result := ComputeNPS(&q, answers("٩", "۸ من ۱۰", "عشرة", "صفر"))
	require.NotNil(t, result)

	assert.Equal(t, 2, result.Promoters) // 9 and 10
	assert.Equal(t, 1, result.Passives)  // 8
	assert.Equal(t, 1, result.Detractors)
	assert.Equal(t, 4, result.Total)
}

func TestComputeNPS_UnparseableAnswersShrinkSample(t *testing.T) {
	q := question("قيم تجربتك", models.QuestionTypeRating)

	result := ComputeNPS(&q, answers("5", "ما عندي رقم", "", "3"))
	require.NotNil(t, result)

	// Only "5" (promoter on 0-5) and "3" (passive) count.
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Promoters)
	assert.Equal(t, 1, result.Passives)
	assert.Equal(t, 0, result.Detractors)
	assert.Equal(t, 50.0, result.Score)
}

func TestComputeNPS_OutOfRangeValuesSkipped(t *testing.T) {
	q := question("قيم تجربتك", models.QuestionTypeRating) // defaults 0-5

	result := ComputeNPS(&q, answers("11", "-1", "4"))
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Total)
}

func TestComputeNPS_CategoryPercentagesIndependent(t *testing.T) {
	q := question("قيم تجربتك", models.QuestionTypeRating, func(q *models.Question) {
		q.MinScale = intPtr(0)
		q.MaxScale = intPtr(10)
	})

	result := ComputeNPS(&q, answers("10", "7", "2", "2", "2", "2"))
	require.NotNil(t, result)

	assert.Equal(t, 16.7, result.PromoterPct)
	assert.Equal(t, 16.7, result.PassivePct)
	assert.Equal(t, 66.7, result.DetractorPct)
}

func TestComputeNPS_NilQuestion(t *testing.T) {
	assert.Nil(t, ComputeNPS(nil, answers("5")))
}

func TestComputeNPS_NoAnswers(t *testing.T) {
	q := question("قيم تجربتك", models.QuestionTypeRating)

	result := ComputeNPS(&q, nil)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0.0, result.Score)
}
