package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masaar-cx/survey-analytics-service/internal/arabic"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

func option(questionID uuid.UUID, text string, satisfaction int) models.QuestionOption {
	return models.QuestionOption{
		ID:                uuid.New(),
		QuestionID:        questionID,
		OptionText:        text,
		OptionHash:        models.HashText(text),
		SatisfactionValue: &satisfaction,
	}
}

func TestClassifySatisfaction_OptionMapByHash(t *testing.T) {
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)
	options := []models.QuestionOption{
		option(q.ID, "خيار اول", models.SatisfactionValueSatisfied),
		option(q.ID, "خيار ثاني", models.SatisfactionValueNeutral),
		option(q.ID, "خيار ثالث", models.SatisfactionValueDissatisfied),
	}

	assert.Equal(t, arabic.Satisfied, ClassifySatisfaction(&q, options, "خيار اول"))
	assert.Equal(t, arabic.Neutral, ClassifySatisfaction(&q, options, "خيار ثاني"))
	assert.Equal(t, arabic.Dissatisfied, ClassifySatisfaction(&q, options, "خيار ثالث"))
}

func TestClassifySatisfaction_OptionMapNormalizedFallback(t *testing.T) {
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)
	options := []models.QuestionOption{
		option(q.ID, "تجربة مُمتازة", models.SatisfactionValueSatisfied),
	}

	// Different diacritics and taa marbuta spelling than the designed option:
	// the raw hash misses, the normalized comparison resolves it.
	assert.Equal(t, arabic.Satisfied, ClassifySatisfaction(&q, options, "تجربه ممتازه"))
}

func TestClassifySatisfaction_KeywordFallbackWhenUnmapped(t *testing.T) {
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)

	// No option mappings at all: classification degrades to the vocabulary.
	assert.Equal(t, arabic.Satisfied, ClassifySatisfaction(&q, nil, "ممتاز"))
	assert.Equal(t, arabic.Dissatisfied, ClassifySatisfaction(&q, nil, "ضعيف"))
	assert.Equal(t, arabic.Neutral, ClassifySatisfaction(&q, nil, "محايد"))
	assert.Equal(t, arabic.SatisfactionUnknown, ClassifySatisfaction(&q, nil, "لا تعليق"))
}

func TestClassifySatisfaction_YesNoIntentFallback(t *testing.T) {
	q := question("هل أنت راضي؟", models.QuestionTypeYesNo)

	assert.Equal(t, arabic.Satisfied, ClassifySatisfaction(&q, nil, "نعم"))
	assert.Equal(t, arabic.Dissatisfied, ClassifySatisfaction(&q, nil, "لا"))
}

func TestClassifySatisfaction_RatingBands(t *testing.T) {
	q := question("قيم رضاك", models.QuestionTypeRating, func(q *models.Question) {
		q.MinScale = intPtr(1)
		q.MaxScale = intPtr(5)
	})

	assert.Equal(t, arabic.Dissatisfied, ClassifySatisfaction(&q, nil, "1"))
	assert.Equal(t, arabic.Dissatisfied, ClassifySatisfaction(&q, nil, "٢"))
	assert.Equal(t, arabic.Neutral, ClassifySatisfaction(&q, nil, "3"))
	assert.Equal(t, arabic.Satisfied, ClassifySatisfaction(&q, nil, "4"))
	assert.Equal(t, arabic.Satisfied, ClassifySatisfaction(&q, nil, "خمسة"))
	assert.Equal(t, arabic.SatisfactionUnknown, ClassifySatisfaction(&q, nil, "كلام فقط"))
}

func TestComputeCSAT_MappedChoices(t *testing.T) {
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice, func(q *models.Question) {
		q.CSATCalculate = true
	})
	options := []models.QuestionOption{
		option(q.ID, "راضي جدا", models.SatisfactionValueSatisfied),
		option(q.ID, "محايد", models.SatisfactionValueNeutral),
		option(q.ID, "غير راضي", models.SatisfactionValueDissatisfied),
	}

	result := ComputeCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: answers("راضي جدا", "محايد", "غير راضي"),
		},
		map[uuid.UUID][]models.QuestionOption{q.ID: options},
	)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.Satisfied)
	assert.Equal(t, 1, result.Neutral)
	assert.Equal(t, 1, result.Dissatisfied)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 33.3, result.Score)
	assert.Equal(t, "Poor - Action required", result.Interpretation)
}

func TestComputeCSAT_AggregatesAcrossQuestions(t *testing.T) {
	choice := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)
	rating := question("قيم رضاك", models.QuestionTypeRating, func(q *models.Question) {
		q.MinScale = intPtr(1)
		q.MaxScale = intPtr(5)
	})

	result := ComputeCSAT(
		[]models.Question{choice, rating},
		map[uuid.UUID][]models.AnswerRecord{
			choice.ID: answers("ممتاز", "سيئ للغاية"),
			rating.ID: answers("5", "4", "1"),
		},
		nil,
	)
	require.NotNil(t, result)

	assert.Len(t, result.Questions, 2)
	assert.Equal(t, 3, result.Satisfied)
	assert.Equal(t, 0, result.Neutral)
	assert.Equal(t, 2, result.Dissatisfied)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 60.0, result.Score)
}

func TestComputeCSAT_UnknownAnswersShrinkSample(t *testing.T) {
	q := question("اختر مستوى رضاك", models.QuestionTypeSingleChoice)

	result := ComputeCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: answers("ممتاز", "بدون اجابة واضحة", "ضعيف"),
		},
		nil,
	)
	require.NotNil(t, result)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 50.0, result.Score)
}

func TestComputeCSAT_ExhaustiveCounts(t *testing.T) {
	q := question("قيم رضاك", models.QuestionTypeRating, func(q *models.Question) {
		q.MinScale = intPtr(1)
		q.MaxScale = intPtr(10)
	})

	result := ComputeCSAT(
		[]models.Question{q},
		map[uuid.UUID][]models.AnswerRecord{
			q.ID: answers("1", "2", "3", "4", "5", "6", "7", "8", "9", "10"),
		},
		nil,
	)
	require.NotNil(t, result)

	assert.Equal(t, result.Total, result.Satisfied+result.Neutral+result.Dissatisfied)
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, 5, result.Dissatisfied) // 1-5
	assert.Equal(t, 2, result.Neutral)      // 6-7
	assert.Equal(t, 3, result.Satisfied)    // 8-10
}

func TestComputeCSAT_NoQuestions(t *testing.T) {
	assert.Nil(t, ComputeCSAT(nil, nil, nil))
}
