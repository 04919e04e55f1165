package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type taggedQuestion struct {
	Type        string `json:"type" validate:"omitempty,question_type"`
	SemanticTag string `json:"semantic_tag" validate:"omitempty,semantic_tag"`
}

type trackingQuery struct {
	GroupBy string `json:"group_by" validate:"omitempty,group_by"`
}

func TestValidator_SemanticTag(t *testing.T) {
	v := NewValidator()

	for _, tag := range []string{"nps", "csat", "none", ""} {
		assert.NoError(t, v.Validate(taggedQuestion{SemanticTag: tag}), "tag %q", tag)
	}

	// Questions outside the two metrics are stored as "none".
	assert.Error(t, v.Validate(taggedQuestion{SemanticTag: "general"}))
	assert.Error(t, v.Validate(taggedQuestion{SemanticTag: "NPS"}))
}

func TestValidator_QuestionType(t *testing.T) {
	v := NewValidator()

	for _, qt := range []string{"rating", "yes_no", "تقييم", "نعم/لا"} {
		assert.NoError(t, v.Validate(taggedQuestion{Type: qt}), "type %q", qt)
	}

	assert.Error(t, v.Validate(taggedQuestion{Type: "slider"}))
}

func TestValidator_GroupBy(t *testing.T) {
	v := NewValidator()

	for _, g := range []string{"day", "week", "month", ""} {
		assert.NoError(t, v.Validate(trackingQuery{GroupBy: g}), "group %q", g)
	}

	assert.Error(t, v.Validate(trackingQuery{GroupBy: "quarter"}))
}
