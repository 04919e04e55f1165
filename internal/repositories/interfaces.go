package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

// AnswerFilters narrows the answer snapshot a computation runs over.
type AnswerFilters struct {
	DateFrom     *time.Time `json:"date_from"`
	DateTo       *time.Time `json:"date_to"`
	CompleteOnly bool       `json:"complete_only"`
}

// SurveyRepository loads survey structure: questions, scales, option maps.
type SurveyRepository interface {
	GetByIDWithQuestions(ctx context.Context, id uuid.UUID) (*models.Survey, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// AnswerRepository loads the flattened answer snapshot the engine consumes.
type AnswerRepository interface {
	GetAnswerSnapshot(ctx context.Context, surveyID uuid.UUID, filters AnswerFilters) ([]models.AnswerRecord, error)
}
