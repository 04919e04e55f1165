package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masaar-cx/survey-analytics-service/internal/models"
	"github.com/masaar-cx/survey-analytics-service/internal/repositories"
)

type AnswerPostgreSQL struct {
	db *gorm.DB
}

func NewAnswerPostgreSQL(db *gorm.DB) repositories.AnswerRepository {
	return &AnswerPostgreSQL{db: db}
}

// answerRow is the join projection feeding the snapshot.
type answerRow struct {
	QuestionID  uuid.UUID
	Value       []byte
	IsComplete  bool
	SubmittedAt *time.Time
}

// GetAnswerSnapshot flattens answers joined with their response metadata into
// the records the engine consumes. Answers are returned oldest first so
// downstream aggregation is deterministic.
func (a *AnswerPostgreSQL) GetAnswerSnapshot(ctx context.Context, surveyID uuid.UUID, filters repositories.AnswerFilters) ([]models.AnswerRecord, error) {
	query := a.db.WithContext(ctx).
		Table("answers").
		Select("answers.question_id, answers.value, survey_responses.is_complete, survey_responses.submitted_at").
		Joins("JOIN survey_responses ON survey_responses.id = answers.response_id").
		Where("survey_responses.survey_id = ?", surveyID).
		Order("answers.created_at ASC")

	if filters.CompleteOnly {
		query = query.Where("survey_responses.is_complete = ?", true)
	}
	if filters.DateFrom != nil {
		query = query.Where("survey_responses.submitted_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("survey_responses.submitted_at <= ?", *filters.DateTo)
	}

	var rows []answerRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load answer snapshot: %w", err)
	}

	records := make([]models.AnswerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.AnswerRecord{
			QuestionID:  row.QuestionID,
			Text:        decodeAnswerValue(row.Value),
			SubmittedAt: row.SubmittedAt,
			IsComplete:  row.IsComplete,
		})
	}
	return records, nil
}

// decodeAnswerValue turns the stored JSON value into the raw answer text.
// Free-form and choice answers are JSON strings; legacy rows stored bare
// numbers. Anything else passes through as-is.
func decodeAnswerValue(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return string(raw)
}
