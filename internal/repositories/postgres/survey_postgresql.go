package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masaar-cx/survey-analytics-service/internal/models"
	"github.com/masaar-cx/survey-analytics-service/internal/repositories"
)

type SurveyPostgreSQL struct {
	db *gorm.DB
}

func NewSurveyPostgreSQL(db *gorm.DB) repositories.SurveyRepository {
	return &SurveyPostgreSQL{db: db}
}

// GetByIDWithQuestions retrieves a survey with questions in declared order
// and each question's option satisfaction map.
func (s *SurveyPostgreSQL) GetByIDWithQuestions(ctx context.Context, id uuid.UUID) (*models.Survey, error) {
	var survey models.Survey
	err := s.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&survey, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (s *SurveyPostgreSQL) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Survey{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check survey existence: %w", err)
	}
	return count > 0, nil
}
