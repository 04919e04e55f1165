package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masaar-cx/survey-analytics-service/internal/analytics"
	"github.com/masaar-cx/survey-analytics-service/internal/cache"
	apperrors "github.com/masaar-cx/survey-analytics-service/internal/errors"
	"github.com/masaar-cx/survey-analytics-service/internal/events"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
	"github.com/masaar-cx/survey-analytics-service/internal/repositories"
	"github.com/masaar-cx/survey-analytics-service/internal/utils"
)

// snapshotTTL bounds how stale a cached answer snapshot may get between
// dashboard polls. Computed metrics are never cached, only the raw snapshot.
const snapshotTTL = 30 * time.Second

// TrackingRequest carries the query parameters of the tracking view.
type TrackingRequest struct {
	GroupBy  string     `json:"group_by" validate:"omitempty,group_by"`
	Timezone string     `json:"timezone"`
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
}

// AnalyticsService computes the analytics views for one survey. Every call
// recomputes from the current answer snapshot.
type AnalyticsService interface {
	GetNPS(ctx context.Context, surveyID uuid.UUID) (*models.NPSResult, error)
	GetCSAT(ctx context.Context, surveyID uuid.UUID) (*models.CSATResult, error)
	GetCSATTracking(ctx context.Context, surveyID uuid.UUID, req *TrackingRequest) ([]models.PeriodBucket, error)
	GetHeatmap(ctx context.Context, surveyID uuid.UUID, timezone string) (*models.Heatmap, error)
	GetSummary(ctx context.Context, surveyID uuid.UUID) (*models.AnalyticsSummary, error)
	InvalidateSnapshot(ctx context.Context, surveyID uuid.UUID) error
}

type analyticsService struct {
	surveys         repositories.SurveyRepository
	answers         repositories.AnswerRepository
	cache           cache.CacheService
	publisher       events.EventPublisher
	logger          utils.Logger
	validator       *utils.Validator
	defaultTimezone string
}

func NewAnalyticsService(
	surveys repositories.SurveyRepository,
	answers repositories.AnswerRepository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *utils.Validator,
	defaultTimezone string,
) AnalyticsService {
	if defaultTimezone == "" {
		defaultTimezone = analytics.DefaultTimezone
	}
	return &analyticsService{
		surveys:         surveys,
		answers:         answers,
		cache:           cacheService,
		publisher:       publisher,
		logger:          logger,
		validator:       validator,
		defaultTimezone: defaultTimezone,
	}
}

// GetNPS computes the NPS view. A survey with no eligible rating question
// yields (nil, nil); the handler omits the metric rather than erroring.
func (s *analyticsService) GetNPS(ctx context.Context, surveyID uuid.UUID) (*models.NPSResult, error) {
	survey, err := s.loadSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	q := analytics.SelectNPSQuestion(survey.Questions)
	if q == nil {
		s.logger.Info("No NPS-eligible question", "survey_id", surveyID)
		return nil, nil
	}

	snapshot, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	result := analytics.ComputeNPS(q, answersFor(snapshot, q.ID))
	s.publishEvent(ctx, events.NewNPSComputedEvent(surveyID, q.ID, result.Score, result.Total))

	return result, nil
}

// GetCSAT computes the CSAT view aggregated across every qualifying question.
func (s *analyticsService) GetCSAT(ctx context.Context, surveyID uuid.UUID) (*models.CSATResult, error) {
	survey, err := s.loadSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	questions := analytics.SelectCSATQuestions(survey.Questions)
	if len(questions) == 0 {
		s.logger.Info("No CSAT-eligible question", "survey_id", surveyID)
		return nil, nil
	}

	snapshot, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	result := analytics.ComputeCSAT(questions, groupByQuestion(snapshot), optionsByQuestion(questions))
	s.publishEvent(ctx, events.NewCSATComputedEvent(surveyID, len(questions), result.Score, result.Total))

	return result, nil
}

// GetCSATTracking buckets CSAT-classified answers per period in the resolved
// timezone. Empty when the survey carries no CSAT question.
func (s *analyticsService) GetCSATTracking(ctx context.Context, surveyID uuid.UUID, req *TrackingRequest) ([]models.PeriodBucket, error) {
	if req == nil {
		req = &TrackingRequest{}
	}
	if err := s.validator.Validate(req); err != nil {
		if verrs := apperrors.ToValidationErrors(err); len(verrs) > 0 {
			return nil, verrs
		}
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	if req.DateFrom != nil && req.DateTo != nil && req.DateFrom.After(*req.DateTo) {
		return nil, ErrInvalidDateSpan
	}

	groupBy := models.GroupBy(req.GroupBy)
	if groupBy == "" {
		groupBy = models.GroupByDay
	}

	survey, err := s.loadSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	questions := analytics.SelectCSATQuestions(survey.Questions)
	if len(questions) == 0 {
		return nil, nil
	}

	snapshot, err := s.answers.GetAnswerSnapshot(ctx, surveyID, repositories.AnswerFilters{
		DateFrom:     req.DateFrom,
		DateTo:       req.DateTo,
		CompleteOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for survey %s: %w", surveyID, err)
	}

	loc := s.resolveLocation(req.Timezone, survey.Timezone)
	return analytics.TrackCSAT(questions, groupByQuestion(snapshot), optionsByQuestion(questions), groupBy, loc), nil
}

// GetHeatmap builds the 7x24 response-density matrix.
func (s *analyticsService) GetHeatmap(ctx context.Context, surveyID uuid.UUID, timezone string) (*models.Heatmap, error) {
	survey, err := s.loadSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	loc := s.resolveLocation(timezone, survey.Timezone)
	return analytics.BuildHeatmap(snapshot, loc), nil
}

// GetSummary bundles every analytics view for one survey.
func (s *analyticsService) GetSummary(ctx context.Context, surveyID uuid.UUID) (*models.AnalyticsSummary, error) {
	survey, err := s.loadSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	loc := s.resolveLocation("", survey.Timezone)
	byQuestion := groupByQuestion(snapshot)

	summary := &models.AnalyticsSummary{
		SurveyID:    surveyID,
		Heatmap:     analytics.BuildHeatmap(snapshot, loc),
		GeneratedAt: time.Now(),
	}

	if q := analytics.SelectNPSQuestion(survey.Questions); q != nil {
		summary.NPS = analytics.ComputeNPS(q, byQuestion[q.ID])
		s.publishEvent(ctx, events.NewNPSComputedEvent(surveyID, q.ID, summary.NPS.Score, summary.NPS.Total))
	}

	if questions := analytics.SelectCSATQuestions(survey.Questions); len(questions) > 0 {
		options := optionsByQuestion(questions)
		summary.CSAT = analytics.ComputeCSAT(questions, byQuestion, options)
		summary.Tracking = analytics.TrackCSAT(questions, byQuestion, options, models.GroupByDay, loc)
		s.publishEvent(ctx, events.NewCSATComputedEvent(surveyID, len(questions), summary.CSAT.Score, summary.CSAT.Total))
	}

	return summary, nil
}

// InvalidateSnapshot drops the cached answer snapshot so the next view
// recomputes from fresh rows. Called when a survey's answers change ahead
// of the TTL, for example after a bulk import.
func (s *analyticsService) InvalidateSnapshot(ctx context.Context, surveyID uuid.UUID) error {
	exists, err := s.surveys.Exists(ctx, surveyID)
	if err != nil {
		return fmt.Errorf("failed to check survey %s: %w", surveyID, err)
	}
	if !exists {
		return ErrSurveyNotFound
	}

	if err := s.cache.Delete(ctx, snapshotKey(surveyID)); err != nil {
		return fmt.Errorf("failed to invalidate snapshot for survey %s: %w", surveyID, err)
	}

	s.logger.Info("Answer snapshot invalidated", "survey_id", surveyID)
	return nil
}

// loadSurvey fetches the survey with its questions and option maps,
// translating the missing-row case into the service-level sentinel.
func (s *analyticsService) loadSurvey(ctx context.Context, surveyID uuid.UUID) (*models.Survey, error) {
	survey, err := s.surveys.GetByIDWithQuestions(ctx, surveyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSurveyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load survey %s: %w", surveyID, err)
	}
	return survey, nil
}

// loadSnapshot returns the full answer snapshot for a survey, served from
// the short-TTL cache when a dashboard is polling.
func (s *analyticsService) loadSnapshot(ctx context.Context, surveyID uuid.UUID) ([]models.AnswerRecord, error) {
	key := snapshotKey(surveyID)

	var cached []models.AnswerRecord
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Snapshot cache read failed", "survey_id", surveyID, "error", err)
	}

	snapshot, err := s.answers.GetAnswerSnapshot(ctx, surveyID, repositories.AnswerFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for survey %s: %w", surveyID, err)
	}

	if err := s.cache.Set(ctx, key, snapshot, snapshotTTL); err != nil {
		s.logger.Warn("Snapshot cache write failed", "survey_id", surveyID, "error", err)
	}
	return snapshot, nil
}

// resolveLocation picks the effective timezone: explicit request parameter,
// then the survey's configured zone, then the service default.
func (s *analyticsService) resolveLocation(requested, surveyZone string) *time.Location {
	if requested != "" {
		return analytics.LoadLocation(requested)
	}
	if surveyZone != "" {
		return analytics.LoadLocation(surveyZone)
	}
	return analytics.LoadLocation(s.defaultTimezone)
}

// publishEvent sends an analytics event without failing the request; the
// computation result is already in hand.
func (s *analyticsService) publishEvent(ctx context.Context, event *events.AnalyticsEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishAnalyticsEvent(ctx, event); err != nil {
		s.logger.LogError(err, "Failed to publish analytics event", "event_type", event.Type)
	}
}

func snapshotKey(surveyID uuid.UUID) string {
	return fmt.Sprintf("analytics:snapshot:%s", surveyID)
}

func answersFor(snapshot []models.AnswerRecord, questionID uuid.UUID) []models.AnswerRecord {
	var out []models.AnswerRecord
	for _, a := range snapshot {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out
}

func groupByQuestion(snapshot []models.AnswerRecord) map[uuid.UUID][]models.AnswerRecord {
	grouped := make(map[uuid.UUID][]models.AnswerRecord)
	for _, a := range snapshot {
		grouped[a.QuestionID] = append(grouped[a.QuestionID], a)
	}
	return grouped
}

func optionsByQuestion(questions []models.Question) map[uuid.UUID][]models.QuestionOption {
	options := make(map[uuid.UUID][]models.QuestionOption, len(questions))
	for i := range questions {
		options[questions[i].ID] = questions[i].Options
	}
	return options
}
