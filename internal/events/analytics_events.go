package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of analytics events
type EventType string

const (
	EventNPSComputed    EventType = "analytics.nps.computed"
	EventCSATComputed   EventType = "analytics.csat.computed"
	EventReportExported EventType = "analytics.report.exported"
)

// AnalyticsEvent is the base event structure for all analytics events
type AnalyticsEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Analytics event payloads

type NPSComputedEvent struct {
	SurveyID   uuid.UUID `json:"survey_id"`
	QuestionID uuid.UUID `json:"question_id"`
	Score      float64   `json:"score"`
	Total      int       `json:"total"`
	ComputedAt time.Time `json:"computed_at"`
}

type CSATComputedEvent struct {
	SurveyID      uuid.UUID `json:"survey_id"`
	QuestionCount int       `json:"question_count"`
	Score         float64   `json:"score"`
	Total         int       `json:"total"`
	ComputedAt    time.Time `json:"computed_at"`
}

type ReportExportedEvent struct {
	SurveyID   uuid.UUID `json:"survey_id"`
	SizeBytes  int       `json:"size_bytes"`
	ExportedAt time.Time `json:"exported_at"`
}

// Event factory functions

func NewNPSComputedEvent(surveyID, questionID uuid.UUID, score float64, total int) *AnalyticsEvent {
	return &AnalyticsEvent{
		ID:        generateEventID(),
		Type:      EventNPSComputed,
		Timestamp: time.Now(),
		Source:    "survey-analytics-service",
		Version:   "1.0",
		Data: NPSComputedEvent{
			SurveyID:   surveyID,
			QuestionID: questionID,
			Score:      score,
			Total:      total,
			ComputedAt: time.Now(),
		},
	}
}

func NewCSATComputedEvent(surveyID uuid.UUID, questionCount int, score float64, total int) *AnalyticsEvent {
	return &AnalyticsEvent{
		ID:        generateEventID(),
		Type:      EventCSATComputed,
		Timestamp: time.Now(),
		Source:    "survey-analytics-service",
		Version:   "1.0",
		Data: CSATComputedEvent{
			SurveyID:      surveyID,
			QuestionCount: questionCount,
			Score:         score,
			Total:         total,
			ComputedAt:    time.Now(),
		},
	}
}

func NewReportExportedEvent(surveyID uuid.UUID, sizeBytes int) *AnalyticsEvent {
	return &AnalyticsEvent{
		ID:        generateEventID(),
		Type:      EventReportExported,
		Timestamp: time.Now(),
		Source:    "survey-analytics-service",
		Version:   "1.0",
		Data: ReportExportedEvent{
			SurveyID:   surveyID,
			SizeBytes:  sizeBytes,
			ExportedAt: time.Now(),
		},
	}
}

func generateEventID() string {
	return uuid.NewString()
}
