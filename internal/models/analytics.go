package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/masaar-cx/survey-analytics-service/internal/metrics"
)

// GroupBy selects the tracking bucket granularity.
type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
)

// NPSResult is the full NPS computation output for one survey. Never
// persisted or cached; recomputed fresh on every request.
type NPSResult struct {
	QuestionID   uuid.UUID `json:"question_id"`
	QuestionText string    `json:"question_text"`
	ScaleMin     int       `json:"scale_min"`
	ScaleMax     int       `json:"scale_max"`

	Score          float64 `json:"score"`
	Interpretation string  `json:"interpretation"`

	Promoters  int `json:"promoters"`
	Passives   int `json:"passives"`
	Detractors int `json:"detractors"`
	Total      int `json:"total"`

	PromoterPct  float64 `json:"promoter_pct"`
	PassivePct   float64 `json:"passive_pct"`
	DetractorPct float64 `json:"detractor_pct"`

	Distribution []metrics.ScorePoint `json:"distribution"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// CSATQuestionRef identifies one question whose answers fed a CSAT result.
type CSATQuestionRef struct {
	QuestionID   uuid.UUID    `json:"question_id"`
	QuestionText string       `json:"question_text"`
	QuestionType QuestionType `json:"question_type"`
}

// CSATResult aggregates satisfaction across every qualifying question.
type CSATResult struct {
	Questions []CSATQuestionRef `json:"questions"`

	Score          float64 `json:"score"`
	Interpretation string  `json:"interpretation"`

	Satisfied    int `json:"satisfied"`
	Neutral      int `json:"neutral"`
	Dissatisfied int `json:"dissatisfied"`
	Total        int `json:"total"`

	SatisfiedPct    float64 `json:"satisfied_pct"`
	NeutralPct      float64 `json:"neutral_pct"`
	DissatisfiedPct float64 `json:"dissatisfied_pct"`

	GeneratedAt time.Time `json:"generated_at"`
}

// PeriodBucket is one tracking period. Period is the day date, the week
// start date, or the year-month, and sorts chronologically as a string.
type PeriodBucket struct {
	Period       string  `json:"period"`
	Satisfied    int     `json:"satisfied"`
	Neutral      int     `json:"neutral"`
	Dissatisfied int     `json:"dissatisfied"`
	Total        int     `json:"total"`
	Score        float64 `json:"score"`
}

// Heatmap is the 7x24 response-density matrix. Row 0 is Sunday.
type Heatmap struct {
	Matrix     [7][24]int `json:"matrix"`
	DayTotals  [7]int     `json:"day_totals"`
	HourTotals [24]int    `json:"hour_totals"`
	Total      int        `json:"total"`
	Timezone   string     `json:"timezone"`
}

// AnalyticsSummary bundles every analytics view for one survey. Metric
// fields are nil when the survey has no question eligible for that metric.
type AnalyticsSummary struct {
	SurveyID    uuid.UUID      `json:"survey_id"`
	NPS         *NPSResult     `json:"nps,omitempty"`
	CSAT        *CSATResult    `json:"csat,omitempty"`
	Tracking    []PeriodBucket `json:"tracking"`
	Heatmap     *Heatmap       `json:"heatmap,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}
