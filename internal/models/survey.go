package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionType identifies how a question captures its answer. Stored values
// may use the Arabic display names; Canonical resolves them.
type QuestionType string

const (
	QuestionTypeRating         QuestionType = "rating"
	QuestionTypeSingleChoice   QuestionType = "single_choice"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeTextarea       QuestionType = "textarea"
	QuestionTypeUnknown        QuestionType = ""
)

// questionTypeAliases maps the Arabic display names accepted by the survey
// builder onto canonical types.
var questionTypeAliases = map[QuestionType]QuestionType{
	"تقييم":        QuestionTypeRating,
	"مقياس":        QuestionTypeRating,
	"اختيار واحد":  QuestionTypeSingleChoice,
	"اختيار متعدد": QuestionTypeMultipleChoice,
	"نعم/لا":       QuestionTypeYesNo,
	"نعم او لا":    QuestionTypeYesNo,
	"نص":           QuestionTypeText,
	"نص طويل":      QuestionTypeTextarea,
}

// Canonical resolves t to one of the canonical type constants, mapping Arabic
// aliases along the way. Unrecognized values come back QuestionTypeUnknown.
func (t QuestionType) Canonical() QuestionType {
	switch t {
	case QuestionTypeRating, QuestionTypeSingleChoice, QuestionTypeMultipleChoice,
		QuestionTypeYesNo, QuestionTypeText, QuestionTypeTextarea:
		return t
	}
	if canonical, ok := questionTypeAliases[t]; ok {
		return canonical
	}
	return QuestionTypeUnknown
}

// SemanticTag marks what a question measures, set by the survey designer.
type SemanticTag string

const (
	SemanticTagNPS  SemanticTag = "nps"
	SemanticTagCSAT SemanticTag = "csat"
	SemanticTagNone SemanticTag = "none"
)

// Scale defaults applied when a rating question declares no bounds.
const (
	DefaultMinScale = 0
	DefaultMaxScale = 5
)

// Satisfaction values stored on question options.
const (
	SatisfactionValueDissatisfied = 0
	SatisfactionValueNeutral      = 1
	SatisfactionValueSatisfied    = 2
)

type Survey struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:300" validate:"required,min=1,max=300"`
	Description *string   `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Timezone    string    `json:"timezone" gorm:"size:64;default:Asia/Dubai"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Questions []Question       `json:"questions" gorm:"foreignKey:SurveyID"`
	Responses []SurveyResponse `json:"-" gorm:"foreignKey:SurveyID"`
}

type Question struct {
	ID       uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	SurveyID uuid.UUID    `json:"survey_id" gorm:"type:uuid;not null;index"`
	Text     string       `json:"text" gorm:"type:text;not null" validate:"required,min=1"`
	Type     QuestionType `json:"type" gorm:"size:50;not null;index" validate:"required,question_type"`
	Position int          `json:"position" gorm:"not null;default:0"`

	// Metric assignment: explicit flags beat the semantic tag, which beats
	// topic inference over the question wording.
	NPSCalculate  bool        `json:"nps_calculate" gorm:"default:false"`
	CSATCalculate bool        `json:"csat_calculate" gorm:"default:false"`
	SemanticTag   SemanticTag `json:"semantic_tag" gorm:"size:30" validate:"omitempty,semantic_tag"`

	// Rating scale bounds. Nil means the default 0..5 scale.
	MinScale *int `json:"min_scale" validate:"omitempty,min=-100,max=100"`
	MaxScale *int `json:"max_scale" validate:"omitempty,min=-100,max=100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Options []QuestionOption `json:"options" gorm:"foreignKey:QuestionID"`
}

// ScaleBounds returns the effective rating scale, applying defaults for
// missing bounds.
func (q *Question) ScaleBounds() (minScale, maxScale int) {
	minScale, maxScale = DefaultMinScale, DefaultMaxScale
	if q.MinScale != nil {
		minScale = *q.MinScale
	}
	if q.MaxScale != nil {
		maxScale = *q.MaxScale
	}
	return minScale, maxScale
}

// HasValidScale reports whether the effective scale spans at least one step.
// Rating questions with a degenerate scale never carry a metric.
func (q *Question) HasValidScale() bool {
	minScale, maxScale := q.ScaleBounds()
	return minScale < maxScale
}

type QuestionOption struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	OptionText string    `json:"option_text" gorm:"type:text;not null" validate:"required,min=1"`
	Position   int       `json:"position" gorm:"not null;default:0"`

	// OptionHash is the SHA-256 of OptionText; answers reference options by
	// this hash so renamed options keep their satisfaction mapping history.
	OptionHash string `json:"option_hash" gorm:"size:64;index"`

	// SatisfactionValue maps the option onto the satisfied/neutral/
	// dissatisfied split. Nil options fall back to keyword classification.
	SatisfactionValue *int `json:"satisfaction_value" validate:"omitempty,min=0,max=2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave keeps OptionHash consistent with OptionText.
func (o *QuestionOption) BeforeSave(tx *gorm.DB) error {
	o.OptionHash = HashText(o.OptionText)
	return nil
}

type SurveyResponse struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	SurveyID    uuid.UUID  `json:"survey_id" gorm:"type:uuid;not null;index"`
	IsComplete  bool       `json:"is_complete" gorm:"default:false;index"`
	SubmittedAt *time.Time `json:"submitted_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Answers []Answer `json:"answers" gorm:"foreignKey:ResponseID"`
}

type Answer struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ResponseID uuid.UUID `json:"response_id" gorm:"type:uuid;not null;index"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`

	// Value holds the raw captured answer as JSON; free-form answers are a
	// JSON string, choice answers the chosen option text.
	Value datatypes.JSON `json:"value" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

// AnswerRecord is the flattened analytics view of one answer: the raw text
// plus the response metadata the time-based views need. Built by the
// repository layer; the engine never sees GORM rows.
type AnswerRecord struct {
	QuestionID  uuid.UUID  `json:"question_id"`
	Text        string     `json:"text"`
	SubmittedAt *time.Time `json:"submitted_at"`
	IsComplete  bool       `json:"is_complete"`
}

// HashText returns the hex-encoded SHA-256 of s, the content-hash convention
// used for option identity.
func HashText(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func (Survey) TableName() string         { return "surveys" }
func (Question) TableName() string       { return "questions" }
func (QuestionOption) TableName() string { return "question_options" }
func (SurveyResponse) TableName() string { return "survey_responses" }
func (Answer) TableName() string         { return "answers" }
