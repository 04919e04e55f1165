package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

// Validator wraps the struct validator with all custom rules registered.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the shared validator instance.
func NewValidator() *Validator {
	validate := validator.New()
	RegisterCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate validates struct tags on s.
func (v *Validator) Validate(s interface{}) error {
	return v.validate.Struct(s)
}

// Engine exposes the underlying validator for handler-level bindings.
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// Custom validation functions

func ValidateQuestionType(fl validator.FieldLevel) bool {
	value := models.QuestionType(fl.Field().String())
	return value.Canonical() != models.QuestionTypeUnknown
}

func ValidateSemanticTag(fl validator.FieldLevel) bool {
	validTags := []models.SemanticTag{
		models.SemanticTagNPS,
		models.SemanticTagCSAT,
		models.SemanticTagNone,
	}

	value := fl.Field().String()
	for _, validTag := range validTags {
		if string(validTag) == value {
			return true
		}
	}
	return false
}

func ValidateGroupBy(fl validator.FieldLevel) bool {
	validGroups := []models.GroupBy{
		models.GroupByDay,
		models.GroupByWeek,
		models.GroupByMonth,
	}

	value := fl.Field().String()
	for _, validGroup := range validGroups {
		if string(validGroup) == value {
			return true
		}
	}
	return false
}

// RegisterCustomValidators registers all custom validators
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", ValidateQuestionType)
	validate.RegisterValidation("semantic_tag", ValidateSemanticTag)
	validate.RegisterValidation("group_by", ValidateGroupBy)

	// Register custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
