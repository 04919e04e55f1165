package services

import (
	"errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")

	// Survey specific errors
	ErrSurveyNotFound    = errors.New("survey not found")
	ErrSurveyNoQuestions = errors.New("survey has no questions")

	// Analytics specific errors
	ErrInvalidGroupBy  = errors.New("invalid tracking granularity")
	ErrInvalidDateSpan = errors.New("date_from must not be after date_to")
)
