// Package errors provides standardized error handling for the zone platform services.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeGenerationFailed   ErrorCode = "GENERATION_FAILED"
	ErrCodeGenerationTimeout  ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeGenerationInFlight ErrorCode = "GENERATION_IN_FLIGHT"

	ErrCodeTranscriptLoadFailed ErrorCode = "TRANSCRIPT_LOAD_FAILED"
	ErrCodeStateWriteFailed     ErrorCode = "STATE_WRITE_FAILED"

	ErrCodeCatalogInvalid  ErrorCode = "CATALOG_INVALID"
	ErrCodeCatalogNotFound ErrorCode = "CATALOG_NOT_FOUND"

	ErrCodeSessionNotFound     ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeInvalidAnswer       ErrorCode = "INVALID_ANSWER"
	ErrCodeInterviewComplete   ErrorCode = "INTERVIEW_COMPLETE"
	ErrCodeInterviewIncomplete ErrorCode = "INTERVIEW_INCOMPLETE"
	ErrCodeAnswerPending       ErrorCode = "ANSWER_PENDING"
	ErrCodeCannotGoBack        ErrorCode = "CANNOT_GO_BACK"

	ErrCodePromptRequired ErrorCode = "PROMPT_REQUIRED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewGenerationFailedError creates a retryable gateway error.
func NewGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationFailed,
		Message:   "Text generation request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationTimeoutError creates a retryable gateway timeout error.
func NewGenerationTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationTimeout,
		Message:   "Text generation request timed out",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationInFlightError creates a non-retryable concurrency error: a
// second send while one is pending is rejected, not queued.
func NewGenerationInFlightError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationInFlight,
		Message:   "A generation request is already in flight for this session",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTranscriptLoadFailedError creates a retryable store error.
func NewTranscriptLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTranscriptLoadFailed,
		Message:   "Failed to load persisted chat state",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStateWriteFailedError creates a retryable store error.
func NewStateWriteFailedError(slice string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStateWriteFailed,
		Message:   "Failed to persist chat state",
		Details:   fmt.Sprintf("slice: %s, error: %s", slice, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogInvalidError creates a non-retryable catalog validation error.
func NewCatalogInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Question bank registry failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable lookup error.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Interview session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidAnswerError creates a non-retryable answer validation error.
func NewInvalidAnswerError(optionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAnswer,
		Message:   "Option does not belong to the current question",
		Details:   fmt.Sprintf("optionId: %s", optionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInterviewCompleteError creates a non-retryable state error.
func NewInterviewCompleteError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInterviewComplete,
		Message:   "Interview has already reached the results screen",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInterviewIncompleteError creates a non-retryable state error.
func NewInterviewIncompleteError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInterviewIncomplete,
		Message:   "Results are not available until all questions are answered",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAnswerPendingError creates a non-retryable double-select error.
func NewAnswerPendingError() *StandardError {
	return &StandardError{
		Code:      ErrCodeAnswerPending,
		Message:   "An answer is already pending for the current question",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCannotGoBackError creates a non-retryable navigation error.
func NewCannotGoBackError() *StandardError {
	return &StandardError{
		Code:      ErrCodeCannotGoBack,
		Message:   "Already at the first question",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPromptRequiredError creates a non-retryable request validation error.
func NewPromptRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodePromptRequired,
		Message:   "Prompt is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
