// internal/common/errors/handler.go
package errors

import (
	"errors"
	"net/http"
	"time"
)

// ErrorHandler normalizes application errors and maps them to HTTP responses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// ErrorResponse is the JSON body returned for failed API requests.
type ErrorResponse struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
}

// HandleRequestError normalizes err and returns the HTTP status plus response body.
func (h *ErrorHandler) HandleRequestError(err error) (int, *ErrorResponse) {
	stdErr := h.normalizeError(err)

	h.logger.Error("request failed", map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})

	return StatusForCode(stdErr.Code), &ErrorResponse{
		Code:      stdErr.Code,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
	}
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// StatusForCode maps internal error codes to HTTP status codes.
func StatusForCode(code ErrorCode) int {
	switch code {
	case ErrCodeSessionNotFound, ErrCodeCatalogNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidAnswer, ErrCodePromptRequired, ErrCodeCatalogInvalid:
		return http.StatusBadRequest
	case ErrCodeGenerationInFlight, ErrCodeAnswerPending, ErrCodeCannotGoBack,
		ErrCodeInterviewComplete, ErrCodeInterviewIncomplete:
		return http.StatusConflict
	case ErrCodeGenerationTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeGenerationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
