// Package errors provides application-level error types and utilities.
// It defines the error taxonomy shared by every handler and use case:
// duplicate request, not found, unauthorized, quota exceeded, invalid state,
// empty submission, partial upload and transient collaborator failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation_error"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeDuplicateRequest ErrorType = "duplicate_request"
	ErrorTypeUnauthorized     ErrorType = "unauthorized"
	ErrorTypeForbidden        ErrorType = "forbidden"
	ErrorTypeQuotaExceeded    ErrorType = "quota_exceeded"
	ErrorTypeInvalidState     ErrorType = "invalid_state"
	ErrorTypeEmptySubmission  ErrorType = "empty_submission"
	ErrorTypePartialUpload    ErrorType = "partial_upload"
	ErrorTypeTransient        ErrorType = "transient"
	ErrorTypeInternal         ErrorType = "internal_error"
	ErrorTypeBadRequest       ErrorType = "bad_request"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewDuplicateRequestError creates an error for a beta request whose
// normalized email already exists. Callers render this as "you're already
// on the list", never as a generic failure.
func NewDuplicateRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeDuplicateRequest, http.StatusConflict, message, details...)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details...)
}

// NewForbiddenError creates an ownership-mismatch error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details...)
}

// NewQuotaExceededError creates an error for an account at its circle cap
func NewQuotaExceededError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeQuotaExceeded, http.StatusConflict, message, details...)
}

// NewInvalidStateError creates an error for an operation applied to an
// entity whose lifecycle state does not permit it.
func NewInvalidStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidState, http.StatusConflict, message, details...)
}

// NewEmptySubmissionError creates an error for feedback with no signal fields
func NewEmptySubmissionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeEmptySubmission, http.StatusBadRequest, message, details...)
}

// NewPartialUploadError creates an error for metadata registration that
// failed after the blob write succeeded. Callers own the orphaned blob and
// may retry-register against the same path.
func NewPartialUploadError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePartialUpload, http.StatusBadGateway, message, details...)
}

// NewTransientError creates an error for storage or collaborator failures
// that the caller may retry.
func NewTransientError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTransient, http.StatusServiceUnavailable, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsDuplicateRequestError checks if the error is a duplicate request error
func IsDuplicateRequestError(err error) bool {
	return isType(err, ErrorTypeDuplicateRequest)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsForbiddenError checks if the error is an ownership-mismatch error
func IsForbiddenError(err error) bool {
	return isType(err, ErrorTypeForbidden)
}

// IsQuotaExceededError checks if the error is a quota exceeded error
func IsQuotaExceededError(err error) bool {
	return isType(err, ErrorTypeQuotaExceeded)
}

// IsInvalidStateError checks if the error is an invalid state error
func IsInvalidStateError(err error) bool {
	return isType(err, ErrorTypeInvalidState)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsTransientError checks if the error is a transient collaborator error
func IsTransientError(err error) bool {
	return isType(err, ErrorTypeTransient)
}

// IsDuplicateKeyError checks if the error is a database duplicate key error
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique violation (test store)
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return false
}
