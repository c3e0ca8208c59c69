// Package errors provides structured error types for the Kharcha API.
// Service-layer code returns *AppError so handlers can render consistent
// JSON responses without leaking internal details to the client.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Document and import errors.
var (
	ErrParse = &AppError{Code: "PARSE_ERROR", Message: "Could not parse data", StatusCode: http.StatusBadRequest}
)

// Entry and category errors.
var (
	ErrEntryNotFound    = &AppError{Code: "ENTRY_NOT_FOUND", Message: "Entry not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Backup errors.
var (
	ErrPermissionRevoked = &AppError{Code: "PERMISSION_REVOKED", Message: "Write access to the backup file was lost, reconnect it", StatusCode: http.StatusConflict}
	ErrBackupNotSet      = &AppError{Code: "BACKUP_NOT_SET", Message: "No backup file connected", StatusCode: http.StatusConflict}
	ErrCancelled         = &AppError{Code: "CANCELLED", Message: "Cancelled", StatusCode: http.StatusBadRequest}
	ErrUnsupported       = &AppError{Code: "UNSUPPORTED", Message: "This feature is not available on this device", StatusCode: http.StatusNotImplemented}
)

// App-lock errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Unlock required", StatusCode: http.StatusUnauthorized}
	ErrWrongPIN     = &AppError{Code: "WRONG_PIN", Message: "Wrong PIN", StatusCode: http.StatusUnauthorized}
	ErrPINNotSet    = &AppError{Code: "PIN_NOT_SET", Message: "No PIN has been set", StatusCode: http.StatusConflict}
	ErrNoCredential = &AppError{Code: "NO_CREDENTIAL", Message: "No biometric credential registered", StatusCode: http.StatusConflict}
)
