package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that knows its HTTP status. Cause is never serialized.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Cause   error        `json:"-"`
}

// FieldError names the request field (or gate condition) that failed.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

var (
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrAccountDisabled    = &AppError{Code: http.StatusForbidden, Message: "Account disabled"}
)

func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: "Validation failed", Errors: fieldErrors}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found"}
}

// NewConflictError is returned when the stored state moved under the caller.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewUnprocessableError is for well formed requests that break a business
// rule. fieldErrors may be empty.
func NewUnprocessableError(message string, fieldErrors ...FieldError) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Errors: fieldErrors}
}

// NewBadGatewayError reports a failing collaborator such as evidence storage.
// The caller sees the collaborator's message.
func NewBadGatewayError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message + ": " + cause.Error(), Cause: cause}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError in err's chain. Anything else becomes a
// 500 whose message does not expose err.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: http.StatusInternalServerError, Message: "Internal server error", Cause: err}
}
