package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error the HTTP layer can render with its own status and code.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the AppError behind every predefined business error.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage adds context while keeping errors.Is and errors.As working.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business error code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Business errors surfaced by the catalog, search and itinerary services.
var (
	ErrValidationFailed    = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")
	ErrPlaceNotFound       = NewBaseError(http.StatusNotFound, "PLACE_NOT_FOUND", "Place not found", "")
	ErrHillStationNotFound = NewBaseError(http.StatusNotFound, "HILL_STATION_NOT_FOUND", "Hill station not found", "")
	// Another user's plan answers the same as a missing one
	ErrPlanNotFound  = NewBaseError(http.StatusNotFound, "PLAN_NOT_FOUND", "Travel plan not found", "")
	ErrDraftNotFound = NewBaseError(http.StatusNotFound, "DRAFT_NOT_FOUND", "No generated plan to save, generate a new one", "")
)

// DatabaseExecuteError reports a failed statement as a 500 without exposing driver text.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
