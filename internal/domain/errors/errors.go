package errors

import (
	"net/http"

	"estate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WithCause attaches the underlying fault to the error. The cause is kept for
// logging and errors.Is/As traversal but never shown to the client.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return e
	}

	return &causedError{BaseError: e, cause: errors.WithStack(cause)}
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// causedError pairs a predefined BaseError with the fault that produced it.
type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.BaseError.Error() + ": " + e.cause.Error()
}

// Unwrap exposes both the predefined error and its cause.
func (e *causedError) Unwrap() []error {
	return []error{e.BaseError, e.cause}
}

// Cause returns the underlying fault.
func (e *causedError) Cause() error {
	return e.cause
}

// Predefined error types
var (
	// Account errors
	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_IN_USE",
		"Email already in use",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Registration failed",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGIN_FAILED",
		"Login failed",
		"",
	)

	ErrUserLookupFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_LOOKUP_FAILED",
		"Failed to retrieve user",
		"",
	)

	// Token errors
	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Access token required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// Favorite errors
	ErrPropertyIDRequired = NewBaseError(
		http.StatusBadRequest,
		"PROPERTY_ID_REQUIRED",
		"property_id is required",
		"",
	)

	ErrPropertyNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPERTY_NOT_FOUND",
		"Property not found",
		"",
	)

	ErrFavoriteAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"FAVORITE_ALREADY_EXISTS",
		"Property already in favorites",
		"",
	)

	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		"",
	)

	ErrFavoritesFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"FAVORITES_FETCH_FAILED",
		"Failed to retrieve favorites",
		"",
	)

	ErrFavoriteAddFailed = NewBaseError(
		http.StatusInternalServerError,
		"FAVORITE_ADD_FAILED",
		"Failed to add favorite",
		"",
	)

	ErrFavoriteRemoveFailed = NewBaseError(
		http.StatusInternalServerError,
		"FAVORITE_REMOVE_FAILED",
		"Failed to remove favorite",
		"",
	)

	// Property errors
	ErrPropertyStillReferenced = NewBaseError(
		http.StatusConflict,
		"PROPERTY_STILL_REFERENCED",
		"Property is still in users' favorites",
		"",
	)

	ErrPropertyDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROPERTY_DELETE_FAILED",
		"Failed to delete property",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input data",
		"",
	)

	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST_BODY",
		"Invalid request body",
		"",
	)

	ErrInvalidPropertyID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PROPERTY_ID",
		"Invalid property ID",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many attempts, please try again later",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
