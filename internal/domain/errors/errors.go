// Package errors defines the application error taxonomy. Every failure a
// handler can surface is an AppError carrying the HTTP status and the
// user-facing message; the HTTP error handler maps them onto the wire.
package errors

import (
	"net/http"

	"ladle/internal/errors"
)

// AppError is the contract between domain/usecase failures and the
// delivery layer.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // business error code
	Message() string   // user-facing message
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message.
func (e *BaseError) Message() string {
	return e.message
}

var (
	// Validation failures. Messages mirror what clients display verbatim.
	ErrUsernameRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_FIELD",
		"Username is required",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSING_FIELD",
		"Password is required",
	)

	ErrTitleRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_FIELD",
		"Title is required",
	)

	ErrInstructionsTooShort = NewBaseError(
		http.StatusUnprocessableEntity,
		"TOO_SHORT",
		"Instructions must be at least 50 characters long",
	)

	// Store constraint breaches, folded into the same 422 response shape
	// as validation failures.
	ErrUsernameTaken = NewBaseError(
		http.StatusUnprocessableEntity,
		"CONSTRAINT_VIOLATION",
		"Username already exists",
	)

	ErrRecipeOwnerMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"CONSTRAINT_VIOLATION",
		"Recipe owner does not exist",
	)

	// Session failures.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
	)

	// Login failure. One message for unknown username and wrong password so
	// the response never distinguishes the two.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Recipe not found",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Could not process password",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// DatabaseExecuteError wraps an unexpected database failure so it still
// satisfies AppError without leaking driver detail to the client.
type DatabaseExecuteError struct {
	err error
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error) AppError {
	return &DatabaseExecuteError{err: err}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message.
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}
