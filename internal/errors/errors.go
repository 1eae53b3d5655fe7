package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTaskNotFound is returned when a task is missing or not owned by the caller.
	ErrTaskNotFound = errors.New("task not found")
	// ErrExpenseNotFound is returned when an expense is missing or not owned by the caller.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrCurrencyExists is returned when creating a currency code that already exists.
	ErrCurrencyExists = errors.New("currency already exists")
	// ErrUnknownCurrency is returned when an expense references a currency that is not registered.
	ErrUnknownCurrency = errors.New("unknown currency code")
	// ErrPasswordTooShort is returned when a signup password is below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Ownership mismatches come
// through as the same not-found errors as genuinely missing rows, so nothing
// here leaks existence of another user's data.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrTaskNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case ErrExpenseNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EXPENSE_NOT_FOUND")
	case ErrCurrencyExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "CURRENCY_EXISTS")
	case ErrUnknownCurrency:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "UNKNOWN_CURRENCY")
	case ErrPasswordTooShort:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "PASSWORD_TOO_SHORT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
