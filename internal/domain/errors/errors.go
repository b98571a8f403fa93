package errors

import (
	"net/http"
	"strings"

	"mallconsole/internal/errors"
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

// Is matches any BaseError carrying the same business error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error with a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Only administrators can change the directory",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error occurred. Please try again.",
		"",
	)
)

// NewValidationError returns a validation failure carrying message.
func NewValidationError(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// NewNotFoundError returns a not-found failure for the named resource.
func NewNotFoundError(resource string) *BaseError {
	return ErrNotFound.WithMessage(resource + " not found")
}

// AuthReason classifies identity provider rejections.
type AuthReason string

const (
	AuthReasonUnknownAccount   AuthReason = "unknown_account"
	AuthReasonWrongCredential  AuthReason = "wrong_credential"
	AuthReasonDuplicateAccount AuthReason = "duplicate_account"
	AuthReasonWeakCredential   AuthReason = "weak_credential"
	AuthReasonMalformedEmail   AuthReason = "malformed_email"
	AuthReasonNetwork          AuthReason = "network"
	AuthReasonOther            AuthReason = "other"
)

const defaultAuthMessage = "An error occurred. Please try again."

// AuthError is returned when the identity provider rejects an operation.
type AuthError struct {
	Reason          AuthReason
	providerMessage string
	cause           error
}

// NewAuthError creates an AuthError. providerMessage is only shown for AuthReasonOther.
func NewAuthError(reason AuthReason, providerMessage string, cause error) *AuthError {
	return &AuthError{
		Reason:          reason,
		providerMessage: providerMessage,
		cause:           cause,
	}
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Message()
}

// Unwrap exposes the provider error.
func (e *AuthError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code
func (e *AuthError) HTTPCode() int {
	switch e.Reason {
	case AuthReasonDuplicateAccount:
		return http.StatusConflict
	case AuthReasonWeakCredential, AuthReasonMalformedEmail:
		return http.StatusBadRequest
	case AuthReasonNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnauthorized
	}
}

// ErrorCode returns the business error code
func (e *AuthError) ErrorCode() string {
	return "AUTH_" + strings.ToUpper(string(e.Reason))
}

// Message returns the user-friendly error message
func (e *AuthError) Message() string {
	switch e.Reason {
	case AuthReasonUnknownAccount:
		return "No account found with this email."
	case AuthReasonWrongCredential:
		return "Incorrect password."
	case AuthReasonDuplicateAccount:
		return "Email is already registered."
	case AuthReasonWeakCredential:
		return "Password should be at least 6 characters."
	case AuthReasonMalformedEmail:
		return "Invalid email address."
	case AuthReasonNetwork:
		return "Network error. Please check your connection."
	default:
		if e.providerMessage != "" {
			return e.providerMessage
		}

		return defaultAuthMessage
	}
}

// Details returns detailed error information
func (e *AuthError) Details() string {
	return e.providerMessage
}

// RemoteError represents any document store or provider failure. Its message
// is the underlying error text, passed through unchanged.
type RemoteError struct {
	err error
}

// NewRemoteError wraps a store or provider failure.
func NewRemoteError(err error) *RemoteError {
	return &RemoteError{err: err}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return e.Message()
}

// Unwrap exposes the underlying failure.
func (e *RemoteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *RemoteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return "REMOTE_ERROR"
}

// Message returns the user-friendly error message
func (e *RemoteError) Message() string {
	if e.err == nil {
		return defaultAuthMessage
	}

	return e.err.Error()
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	return ""
}

// UserMessage extracts the text to show a user for any error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

// HTTPStatus returns the status code carried by an AppError, or 500.
func HTTPStatus(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
