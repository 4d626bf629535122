package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for transport mapping and retry decisions.
type ErrorKind string

const (
	KindConfig       ErrorKind = "config"
	KindValidation   ErrorKind = "validation"
	KindInvalidInput ErrorKind = "invalid_input"
	KindNotFound     ErrorKind = "not_found"
	KindEmptyResult  ErrorKind = "empty_result"
	KindRateLimit    ErrorKind = "rate_limit"
	KindConnection   ErrorKind = "connection"
	KindUpstream     ErrorKind = "upstream"
	KindConflict     ErrorKind = "conflict"
	KindUnauthorized ErrorKind = "unauthorized"
)

// Error is the domain error type carried across layers. The kind survives
// wrapping so callers can match with errors.As.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// NewConfigError reports a missing or invalid credential/configuration value.
func NewConfigError(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// NewValidationError reports invalid caller-supplied data.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewInvalidInputError reports a request the upstream provider deemed malformed.
func NewInvalidInputError(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// NewNotFoundError reports a missing resource, e.g. "Favorite" with its id.
func NewNotFoundError(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, id)}
}

// NewEmptyResultError reports a provider returning zero results for a search.
func NewEmptyResultError(message string) *Error {
	return &Error{Kind: KindEmptyResult, Message: message}
}

// NewRateLimitError reports an upstream HTTP 429.
func NewRateLimitError(message string) *Error {
	return &Error{Kind: KindRateLimit, Message: message}
}

// NewConnectionError reports a transport-level failure reaching an upstream.
func NewConnectionError(message string, cause error) *Error {
	return &Error{Kind: KindConnection, Message: message, cause: cause}
}

// NewUpstreamError reports an unexpected upstream status or response shape.
func NewUpstreamError(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, cause: cause}
}

// NewConflictError reports a uniqueness or concurrent-modification conflict.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewUnauthorizedError reports a missing or invalid identity.
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// KindOf extracts the error kind, or "" for non-domain errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsRetryable reports whether a failure is worth retrying with backoff.
// Rate limits and transport failures are transient; an unexpected upstream
// response is ambiguous and retried as well. Configuration, validation and
// no-result conditions are permanent for a given input. Unclassified errors
// are treated as transient.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindConfig, KindValidation, KindInvalidInput, KindNotFound, KindEmptyResult, KindConflict, KindUnauthorized:
		return false
	default:
		return true
	}
}
