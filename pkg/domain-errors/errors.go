// Package domainerrors defines coded domain errors shared across modules.
//
// Services return these so transport layers can translate them into HTTP
// responses without inspecting error strings. Infrastructure facts (not
// found, unavailable) live in pkg/platform/sentinel; this package covers
// validation failures and boundary conditions with user-meaningful codes.
package domainerrors

import "errors"

// Code identifies a class of domain error.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeNotFound           Code = "not_found"
	CodeUnauthorized       Code = "unauthorized"
	CodeTooManyRequests    Code = "too_many_requests"
	CodeUpstreamFailure    Code = "upstream_failure"
	CodeUnavailable        Code = "unavailable"
	CodeInvariantViolation Code = "invariant_violation"
	CodeInternal           Code = "internal_error"
)

// Error is a domain error with a stable code and human-readable description.
type Error struct {
	Code        Code
	Description string
	wrapped     error
}

// New constructs a domain error with the given code and description.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Wrap constructs a domain error that carries an underlying cause.
func Wrap(code Code, description string, err error) *Error {
	return &Error{Code: code, Description: description, wrapped: err}
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return string(e.Code) + ": " + e.Description + ": " + e.wrapped.Error()
	}
	return string(e.Code) + ": " + e.Description
}

func (e *Error) Unwrap() error { return e.wrapped }

// CodeOf extracts the domain error code, defaulting to CodeInternal for
// unclassified errors so internal details never leak to clients.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// DescriptionOf returns the user-facing description for classified errors
// and an empty string otherwise.
func DescriptionOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Description
	}
	return ""
}
