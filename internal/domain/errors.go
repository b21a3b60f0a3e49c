package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Components return these (or
// wrap them); only the HTTP boundary maps them to status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("authentication failed")
	ErrBadCredentials  = errors.New("bad credentials")
	ErrConflict        = errors.New("conflict")
	ErrRateLimited     = errors.New("too many requests")
	ErrInternal        = errors.New("internal error")
)

// Token verification failures, distinct so the resolver can keep a
// malformed credential from degrading into anonymous access.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrSubjectUnknown = errors.New("token subject unknown")
)

// FieldError is a single validation finding. Field is empty for global
// findings.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the ordered findings of a failed validation
// pass.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "validation failed"
	}
	first := e.Errors[0]
	if first.Field == "" {
		return fmt.Sprintf("validation failed: %s", first.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s", first.Field, first.Message)
}

func NewValidationError(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
