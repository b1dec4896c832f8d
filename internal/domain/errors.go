package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
//
// ErrInvalidReference is raised by repositories; services translate it into
// ErrBadInput before it reaches a caller. ErrStorageFailure covers every
// other store failure, including connectivity and an open circuit breaker.
var (
	ErrStorageFailure   = errors.New("storage failure")
	ErrInvalidReference = errors.New("invalid reference")
	ErrBadInput         = errors.New("bad input")
	ErrAccessDenied     = errors.New("access denied")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrBadInput) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrBadInput.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrBadInput
}
