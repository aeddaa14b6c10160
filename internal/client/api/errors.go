package api

import (
	"errors"
	"fmt"
)

// Failure is an application-level rejection: the server answered 2xx but the
// payload signals a logical failure (missing id, success=false, embedded
// message). Message may be empty when the server supplied none; callers
// substitute their per-operation default.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return "request rejected"
	}
	return f.Message
}

// StatusError is a transport-level failure: the server answered outside 2xx.
// Message is best-effort parsed from the body's "message" field.
type StatusError struct {
	Code    int
	Message string
}

// Error carries the status code so diagnostic log lines stay useful even
// when Message fell back to the generic text.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
}

// IsFailure reports whether err is an application-level rejection. Anything
// else (non-2xx status, network, malformed body) is a transport failure and
// should additionally be recorded to the diagnostic log.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

// FailureMessage returns the server-supplied message carried by err, or def
// when err carries none.
func FailureMessage(err error, def string) string {
	var f *Failure
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	var s *StatusError
	if errors.As(err, &s) && s.Message != "" {
		return s.Message
	}
	if err != nil && err.Error() != "" && !IsFailure(err) {
		return err.Error()
	}
	return def
}
