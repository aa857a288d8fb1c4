package answer

import (
	"errors"
	"strings"
)

// Kind is the coarse failure category shown to the user.
type Kind string

const (
	KindNone              Kind = ""
	KindValidation        Kind = "validation"
	KindClientUnavailable Kind = "client_unavailable"
	KindRequestFailed     Kind = "request_failed"
)

// ErrEmptyQuestion is returned for an empty or whitespace-only question.
var ErrEmptyQuestion = errors.New("question is empty")

// Error carries the failure kind and the original cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies err; nil yields KindNone and unclassified errors count as request failures.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrEmptyQuestion) {
		return KindValidation
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRequestFailed
}

// IsBlank reports whether question has no non-space characters.
func IsBlank(question string) bool { return strings.TrimSpace(question) == "" }
