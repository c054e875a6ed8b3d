// Package apperr classifies the failures a resource handler may report.
// Anything that is not one of these kinds is treated as a transport failure.
package apperr

import (
	"errors"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrDuplicate = errors.New("duplicate")
)

// Error carries a client-facing message for one of the sentinel kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func Duplicate(message string) error {
	return &Error{Kind: ErrDuplicate, Message: message}
}

const ReasonRequired = "is required"

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every offending field, in the order they were checked.
type ValidationError struct {
	Issues []Issue
}

func NewValidation(issues ...Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

func Invalid(field, reason string) *ValidationError {
	return NewValidation(Issue{Field: field, Reason: reason})
}

func (e *ValidationError) Missing() []string {
	var out []string
	for _, issue := range e.Issues {
		if issue.Reason == ReasonRequired {
			out = append(out, issue.Field)
		}
	}
	return out
}

func (e *ValidationError) Error() string {
	var parts []string
	if missing := e.Missing(); len(missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
	}
	for _, issue := range e.Issues {
		if issue.Reason == ReasonRequired {
			continue
		}
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	if len(parts) == 0 {
		return "payload validation failed"
	}
	return strings.Join(parts, "; ")
}
