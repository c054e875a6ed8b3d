package shared

import (
	"strings"
	"time"

	"clickshr/internal/domain/apperr"
)

// Validator collects every issue in a payload so the caller can report all of
// them at once instead of stopping at the first.
type Validator struct {
	issues []apperr.Issue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]apperr.Issue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, apperr.Issue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, apperr.ReasonRequired)
	}
}

func (v *Validator) RequiredID(field string, value *int64) {
	if value == nil {
		v.Add(field, apperr.ReasonRequired)
		return
	}
	if *value <= 0 {
		v.Add(field, "must be a positive integer")
	}
}

func (v *Validator) NonNegative(field string, value *float64) {
	if value != nil && *value < 0 {
		v.Add(field, "must not be negative")
	}
}

// Date parses a required date. A blank value is reported as missing.
func (v *Validator) Date(field, raw string) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		v.Add(field, apperr.ReasonRequired)
		return time.Time{}, false
	}
	return v.parseDate(field, raw)
}

// OptionalDate parses a date only when one was supplied.
func (v *Validator) OptionalDate(field string, raw *string) *time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	parsed, ok := v.parseDate(field, *raw)
	if !ok {
		return nil
	}
	return &parsed
}

func (v *Validator) parseDate(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(raw)
	if err != nil || parsed.IsZero() {
		v.Add(field, "must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) DateOrder(startField string, start time.Time, endField string, end time.Time) {
	if start.IsZero() || end.IsZero() {
		return
	}
	if end.Before(start) {
		v.Add(endField, "must be on or after "+startField)
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []apperr.Issue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]apperr.Issue, len(v.issues))
	copy(out, v.issues)
	return out
}

// Err returns nil when the payload is clean.
func (v *Validator) Err() error {
	if !v.HasIssues() {
		return nil
	}
	return apperr.NewValidation(v.Issues()...)
}
