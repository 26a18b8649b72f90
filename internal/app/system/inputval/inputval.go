// internal/app/system/inputval/inputval.go
//
// Package inputval implements the per-route validation checks: required
// fields, email format, enum membership, length limits, and numeric ranges.
//
// Validation stops at the first failing check, so every 400 response names
// exactly one field. This mirrors the submission forms the API serves and
// keeps messages short; callers that need all failures at once would batch
// calls themselves.
package inputval

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRe is a deliberately simple local@domain.tld shape check, not a full
// RFC 5322 parser.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error is a validation failure naming the offending field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Failf builds a validation Error for a field.
func Failf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required fails when the value is empty after trimming.
func Required(field, value string) *Error {
	if strings.TrimSpace(value) == "" {
		return Failf(field, "%s is required", field)
	}
	return nil
}

// RequiredSlice fails when the list has no non-blank entries.
func RequiredSlice(field string, values []string) *Error {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return Failf(field, "%s must have at least one entry", field)
}

// Email fails when the value does not look like local@domain.tld.
func Email(field, value string) *Error {
	if !emailRe.MatchString(strings.TrimSpace(value)) {
		return Failf(field, "%s must be a valid email address", field)
	}
	return nil
}

// OneOf fails when the value is not in the allowed set. Matching is exact:
// callers normalize case first where the enum is lowercase.
func OneOf(field, value string, allowed []string) *Error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return Failf(field, "%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// MaxLen fails when the value exceeds max characters. Length is counted in
// runes so multi-byte input is not penalized.
func MaxLen(field, value string, max int) *Error {
	if len([]rune(value)) > max {
		return Failf(field, "%s must be at most %d characters", field, max)
	}
	return nil
}

// IntRange fails when the value is outside [min, max].
func IntRange(field string, value, min, max int) *Error {
	if value < min || value > max {
		return Failf(field, "%s must be between %d and %d", field, min, max)
	}
	return nil
}

// First returns the first non-nil error, letting handlers list their checks
// in declaration order.
func First(errs ...*Error) *Error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
