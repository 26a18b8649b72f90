// internal/app/system/normalize/normalize.go
//
// Package normalize applies the canonical trimming and case rules for
// stored fields. Stores call these on every write so callers never have
// to pre-clean input.
package normalize

import "strings"

// Email trims whitespace and lowercases. Emails are stored and looked up
// lowercase, so GET /api/team/status/X@Y.com matches x@y.com.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// RollNumber trims whitespace and uppercases.
func RollNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Status trims whitespace and lowercases. Used for the lowercase status
// enums (application status, message status, member type, priority).
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims whitespace. Case is preserved.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// StringSlice trims every element and drops empties, preserving order.
// Returns nil when nothing survives so omitted and empty lists look alike.
func StringSlice(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
