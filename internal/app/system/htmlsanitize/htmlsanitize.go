// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips markup from user-submitted text. Every
// free-text field in the API (bios, motivation answers, contact messages)
// is stored as plain text, so the strict policy removes all tags rather
// than allowlisting a safe subset.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Plain removes all HTML tags and trims the result.
func Plain(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// PlainSlice applies Plain to every element in place and returns the slice.
func PlainSlice(in []string) []string {
	for i, s := range in {
		in[i] = Plain(s)
	}
	return in
}
