// Package inputval cleans user-supplied name strings before they are
// stored. Club and department names come straight from request bodies and
// end up rendered by several clients, so HTML is stripped outright.
package inputval

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict drops every HTML element and attribute.
var strict = bluemonday.StrictPolicy()

// CleanName strips HTML and trims surrounding whitespace. It does not
// change case: department and name matching is case-sensitive everywhere.
func CleanName(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// CleanNames applies CleanName to each element, preserving order.
// Empty results are kept; required-field checks happen at the handler.
func CleanNames(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = CleanName(s)
	}
	return out
}
