// =============================================================================
// CSV to NDO Converter - Field Parsers
// =============================================================================
//
// This package contains the scalar field parsers applied to individual CSV
// cell values before they are placed into the NDO data model.
//
// =============================================================================

package fields

import "strings"

// truthy is the set of accepted true tokens for boolean columns.
// Anything outside this set parses as false; there is no error case.
var truthy = map[string]bool{
	"true": true,
	"yes":  true,
	"1":    true,
}

// ParseBool parses a boolean CSV cell.
//
// The comparison is case-insensitive: "true", "yes" and "1" (in any casing)
// yield true. Every other value, including "false", "no", "0" and the empty
// string, yields false.
func ParseBool(value string) bool {
	return truthy[strings.ToLower(value)]
}

// ParseList splits a comma-separated CSV cell into a list of trimmed tokens.
//
// A blank or all-whitespace cell returns an empty list. Otherwise the cell is
// split on commas and each token is trimmed; empty tokens are kept, so a
// trailing comma yields a trailing empty-string element. Downstream tooling
// relies on that literal behavior, so it is not filtered here.
func ParseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	items := make([]string, len(parts))
	for i, part := range parts {
		items[i] = strings.TrimSpace(part)
	}
	return items
}
