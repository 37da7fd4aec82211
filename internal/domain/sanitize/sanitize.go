// Package sanitize cleans raw tabular values before any numeric
// interpretation. It runs per-cell over the whole table during ingestion.
package sanitize

import (
	"regexp"
	"strings"
)

// formulaPrefixes are the leading characters that turn a cell into a live
// formula when the exported table is reopened in spreadsheet software.
const formulaPrefixes = "=+-@"

// groupedNumber matches thousands-grouped decimals such as "1,234" or
// "12,345.67": digit groups of one to three separated by commas, with an
// optional fraction.
var groupedNumber = regexp.MustCompile(`^\d{1,3}(?:,\d{1,3})+(?:\.\d+)?$`)

// Cell neutralizes formula injection and normalizes grouped decimals.
// A leading formula prefix is stripped (one character); independently, a
// value matching the grouped-decimal pattern has its commas removed so
// downstream numeric parsing succeeds. Anything else passes through
// unchanged.
func Cell(v string) string {
	if v != "" && strings.ContainsRune(formulaPrefixes, rune(v[0])) {
		v = v[1:]
	}
	if groupedNumber.MatchString(v) {
		v = strings.ReplaceAll(v, ",", "")
	}
	return v
}

// Header trims surrounding whitespace from a column header key.
func Header(k string) string {
	return strings.TrimSpace(k)
}

// Row returns a copy of cells with every cell cleaned.
func Row(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = Cell(c)
	}
	return out
}
