package sqlite

import (
	"regexp"
	"time"
)

// isoDateRE recognizes ISO-8601 date-time strings with seconds optional,
// fractional seconds optional, and either a 'Z' or a numeric UTC-offset
// suffix. Only string values already in this form are treated as dates;
// numeric epoch values are never coerced.
var isoDateRE = regexp.MustCompile(
	`(\d{4}-[01]\d-[0-3]\dT[0-2]\d:[0-5]\d:[0-5]\d\.\d+([+-][0-2]\d:[0-5]\d|Z))` +
		`|(\d{4}-[01]\d-[0-3]\dT[0-2]\d:[0-5]\d:[0-5]\d([+-][0-2]\d:[0-5]\d|Z))` +
		`|(\d{4}-[01]\d-[0-3]\dT[0-2]\d:[0-5]\d([+-][0-2]\d:[0-5]\d|Z))`)

var isoDateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
}

// parseISODate returns the parsed time and whether val is a date string.
func parseISODate(val any) (time.Time, bool) {
	s, ok := val.(string)
	if !ok || !isoDateRE.MatchString(s) {
		return time.Time{}, false
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isoString serializes a time the way the framework expects dates stored:
// millisecond precision, UTC, 'Z' suffix.
func isoString(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// ObjectFromRow converts a database row into a framework-facing object:
// every value in ISO-8601 date form becomes a time.Time, everything else
// passes through unchanged. An empty row yields nil, not an empty map.
func ObjectFromRow(row map[string]any) map[string]any {
	if len(row) == 0 {
		return nil
	}
	obj := make(map[string]any, len(row))
	for key, val := range row {
		if t, ok := parseISODate(val); ok {
			obj[key] = t
			continue
		}
		obj[key] = val
	}
	return obj
}

// InsertableFromObject is the inverse of ObjectFromRow: time.Time values
// become ISO-8601 strings, everything else passes through unchanged. An
// empty object yields nil.
func InsertableFromObject(obj map[string]any) map[string]any {
	if len(obj) == 0 {
		return nil
	}
	row := make(map[string]any, len(obj))
	for key, val := range obj {
		if t, ok := val.(time.Time); ok {
			row[key] = isoString(t)
			continue
		}
		row[key] = val
	}
	return row
}
