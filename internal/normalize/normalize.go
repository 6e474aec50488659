package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// upstreamDateLayout is the fixed timestamp format the reactor listing uses,
// e.g. "1968-06-01T00:00:00". Only the date part is meaningful.
const upstreamDateLayout = "2006-01-02T15:04:05"

// ParseDate converts an upstream timestamp string into a pure date.
// Blank or malformed input resolves to nil, never an error.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parsed, err := time.Parse(upstreamDateLayout, raw)
	if err != nil {
		// Some records carry a bare date without the time part.
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil
		}
	}

	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &date
}

// ParseFloat converts an upstream numeric value into a nullable float.
// The listing endpoint is inconsistent about whether capacities arrive as
// JSON numbers or quoted strings, so both are accepted.
func ParseFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	trimmed = strings.Trim(trimmed, `"`)
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}

	return &value
}

// String returns a pointer to s, or nil when s is blank.
func String(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Float returns a pointer to v. Convenience for literals in tests and fixtures.
func Float(v float64) *float64 {
	return &v
}
