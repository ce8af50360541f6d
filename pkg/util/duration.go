package util

import (
	"time"

	iso8601 "github.com/senseyeio/duration"
)

var durationReference = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseISO8601Duration converts an ISO-8601 duration such as "PT2M" into a time.Duration.
// Calendar components are measured from a fixed reference date.
func ParseISO8601Duration(value string) (time.Duration, error) {
	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	return parsed.Shift(durationReference).Sub(durationReference), nil
}
