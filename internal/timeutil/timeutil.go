package timeutil

import (
	"time"

	"foliot/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Full date-time layouts accepted by ParseStartingValue, in priority order.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"02.01.2006-15:04",
	"02.01.2006 15:04",
}

// Time-only layouts accepted as a fallback.
var timeOnlyLayouts = []string{
	"15:04",
	"15:04h",
	"1504",
	"1504h",
}

// Now returns the current local time rounded down to the whole minute.
// Every recorded clock boundary goes through this, so entries are always
// minute-aligned.
func Now() time.Time {
	return timeNow().Truncate(time.Minute)
}

// ParseStartingValue parses a user-supplied start time. It accepts a full
// date-time first, then a bare time of day. A bare time never refers to the
// future: it resolves to today when strictly before the current rounded
// time, otherwise to yesterday.
func ParseStartingValue(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := parseTimeOnly(s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewParseError(s, nil)
}

// parseTimeOnly resolves a bare time of day to today or yesterday.
func parseTimeOnly(s string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range timeOnlyLayouts {
		if parsed, err = time.Parse(layout, s); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, errors.NewParseError(s, err)
	}

	now := Now()
	candidate := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
	if !candidate.Before(now) {
		candidate = candidate.AddDate(0, 0, -1)
	}
	return candidate, nil
}

// DaysInMonth returns the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
