package domain

import (
	"fmt"
	"time"
)

// Duration is an elapsed time with minute granularity.
// Minutes are kept in [0,60) after any addition; hours carry the overflow
// and are never capped.
type Duration struct {
	Hours   int64
	Minutes int64
}

// ZeroDuration returns the additive identity.
func ZeroDuration() Duration {
	return Duration{Hours: 0, Minutes: 0}
}

// DurationFromSpan converts the span between two instants to a Duration.
// Both components truncate toward zero and follow the sign of the span,
// so start > end yields a negative Duration.
func DurationFromSpan(start, end time.Time) Duration {
	span := end.Sub(start)
	total := int64(span / time.Minute)
	return Duration{
		Hours:   total / 60,
		Minutes: total % 60,
	}
}

// Add returns the sum of two Durations with minute overflow carried into hours.
func (d Duration) Add(other Duration) Duration {
	addedMinutes := d.Minutes + other.Minutes
	return Duration{
		Hours:   d.Hours + other.Hours + addedMinutes/60,
		Minutes: addedMinutes % 60,
	}
}

// IsZero returns true for the additive identity.
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0
}

// String formats the duration as zero-padded "HH:MMh".
// Hours grow past two digits without truncation.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02dh", d.Hours, d.Minutes)
}
