package domain

import "time"

// Marker records a currently running, not yet finalized clock.
// At most one marker exists per namespace.
type Marker struct {
	StartTime time.Time `yaml:"start_time"`
}

// NewMarker creates a marker starting at the given instant.
func NewMarker(start time.Time) Marker {
	return Marker{StartTime: start}
}

// Elapsed returns how long the clock has been running as of now.
func (m Marker) Elapsed(now time.Time) Duration {
	return DurationFromSpan(m.StartTime, now)
}
