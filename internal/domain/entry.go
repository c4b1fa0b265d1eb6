package domain

import (
	"sort"
	"time"
)

// Entry is an immutable record of one completed work interval.
// Entries are only ever created by clocking out or by clocking an arbitrary
// span; edits happen out of band through the external editor.
type Entry struct {
	StartTime time.Time `yaml:"start_time"`
	EndTime   time.Time `yaml:"end_time"`
	Comment   string    `yaml:"comment,omitempty"`
}

// NewEntry creates an entry for the given interval.
func NewEntry(start, end time.Time, comment string) Entry {
	return Entry{
		StartTime: start,
		EndTime:   end,
		Comment:   comment,
	}
}

// Duration returns the elapsed time of the entry.
func (e Entry) Duration() Duration {
	return DurationFromSpan(e.StartTime, e.EndTime)
}

// Less orders entries by (start, end, comment), which keeps display output
// stable when several entries share a start time.
func (e Entry) Less(other Entry) bool {
	if !e.StartTime.Equal(other.StartTime) {
		return e.StartTime.Before(other.StartTime)
	}
	if !e.EndTime.Equal(other.EndTime) {
		return e.EndTime.Before(other.EndTime)
	}
	return e.Comment < other.Comment
}

// SortByStart sorts entries chronologically in place. The sort is stable so
// that aggregation and display see a deterministic order within each day.
func SortByStart(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Less(entries[j])
	})
}
