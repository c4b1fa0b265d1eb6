package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Duration(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	entry := NewEntry(start, start.Add(8*time.Hour+30*time.Minute), "worked")

	assert.Equal(t, Duration{Hours: 8, Minutes: 30}, entry.Duration())
}

func TestEntry_Less(t *testing.T) {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		a        Entry
		b        Entry
		expected bool
	}{
		{
			name:     "earlier start wins",
			a:        NewEntry(base, base.Add(time.Hour), ""),
			b:        NewEntry(base.Add(time.Minute), base.Add(time.Hour), ""),
			expected: true,
		},
		{
			name:     "same start falls back to end",
			a:        NewEntry(base, base.Add(time.Hour), ""),
			b:        NewEntry(base, base.Add(2*time.Hour), ""),
			expected: true,
		},
		{
			name:     "same interval falls back to comment",
			a:        NewEntry(base, base.Add(time.Hour), "alpha"),
			b:        NewEntry(base, base.Add(time.Hour), "beta"),
			expected: true,
		},
		{
			name:     "identical entries are not less",
			a:        NewEntry(base, base.Add(time.Hour), "same"),
			b:        NewEntry(base, base.Add(time.Hour), "same"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Less(tt.b))
		})
	}
}

func TestSortByStart(t *testing.T) {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	entries := []Entry{
		NewEntry(base.Add(4*time.Hour), base.Add(5*time.Hour), "third"),
		NewEntry(base, base.Add(time.Hour), "first"),
		NewEntry(base.Add(2*time.Hour), base.Add(3*time.Hour), "second"),
	}

	SortByStart(entries)

	assert.Equal(t, "first", entries[0].Comment)
	assert.Equal(t, "second", entries[1].Comment)
	assert.Equal(t, "third", entries[2].Comment)
}

func TestMarker_Elapsed(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	marker := NewMarker(start)

	elapsed := marker.Elapsed(start.Add(2*time.Hour + 15*time.Minute))

	assert.Equal(t, Duration{Hours: 2, Minutes: 15}, elapsed)
}
