package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foliot/internal/domain"
	"foliot/internal/services"
)

func entry(t *testing.T, start, end, comment string) domain.Entry {
	t.Helper()
	s, err := time.ParseInLocation("2006-01-02T15:04", start, time.Local)
	require.NoError(t, err)
	e, err := time.ParseInLocation("2006-01-02T15:04", end, time.Local)
	require.NoError(t, err)
	return domain.NewEntry(s, e, comment)
}

func TestEntries(t *testing.T) {
	lines := Entries([]domain.Entry{
		entry(t, "2024-03-12T09:00", "2024-03-12T17:30", "regular day"),
		entry(t, "2024-03-13T10:00", "2024-03-13T10:45", ""),
	}, 0)

	require.Len(t, lines, 3)
	assert.Equal(t, "date        from   to     duration  comment", lines[0])
	assert.Contains(t, lines[1], "12.03.2024")
	assert.Contains(t, lines[1], "09:00")
	assert.Contains(t, lines[1], "17:30")
	assert.Contains(t, lines[1], "08:30h")
	assert.Contains(t, lines[1], "regular day")
	assert.Contains(t, lines[2], "00:45h")
}

func TestEntriesEmpty(t *testing.T) {
	lines := Entries(nil, 0)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "date")
}

func TestEntriesColumnsAligned(t *testing.T) {
	lines := Entries([]domain.Entry{
		entry(t, "2024-03-12T09:00", "2024-03-12T17:30", "short"),
		entry(t, "2024-03-13T10:00", "2024-03-13T10:45", "a rather longer comment"),
	}, 0)

	// All rows place the "from" column at the same offset.
	idx := strings.Index(lines[0], "from")
	require.Greater(t, idx, 0)
	assert.Equal(t, "09:00", lines[1][idx:idx+5])
	assert.Equal(t, "10:00", lines[2][idx:idx+5])
}

func TestEntriesWrapsComment(t *testing.T) {
	lines := Entries([]domain.Entry{
		entry(t, "2024-03-12T09:00", "2024-03-12T10:00",
			"one two three four five six seven"),
	}, 15)

	// Header plus the entry row plus at least one continuation row.
	require.Greater(t, len(lines), 2)
	assert.Contains(t, lines[1], "one two three")
	// Continuation rows carry only the comment remainder.
	assert.NotContains(t, lines[2], "12.03.2024")
	assert.Contains(t, lines[2], "four")
}

func TestSummaries(t *testing.T) {
	lines := Summaries([]services.MonthlySummary{
		{
			Month:         "2024/03 March",
			TotalDuration: domain.Duration{Hours: 42, Minutes: 30},
			Days:          5,
			HoursPerWeek:  9.6774,
			Entries:       7,
		},
	})

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "month")
	assert.Contains(t, lines[0], "hours/week")
	assert.Contains(t, lines[1], "2024/03 March")
	assert.Contains(t, lines[1], "42:30h")
	assert.Contains(t, lines[1], "9.68")
	assert.Contains(t, lines[1], "7")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"no wrap when zero width", "hello world", 0, []string{"hello world"}},
		{"fits", "hello", 10, []string{"hello"}},
		{"splits on spaces", "alpha beta gamma", 11, []string{"alpha beta", "gamma"}},
		{"empty", "", 5, []string{""}},
		{"single long word kept whole", "abcdefghij", 4, []string{"abcdefghij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
