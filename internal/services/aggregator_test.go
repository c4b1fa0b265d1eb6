package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foliot/internal/domain"
)

// workday builds an entry of the given length starting at 09:00 on a day in
// the given month.
func workday(year int, month time.Month, day int, hours, minutes int) domain.Entry {
	start := time.Date(year, month, day, 9, 0, 0, 0, time.Local)
	span := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	return domain.NewEntry(start, start.Add(span), "")
}

func TestSummarizeByMonth_Empty(t *testing.T) {
	agg := NewAggregator()

	assert.Empty(t, agg.SummarizeByMonth(nil))
}

func TestSummarizeByMonth_SingleMonth(t *testing.T) {
	agg := NewAggregator()
	entries := []domain.Entry{
		workday(2024, time.January, 10, 8, 0),
		workday(2024, time.January, 11, 4, 30),
	}

	summaries := agg.SummarizeByMonth(entries)

	require.Len(t, summaries, 1)
	assert.Equal(t, "2024/01 January", summaries[0].Month)
	assert.Equal(t, domain.Duration{Hours: 12, Minutes: 30}, summaries[0].TotalDuration)
	assert.Equal(t, 2, summaries[0].Days)
	assert.Equal(t, 2, summaries[0].Entries)
}

func TestSummarizeByMonth_GroupsAcrossYears(t *testing.T) {
	agg := NewAggregator()
	entries := []domain.Entry{
		workday(2023, time.December, 28, 2, 0),
		workday(2024, time.January, 3, 3, 0),
		workday(2024, time.January, 4, 1, 0),
	}

	summaries := agg.SummarizeByMonth(entries)

	require.Len(t, summaries, 2)
	assert.Equal(t, "2023/12 December", summaries[0].Month)
	assert.Equal(t, "2024/01 January", summaries[1].Month)
	assert.Equal(t, 1, summaries[0].Entries)
	assert.Equal(t, 2, summaries[1].Entries)
}

func TestSummarizeByMonth_DistinctDays(t *testing.T) {
	agg := NewAggregator()
	// Two entries on the 10th, one on the 11th: two distinct days.
	morning := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	entries := []domain.Entry{
		domain.NewEntry(morning, morning.Add(2*time.Hour), "morning"),
		domain.NewEntry(morning.Add(4*time.Hour), morning.Add(6*time.Hour), "afternoon"),
		workday(2024, time.January, 11, 3, 0),
	}

	summaries := agg.SummarizeByMonth(entries)

	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].Days)
	assert.Equal(t, 3, summaries[0].Entries)
}

func TestSummarizeByMonth_HoursPerWeek(t *testing.T) {
	agg := NewAggregator()
	// 40 whole hours in a 30-day month: 40 / (30/7) ≈ 9.33 hours per week.
	entries := []domain.Entry{
		workday(2024, time.April, 8, 20, 0),
		workday(2024, time.April, 15, 20, 0),
	}

	summaries := agg.SummarizeByMonth(entries)

	require.Len(t, summaries, 1)
	assert.Equal(t, domain.Duration{Hours: 40, Minutes: 0}, summaries[0].TotalDuration)
	assert.InDelta(t, 9.33, summaries[0].HoursPerWeek, 0.01)
}

func TestSummarizeByMonth_HoursPerWeekMinutesTerm(t *testing.T) {
	agg := NewAggregator()
	// 10h30m in a 31-day month. The historical formula adds 60/minutes
	// (here 60/30 = 2) to the hours before dividing by weeks.
	entries := []domain.Entry{
		workday(2024, time.January, 10, 10, 30),
	}

	summaries := agg.SummarizeByMonth(entries)

	require.Len(t, summaries, 1)
	expected := (10.0 + 60.0/30.0) / (31.0 / 7.0)
	assert.InDelta(t, expected, summaries[0].HoursPerWeek, 0.0001)
}

func TestSummarizeByMonth_FebruaryLengths(t *testing.T) {
	agg := NewAggregator()

	leap := agg.SummarizeByMonth([]domain.Entry{workday(2024, time.February, 5, 14, 0)})
	require.Len(t, leap, 1)
	assert.InDelta(t, 14.0/(29.0/7.0), leap[0].HoursPerWeek, 0.0001)

	nonLeap := agg.SummarizeByMonth([]domain.Entry{workday(2023, time.February, 5, 14, 0)})
	require.Len(t, nonLeap, 1)
	assert.InDelta(t, 14.0/(28.0/7.0), nonLeap[0].HoursPerWeek, 0.0001)
}
