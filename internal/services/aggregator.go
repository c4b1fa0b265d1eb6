package services

import (
	"sort"

	"foliot/internal/domain"
	"foliot/internal/timeutil"
)

// monthKeyLayout renders "2006/01 January"; the zero-padded numeric prefix
// makes lexicographic order equal chronological order across years.
const monthKeyLayout = "2006/01 January"

// MonthlySummary is a derived rollup of one calendar month's entries.
// It is computed at query time and never persisted.
type MonthlySummary struct {
	// Month is the group key, e.g. "2024/01 January".
	Month string

	// TotalDuration is the fold of all entry durations in the month.
	TotalDuration domain.Duration

	// Days counts the distinct calendar dates with at least one entry.
	Days int

	// HoursPerWeek divides the month's hours by its length in weeks.
	// The minutes term is the historical formula (60/minutes rather than
	// minutes/60), kept for compatibility with existing ledgers.
	HoursPerWeek float64

	// Entries is the number of entries in the month.
	Entries int
}

// Aggregator groups entries into per-month summaries.
type Aggregator struct{}

// NewAggregator creates a new Aggregator instance.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// SummarizeByMonth groups the given entries by calendar month of their start
// time and computes one summary row per month, sorted chronologically.
// Entries should already be sorted by start time.
func (a *Aggregator) SummarizeByMonth(entries []domain.Entry) []MonthlySummary {
	byMonth := make(map[string][]domain.Entry)
	for _, entry := range entries {
		key := entry.StartTime.Format(monthKeyLayout)
		byMonth[key] = append(byMonth[key], entry)
	}

	summaries := make([]MonthlySummary, 0, len(byMonth))
	for month, group := range byMonth {
		summaries = append(summaries, summarizeMonth(month, group))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month < summaries[j].Month
	})
	return summaries
}

// summarizeMonth computes the rollup for one month's group.
func summarizeMonth(month string, group []domain.Entry) MonthlySummary {
	total := domain.ZeroDuration()
	dates := make(map[string]struct{})
	for _, entry := range group {
		total = total.Add(entry.Duration())
		dates[entry.StartTime.Format("2006-01-02")] = struct{}{}
	}

	weeks := float64(timeutil.DaysInMonth(group[0].StartTime)) / 7.0

	remMinutes := 0.0
	if total.Minutes != 0 {
		remMinutes = 60.0 / float64(total.Minutes)
	}
	hoursPerWeek := (float64(total.Hours) + remMinutes) / weeks

	return MonthlySummary{
		Month:         month,
		TotalDuration: total,
		Days:          len(dates),
		HoursPerWeek:  hoursPerWeek,
		Entries:       len(group),
	}
}
