package validation

import (
	"time"

	"foliot/internal/domain"
	"foliot/internal/errors"
)

// EntryValidator guards the single write path into a namespace's entry
// collection.
type EntryValidator struct {
	// requireEndAfterStart rejects entries whose end is not strictly after
	// their start. Off by default: existing ledgers may contain zero-length
	// bookkeeping entries.
	requireEndAfterStart bool
}

// NewEntryValidator creates a validator with the default permissive settings.
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{}
}

// NewStrictEntryValidator creates a validator that additionally rejects
// zero and negative duration entries.
func NewStrictEntryValidator() *EntryValidator {
	return &EntryValidator{requireEndAfterStart: true}
}

// Overlaps reports whether the spans of two entries share any instant
// strictly inside both. Boundary touches do not count: an entry ending at T
// and another starting at exactly T are back to back, not overlapping.
// Two identical non-empty spans overlap even though neither boundary falls
// strictly inside the other, so duplicates are caught too.
func Overlaps(a, b domain.Entry) bool {
	if strictlyInside(a.StartTime, b) ||
		strictlyInside(a.EndTime, b) ||
		strictlyInside(b.StartTime, a) ||
		strictlyInside(b.EndTime, a) {
		return true
	}
	return a.StartTime.Equal(b.StartTime) && a.EndTime.Equal(b.EndTime) &&
		a.EndTime.After(a.StartTime)
}

// strictlyInside reports whether t lies strictly between the entry's
// boundaries.
func strictlyInside(t time.Time, e domain.Entry) bool {
	return t.After(e.StartTime) && t.Before(e.EndTime)
}

// ValidateInsert checks a candidate entry against every existing entry of
// the namespace. The scan is O(n); the store is sorted for display only, so
// no ordering assumption is made here.
func (v *EntryValidator) ValidateInsert(namespace string, candidate domain.Entry, existing []domain.Entry) error {
	if v.requireEndAfterStart && !candidate.EndTime.After(candidate.StartTime) {
		return errors.NewValidationError("entry end time must be after its start time", nil).
			WithContext("namespace", namespace)
	}

	for _, e := range existing {
		if Overlaps(candidate, e) {
			return errors.NewOverlapError(namespace).
				WithContext("existing_start", e.StartTime).
				WithContext("existing_end", e.EndTime)
		}
	}
	return nil
}
