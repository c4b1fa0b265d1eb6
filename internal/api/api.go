package api

import (
	"context"
	"time"

	"foliot/internal/domain"
	"foliot/internal/errors"
	"foliot/internal/logging"
	"foliot/internal/repository"
	"foliot/internal/services"
	"foliot/internal/timeutil"
	"foliot/internal/validation"
)

// FilterFunc decides whether an entry is included in a listing or summary.
// Filters are opaque to the core; callers build them (e.g. from a regex on
// the comment).
type FilterFunc func(domain.Entry) bool

// API defines the interface for all clock and entry operations.
// Every operation works on one namespace and runs to completion; there is
// no background state.
type API interface {
	// Clock state machine
	ClockIn(ctx context.Context, namespace string, starting *time.Time) (domain.Marker, error)
	ClockOut(ctx context.Context, namespace string, comment string) (domain.Entry, error)
	Abort(ctx context.Context, namespace string) error

	// Direct entry path, independent of the marker state machine
	ClockSpan(ctx context.Context, namespace string, hours float64, starting *time.Time, comment string) (domain.Entry, error)

	// Queries
	Status(ctx context.Context, namespace string) (domain.Marker, domain.Duration, error)
	ListEntries(ctx context.Context, namespace string, filter FilterFunc, tail int) ([]domain.Entry, error)
	Summarize(ctx context.Context, namespace string, filter FilterFunc, tail int) ([]services.MonthlySummary, error)
}

type apiImpl struct {
	store      repository.Store
	validator  *validation.EntryValidator
	aggregator *services.Aggregator
}

// New creates a new API instance on top of the given store.
func New(store repository.Store, validator *validation.EntryValidator) API {
	return &apiImpl{
		store:      store,
		validator:  validator,
		aggregator: services.NewAggregator(),
	}
}

// ClockIn starts the clock for a namespace. It fails when a marker already
// exists; the existing marker is left untouched.
func (a *apiImpl) ClockIn(ctx context.Context, namespace string, starting *time.Time) (domain.Marker, error) {
	key := repository.MarkerKey(namespace)

	exists, err := a.store.Exists(ctx, key)
	if err != nil {
		return domain.Marker{}, err
	}
	if exists {
		return domain.Marker{}, errors.NewAlreadyRunningError(namespace)
	}

	start := timeutil.Now()
	if starting != nil {
		start = *starting
	}
	marker := domain.NewMarker(start)

	data, err := repository.MarshalMarker(marker)
	if err != nil {
		return domain.Marker{}, err
	}
	if err := a.store.Write(ctx, key, data); err != nil {
		return domain.Marker{}, err
	}

	logging.Debugf("clocked in namespace %q at %s\n", namespace, marker.StartTime)
	return marker, nil
}

// ClockOut stops the clock and appends the finished entry. The marker is
// only deleted after the entry has been accepted and persisted, so an
// overlap failure keeps the clock running for a corrected retry.
func (a *apiImpl) ClockOut(ctx context.Context, namespace string, comment string) (domain.Entry, error) {
	marker, err := a.loadMarker(ctx, namespace)
	if err != nil {
		return domain.Entry{}, err
	}

	entry := domain.NewEntry(marker.StartTime, timeutil.Now(), comment)
	if err := a.appendEntry(ctx, namespace, entry); err != nil {
		return domain.Entry{}, err
	}

	if err := a.store.Delete(ctx, repository.MarkerKey(namespace)); err != nil {
		return domain.Entry{}, err
	}

	logging.Debugf("clocked out namespace %q: %s\n", namespace, entry.Duration())
	return entry, nil
}

// Abort discards the running clock without producing an entry.
func (a *apiImpl) Abort(ctx context.Context, namespace string) error {
	key := repository.MarkerKey(namespace)

	exists, err := a.store.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotRunningError(namespace)
	}

	return a.store.Delete(ctx, key)
}

// ClockSpan records an arbitrary span directly, without touching any
// marker. The interval is anchored at the explicit start when given,
// otherwise it ends now.
func (a *apiImpl) ClockSpan(ctx context.Context, namespace string, hours float64, starting *time.Time, comment string) (domain.Entry, error) {
	span := time.Duration(int64(hours*60)) * time.Minute

	var start, end time.Time
	if starting != nil {
		start = *starting
		end = start.Add(span)
	} else {
		end = timeutil.Now()
		start = end.Add(-span)
	}

	entry := domain.NewEntry(start, end, comment)
	if err := a.appendEntry(ctx, namespace, entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

// Status returns the running marker and its elapsed time.
func (a *apiImpl) Status(ctx context.Context, namespace string) (domain.Marker, domain.Duration, error) {
	marker, err := a.loadMarker(ctx, namespace)
	if err != nil {
		return domain.Marker{}, domain.Duration{}, err
	}
	return marker, marker.Elapsed(timeutil.Now()), nil
}

// ListEntries returns the namespace's entries sorted by start time,
// optionally filtered, truncated to the last tail rows (0 keeps all).
func (a *apiImpl) ListEntries(ctx context.Context, namespace string, filter FilterFunc, tail int) ([]domain.Entry, error) {
	entries, err := a.requireEntries(ctx, namespace)
	if err != nil {
		return nil, err
	}

	domain.SortByStart(entries)
	entries = applyFilter(entries, filter)
	return tailEntries(entries, tail), nil
}

// Summarize returns per-month rollups of the namespace's entries,
// truncated to the last tail months (0 keeps all).
func (a *apiImpl) Summarize(ctx context.Context, namespace string, filter FilterFunc, tail int) ([]services.MonthlySummary, error) {
	entries, err := a.requireEntries(ctx, namespace)
	if err != nil {
		return nil, err
	}

	domain.SortByStart(entries)
	entries = applyFilter(entries, filter)

	summaries := a.aggregator.SummarizeByMonth(entries)
	if tail > 0 && len(summaries) > tail {
		summaries = summaries[len(summaries)-tail:]
	}
	return summaries, nil
}

// loadMarker reads the namespace's marker, mapping a missing marker to a
// not-running error.
func (a *apiImpl) loadMarker(ctx context.Context, namespace string) (domain.Marker, error) {
	key := repository.MarkerKey(namespace)

	data, err := a.store.Read(ctx, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return domain.Marker{}, errors.NewNotRunningError(namespace)
		}
		return domain.Marker{}, err
	}
	return repository.UnmarshalMarker(key, data)
}

// loadEntries reads the namespace's entry collection, treating a missing
// document as an empty collection.
func (a *apiImpl) loadEntries(ctx context.Context, namespace string) ([]domain.Entry, error) {
	key := repository.EntriesKey(namespace)

	data, err := a.store.Read(ctx, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return repository.UnmarshalEntries(key, data)
}

// requireEntries reads the namespace's entry collection, failing when the
// namespace has never recorded an entry.
func (a *apiImpl) requireEntries(ctx context.Context, namespace string) ([]domain.Entry, error) {
	key := repository.EntriesKey(namespace)

	exists, err := a.store.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("namespace", namespace)
	}

	data, err := a.store.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	return repository.UnmarshalEntries(key, data)
}

// appendEntry is the single write path into a namespace's entry
// collection: load everything, validate the candidate against it, append,
// write everything back.
func (a *apiImpl) appendEntry(ctx context.Context, namespace string, entry domain.Entry) error {
	entries, err := a.loadEntries(ctx, namespace)
	if err != nil {
		return err
	}

	domain.SortByStart(entries)
	if err := a.validator.ValidateInsert(namespace, entry, entries); err != nil {
		return err
	}

	entries = append(entries, entry)
	data, err := repository.MarshalEntries(entries)
	if err != nil {
		return err
	}
	return a.store.Write(ctx, repository.EntriesKey(namespace), data)
}

// applyFilter keeps the entries the filter accepts; a nil filter keeps all.
func applyFilter(entries []domain.Entry, filter FilterFunc) []domain.Entry {
	if filter == nil {
		return entries
	}
	filtered := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if filter(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// tailEntries returns the last tail entries; 0 means no truncation.
func tailEntries(entries []domain.Entry, tail int) []domain.Entry {
	if tail <= 0 || len(entries) <= tail {
		return entries
	}
	return entries[len(entries)-tail:]
}
