package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
	"go.uber.org/zap"
)

var ErrIntervalNotFound = errors.New("period interval not found")

// guidanceHorizonCycles is how many forecasted cycles advice and reminders
// look at, independent of the forecast count shown to callers.
const guidanceHorizonCycles = 6

// Tracker is the entry point for collaborators: it owns the day store and
// derives intervals, statistics, forecasts and guidance on every call.
type Tracker struct {
	mu       sync.RWMutex
	store    *DayStore
	settings CycleSettings
	logger   *zap.Logger
}

type CycleSummary struct {
	PeriodCount        int        `json:"period_count"`
	AverageCycleLength *int       `json:"average_cycle_length"`
	CycleLength        int        `json:"cycle_length"`
	NextPeriodStart    *time.Time `json:"next_period_start"`
	LastPeriodStart    *time.Time `json:"last_period_start"`
}

func NewTracker(store *DayStore, settings CycleSettings, logger *zap.Logger) (*Tracker, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{store: store, settings: settings, logger: logger}, nil
}

func (tracker *Tracker) Settings() CycleSettings {
	return tracker.settings
}

func (tracker *Tracker) GetDay(day time.Time) (models.DayRecord, bool) {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return tracker.store.Get(day)
}

func (tracker *Tracker) ListDays() []DayEntry {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return tracker.store.EntriesAscending()
}

func (tracker *Tracker) UpsertDay(ctx context.Context, day time.Time, patch models.DayPatch) (models.DayRecord, bool, error) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	if err := tracker.store.Upsert(ctx, day, patch); err != nil {
		return models.DayRecord{}, false, err
	}
	record, ok := tracker.store.Get(day)
	return record, ok, nil
}

func (tracker *Tracker) DeleteDay(ctx context.Context, day time.Time) error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.store.Delete(ctx, day)
}

// DeleteInterval removes every day of the recorded interval starting at start.
func (tracker *Tracker) DeleteInterval(ctx context.Context, start time.Time) (models.PeriodInterval, error) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	start = CivilDay(start)
	for _, interval := range ExtractIntervals(tracker.store.EntriesAscending()) {
		if interval.Start.Equal(start) {
			return interval, tracker.store.DeleteDays(ctx, interval.Days())
		}
	}
	return models.PeriodInterval{}, ErrIntervalNotFound
}

func (tracker *Tracker) ClearAll(ctx context.Context) error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.store.Replace(ctx, nil)
}

// Import replaces all records with the decoded document, current or legacy.
func (tracker *Tracker) Import(ctx context.Context, raw []byte) (int, error) {
	records, err := DecodeDocument(raw, tracker.settings.PeriodLength)
	if err != nil {
		return 0, err
	}

	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if err := tracker.store.Replace(ctx, records); err != nil {
		return 0, err
	}
	return tracker.store.Len(), nil
}

func (tracker *Tracker) Export() ([]byte, error) {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return tracker.store.Export()
}

func (tracker *Tracker) ListIntervals() []models.PeriodInterval {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return ExtractIntervals(tracker.store.EntriesAscending())
}

func (tracker *Tracker) AverageCycleLength() (int, bool) {
	return AverageCycleLength(IntervalStartsDescending(tracker.ListIntervals()))
}

func (tracker *Tracker) ForecastStarts(count int) []time.Time {
	startsDescending := IntervalStartsDescending(tracker.ListIntervals())
	return PredictNextStarts(count, startsDescending, tracker.cycleLength(startsDescending))
}

func (tracker *Tracker) ForecastCycles(count int) []models.ForecastedCycle {
	startsDescending := IntervalStartsDescending(tracker.ListIntervals())
	return ForecastCycles(count, startsDescending, tracker.cycleLength(startsDescending), tracker.settings.PeriodLength)
}

func (tracker *Tracker) FertileWindows(count int) []models.FertileWindow {
	return FertileWindows(tracker.ForecastStarts(count))
}

func (tracker *Tracker) Summary() CycleSummary {
	intervals := tracker.ListIntervals()
	startsDescending := IntervalStartsDescending(intervals)

	summary := CycleSummary{
		PeriodCount: len(intervals),
		CycleLength: tracker.cycleLength(startsDescending),
	}
	if average, ok := AverageCycleLength(startsDescending); ok {
		summary.AverageCycleLength = &average
	}
	if len(startsDescending) > 0 {
		last := startsDescending[0]
		summary.LastPeriodStart = &last
	}
	if next := PredictNextStarts(1, startsDescending, summary.CycleLength); len(next) == 1 {
		summary.NextPeriodStart = &next[0]
	}
	return summary
}

func (tracker *Tracker) CycleLengthSeries() []CyclePoint {
	return CycleLengthSeries(tracker.ListIntervals())
}

func (tracker *Tracker) PainSeries() []CyclePoint {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return PainSeries(ExtractIntervals(tracker.store.EntriesAscending()), tracker.store.Get)
}

// AdviseFor classifies day against the current snapshot and renders guidance.
func (tracker *Tracker) AdviseFor(day time.Time, translate Translator) models.Guidance {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()

	day = CivilDay(day)
	intervals, forecasts := tracker.snapshotLocked(guidanceHorizonCycles)
	windows := make([]models.FertileWindow, 0, len(forecasts))
	for _, cycle := range forecasts {
		windows = append(windows, cycle.FertileWindow())
	}

	classification := ClassifyDate(day, intervals, windows, forecasts)
	var record *models.DayRecord
	if stored, ok := tracker.store.Get(day); ok {
		record = &stored
	}
	return GenerateGuidance(day, classification, record, translate)
}

// Poll reports the reminders due on today. Hosts call it on any schedule.
func (tracker *Tracker) Poll(today time.Time) models.ReminderResult {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()

	today = CivilDay(today)
	intervals, forecasts := tracker.snapshotLocked(guidanceHorizonCycles)
	result := models.ReminderResult{Reminders: []models.Reminder{}}

	if len(forecasts) > 0 {
		next := forecasts[0].StartDate
		daysUntil := DaysBetween(today, next)
		if daysUntil >= 0 && daysUntil <= tracker.settings.ReminderLeadDays {
			result.Reminders = append(result.Reminders, models.Reminder{
				Kind:      models.ReminderUpcomingPeriod,
				DaysUntil: daysUntil,
				Date:      next,
			})
		}
	}

	inPeriod := false
	if _, ok := findIntervalContaining(intervals, today); ok {
		inPeriod = true
	}
	for _, cycle := range forecasts {
		if cycle.PeriodContains(today) {
			inPeriod = true
			break
		}
	}
	if inPeriod {
		result.Reminders = append(result.Reminders, models.Reminder{
			Kind: models.ReminderPeriodDay,
			Date: today,
		})
	}

	result.ShouldNotify = len(result.Reminders) > 0
	return result
}

func (tracker *Tracker) snapshotLocked(forecastCount int) ([]models.PeriodInterval, []models.ForecastedCycle) {
	intervals := ExtractIntervals(tracker.store.EntriesAscending())
	startsDescending := IntervalStartsDescending(intervals)
	forecasts := ForecastCycles(forecastCount, startsDescending, tracker.cycleLength(startsDescending), tracker.settings.PeriodLength)
	return intervals, forecasts
}

func (tracker *Tracker) cycleLength(startsDescending []time.Time) int {
	average, ok := AverageCycleLength(startsDescending)
	return ResolveCycleLength(average, ok, tracker.settings.FallbackCycleLength)
}
