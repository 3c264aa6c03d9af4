package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	day, err := ParseDay(raw)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return day
}

func mustParseDays(t *testing.T, raws ...string) []time.Time {
	t.Helper()
	days := make([]time.Time, 0, len(raws))
	for _, raw := range raws {
		days = append(days, mustParseDay(t, raw))
	}
	return days
}

func periodEntries(t *testing.T, raws ...string) []DayEntry {
	t.Helper()
	entries := make([]DayEntry, 0, len(raws))
	for _, day := range mustParseDays(t, raws...) {
		entries = append(entries, DayEntry{Date: day, Record: models.DayRecord{IsPeriod: true}})
	}
	return entries
}

func boolPtr(value bool) *bool       { return &value }
func intPtr(value int) *int          { return &value }
func stringPtr(value string) *string { return &value }
func flowPtr(value models.Flow) *models.Flow {
	return &value
}

var errStubWrite = errors.New("stub write failure")

// stubKV wraps the in-memory store with switchable failures.
type stubKV struct {
	*MemoryKeyValueStore
	failReads  bool
	failWrites bool
	writes     int
}

func newStubKV() *stubKV {
	return &stubKV{MemoryKeyValueStore: NewMemoryKeyValueStore()}
}

func (kv *stubKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if kv.failReads {
		return nil, false, errors.New("stub read failure")
	}
	return kv.MemoryKeyValueStore.Get(ctx, key)
}

func (kv *stubKV) Put(ctx context.Context, key string, value []byte) error {
	if kv.failWrites {
		return errStubWrite
	}
	kv.writes++
	return kv.MemoryKeyValueStore.Put(ctx, key, value)
}

func newTestTracker(t *testing.T, periodDays ...string) (*Tracker, *stubKV) {
	t.Helper()
	kv := newStubKV()
	tracker, err := NewTracker(OpenDayStore(context.Background(), kv, models.DefaultPeriodLength, nil), DefaultCycleSettings(), nil)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	for _, day := range mustParseDays(t, periodDays...) {
		if _, _, err := tracker.UpsertDay(context.Background(), day, models.DayPatch{IsPeriod: boolPtr(true)}); err != nil {
			t.Fatalf("mark period %s: %v", FormatDay(day), err)
		}
	}
	return tracker, kv
}
