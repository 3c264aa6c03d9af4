package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
	"go.uber.org/zap"
)

var ErrPersistFailed = errors.New("persist day records failed")

// KeyValueStore is the persistence collaborator behind a DayStore.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

type DayEntry struct {
	Date   time.Time        `json:"date"`
	Record models.DayRecord `json:"record"`
}

// DayStore is the in-memory source of truth for day records. Every mutation
// writes the whole document back to the key-value collaborator.
type DayStore struct {
	kv      KeyValueStore
	logger  *zap.Logger
	records map[time.Time]models.DayRecord
}

// OpenDayStore loads the persisted document. Missing, unreadable or malformed
// state yields an empty store. periodLength sizes legacy entries that carry no
// length.
func OpenDayStore(ctx context.Context, kv KeyValueStore, periodLength int, logger *zap.Logger) *DayStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := &DayStore{
		kv:      kv,
		logger:  logger,
		records: make(map[time.Time]models.DayRecord),
	}

	raw, found, err := kv.Get(ctx, RecordsStorageKey)
	if err != nil {
		logger.Warn("day store: read persisted records failed, starting empty", zap.Error(err))
		return store
	}
	if !found {
		return store
	}

	if DetectSchemaVersion(raw) == SchemaLegacyPeriods {
		logger.Info("day store: migrating legacy periods document")
	}
	records, err := DecodeDocument(raw, periodLength)
	if err != nil {
		logger.Warn("day store: persisted records malformed, starting empty", zap.Error(err))
		return store
	}
	store.records = records
	return store
}

func (store *DayStore) Get(day time.Time) (models.DayRecord, bool) {
	record, ok := store.records[CivilDay(day)]
	return record, ok
}

// Upsert merges patch into the stored record. A record that ends up empty is
// removed instead of stored.
func (store *DayStore) Upsert(ctx context.Context, day time.Time, patch models.DayPatch) error {
	patch, err := NormalizeDayPatch(patch)
	if err != nil {
		return err
	}

	key := CivilDay(day)
	previous, existed := store.records[key]
	merged := patch.ApplyTo(previous)
	if merged.IsEmpty() {
		delete(store.records, key)
	} else {
		store.records[key] = merged
	}

	if err := store.persist(ctx); err != nil {
		if existed {
			store.records[key] = previous
		} else {
			delete(store.records, key)
		}
		return err
	}
	return nil
}

func (store *DayStore) Delete(ctx context.Context, day time.Time) error {
	key := CivilDay(day)
	previous, existed := store.records[key]
	if !existed {
		return nil
	}
	delete(store.records, key)
	if err := store.persist(ctx); err != nil {
		store.records[key] = previous
		return err
	}
	return nil
}

// DeleteDays removes several days with a single write.
func (store *DayStore) DeleteDays(ctx context.Context, days []time.Time) error {
	removed := make(map[time.Time]models.DayRecord, len(days))
	for _, day := range days {
		key := CivilDay(day)
		if record, ok := store.records[key]; ok {
			removed[key] = record
			delete(store.records, key)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if err := store.persist(ctx); err != nil {
		for key, record := range removed {
			store.records[key] = record
		}
		return err
	}
	return nil
}

// Replace swaps the full record set, used by clear and import.
func (store *DayStore) Replace(ctx context.Context, records map[time.Time]models.DayRecord) error {
	previous := store.records
	next := make(map[time.Time]models.DayRecord, len(records))
	for day, record := range records {
		if record.IsEmpty() {
			continue
		}
		next[CivilDay(day)] = record
	}
	store.records = next
	if err := store.persist(ctx); err != nil {
		store.records = previous
		return err
	}
	return nil
}

func (store *DayStore) Len() int {
	return len(store.records)
}

func (store *DayStore) EntriesAscending() []DayEntry {
	entries := make([]DayEntry, 0, len(store.records))
	for day, record := range store.records {
		entries = append(entries, DayEntry{Date: day, Record: record})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

func (store *DayStore) EntriesDescending() []DayEntry {
	entries := store.EntriesAscending()
	for left, right := 0, len(entries)-1; left < right; left, right = left+1, right-1 {
		entries[left], entries[right] = entries[right], entries[left]
	}
	return entries
}

func (store *DayStore) Export() ([]byte, error) {
	return EncodeDocument(store.EntriesAscending())
}

func (store *DayStore) persist(ctx context.Context) error {
	payload, err := store.Export()
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistFailed, err)
	}
	if err := store.kv.Put(ctx, RecordsStorageKey, payload); err != nil {
		store.logger.Error("day store: write records failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}
