package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const RecordsStorageKey = "menstrual_records_v1"

type SchemaVersion int

const (
	SchemaUnknown SchemaVersion = iota
	SchemaLegacyPeriods
	SchemaDays
)

var ErrMalformedDocument = errors.New("malformed records document")

// Document is the persisted form of the day store.
type Document struct {
	Days map[string]DocumentDay `json:"days"`
}

type DocumentDay struct {
	Period bool   `json:"period"`
	Pain   *int   `json:"pain,omitempty"`
	Flow   string `json:"flow,omitempty"`
	Mood   string `json:"mood,omitempty"`
}

type legacyDocument struct {
	Periods []LegacyPeriod `json:"periods"`
}

type LegacyPeriod struct {
	Start  string `json:"start"`
	Length *int   `json:"length,omitempty"`
	Pain   *int   `json:"pain,omitempty"`
	Flow   string `json:"flow,omitempty"`
	Mood   string `json:"mood,omitempty"`
}

type schemaKeys struct {
	Days    json.RawMessage `json:"days"`
	Periods json.RawMessage `json:"periods"`
}

// DetectSchemaVersion inspects the top-level keys of a raw document. A periods
// array wins over a days map, matching how older clients wrote both. Anything
// without one of the two is SchemaUnknown.
func DetectSchemaVersion(raw []byte) SchemaVersion {
	keys := schemaKeys{}
	if err := json.Unmarshal(raw, &keys); err != nil {
		return SchemaUnknown
	}
	if trimmed := bytes.TrimSpace(keys.Periods); len(trimmed) > 0 && trimmed[0] == '[' {
		return SchemaLegacyPeriods
	}
	if trimmed := bytes.TrimSpace(keys.Days); len(trimmed) > 0 && trimmed[0] == '{' {
		return SchemaDays
	}
	return SchemaUnknown
}

// DecodeDocument parses either document format into day records. Entries with
// unparseable dates or invalid attribute values are dropped. Legacy entries
// without a length span periodLength days.
func DecodeDocument(raw []byte, periodLength int) (map[time.Time]models.DayRecord, error) {
	switch DetectSchemaVersion(raw) {
	case SchemaLegacyPeriods:
		legacy := legacyDocument{}
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		return documentRecords(MigrateLegacyPeriods(legacy.Periods, periodLength)), nil
	case SchemaDays:
		document := Document{}
		if err := json.Unmarshal(raw, &document); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		return documentRecords(document), nil
	default:
		return nil, ErrMalformedDocument
	}
}

// MigrateLegacyPeriods expands period entries into day entries. Each entry marks
// length consecutive days from start. A missing length falls back to
// periodLength (or the model default); an explicit non-positive length marks one day.
func MigrateLegacyPeriods(periods []LegacyPeriod, periodLength int) Document {
	if periodLength <= 0 {
		periodLength = models.DefaultPeriodLength
	}
	document := Document{Days: make(map[string]DocumentDay)}
	for _, period := range periods {
		start, err := parseLegacyStart(period.Start)
		if err != nil {
			continue
		}
		length := periodLength
		if period.Length != nil {
			length = max(*period.Length, 1)
		}
		for offset := 0; offset < length; offset++ {
			document.Days[FormatDay(start.AddDate(0, 0, offset))] = DocumentDay{
				Period: true,
				Pain:   period.Pain,
				Flow:   period.Flow,
				Mood:   period.Mood,
			}
		}
	}
	return document
}

func EncodeDocument(entries []DayEntry) ([]byte, error) {
	document := Document{Days: make(map[string]DocumentDay, len(entries))}
	for _, entry := range entries {
		document.Days[FormatDay(entry.Date)] = DocumentDay{
			Period: entry.Record.IsPeriod,
			Pain:   entry.Record.Pain,
			Flow:   string(entry.Record.Flow),
			Mood:   entry.Record.Note,
		}
	}
	return json.Marshal(document)
}

func documentRecords(document Document) map[time.Time]models.DayRecord {
	keys := make([]string, 0, len(document.Days))
	for key := range document.Days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make(map[time.Time]models.DayRecord, len(keys))
	for _, key := range keys {
		day, err := ParseDay(key)
		if err != nil {
			continue
		}
		stored := document.Days[key]
		record := models.DayRecord{
			IsPeriod: stored.Period,
			Note:     TrimDayNote(stored.Mood),
		}
		if stored.Pain != nil && IsValidPainLevel(*stored.Pain) {
			pain := *stored.Pain
			record.Pain = &pain
		}
		if flow := models.Flow(strings.ToLower(strings.TrimSpace(stored.Flow))); IsValidDayFlow(flow) {
			record.Flow = flow
		}
		if record.IsEmpty() {
			continue
		}
		records[day] = record
	}
	return records
}

// parseLegacyStart accepts plain dates as well as full timestamps written by
// older clients.
func parseLegacyStart(raw string) (time.Time, error) {
	if day, err := ParseDay(raw); err == nil {
		return day, nil
	}
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return CivilDay(parsed), nil
}
