package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

func TestDetectSchemaVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want SchemaVersion
	}{
		{name: "days document", raw: `{"days":{"2024-01-01":{"period":true}}}`, want: SchemaDays},
		{name: "empty days map", raw: `{"days":{}}`, want: SchemaDays},
		{name: "empty object", raw: `{}`, want: SchemaUnknown},
		{name: "null", raw: `null`, want: SchemaUnknown},
		{name: "unrelated key", raw: `{"records":{"2024-01-01":{"period":true}}}`, want: SchemaUnknown},
		{name: "legacy periods", raw: `{"periods":[]}`, want: SchemaLegacyPeriods},
		{name: "legacy wins over days", raw: `{"periods":[],"days":{}}`, want: SchemaLegacyPeriods},
		{name: "days not an object", raw: `{"days":[1]}`, want: SchemaUnknown},
		{name: "not json", raw: `nope`, want: SchemaUnknown},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := DetectSchemaVersion([]byte(testCase.raw)); got != testCase.want {
				t.Fatalf("DetectSchemaVersion(%s) = %v, want %v", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestDecodeDocumentSkipsInvalidEntries(t *testing.T) {
	t.Parallel()

	raw := `{"days":{
		"2024-01-01":{"period":true,"pain":12,"flow":"HEAVY"},
		"2024-13-40":{"period":true},
		"2024-01-02":{"period":false},
		"2024-01-03":{"period":false,"mood":"ok"}
	}}`
	records, err := DecodeDocument([]byte(raw), models.DefaultPeriodLength)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %#v", records)
	}
	first := records[mustParseDay(t, "2024-01-01")]
	if first.Pain != nil || first.Flow != models.FlowHeavy {
		t.Fatalf("expected out-of-range pain dropped and flow normalized, got %#v", first)
	}

	for _, raw := range []string{`[]`, `{}`, `null`, `{"records":{}}`} {
		if _, err := DecodeDocument([]byte(raw), models.DefaultPeriodLength); !errors.Is(err, ErrMalformedDocument) {
			t.Fatalf("DecodeDocument(%s): expected ErrMalformedDocument, got %v", raw, err)
		}
	}
}

func TestMigrateLegacyPeriods(t *testing.T) {
	t.Parallel()

	document := MigrateLegacyPeriods([]LegacyPeriod{
		{Start: "2024-01-30", Length: intPtr(3), Flow: "light"},
		{Start: "2024-03-01T08:00:00Z", Length: intPtr(-2)},
		{Start: "garbage", Length: intPtr(4)},
	}, models.DefaultPeriodLength)
	if len(document.Days) != 4 {
		t.Fatalf("expected 4 days, got %#v", document.Days)
	}
	if day, ok := document.Days["2024-02-01"]; !ok || !day.Period || day.Flow != "light" {
		t.Fatalf("expected expansion across month end, got %#v", document.Days)
	}
	if _, ok := document.Days["2024-03-01"]; !ok {
		t.Fatal("expected timestamp start to map to its calendar day")
	}
}

func TestMigrateLegacyPeriodsLength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		raw          string
		periodLength int
		wantDays     int
	}{
		{name: "missing length uses default", raw: `{"periods":[{"start":"2024-01-01"}]}`, periodLength: 0, wantDays: models.DefaultPeriodLength},
		{name: "missing length uses configured", raw: `{"periods":[{"start":"2024-01-01"}]}`, periodLength: 4, wantDays: 4},
		{name: "explicit zero marks one day", raw: `{"periods":[{"start":"2024-01-01","length":0}]}`, periodLength: 4, wantDays: 1},
		{name: "explicit length wins", raw: `{"periods":[{"start":"2024-01-01","length":7}]}`, periodLength: 4, wantDays: 7},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			records, err := DecodeDocument([]byte(testCase.raw), testCase.periodLength)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(records) != testCase.wantDays {
				t.Fatalf("expected %d days, got %d", testCase.wantDays, len(records))
			}
			last := mustParseDay(t, "2024-01-01").AddDate(0, 0, testCase.wantDays-1)
			if record, ok := records[last]; !ok || !record.IsPeriod {
				t.Fatalf("expected period through %s, got %#v", last.Format(time.DateOnly), records)
			}
		})
	}
}

func TestEncodeDocumentUsesCurrentFormat(t *testing.T) {
	t.Parallel()

	payload, err := EncodeDocument([]DayEntry{{
		Date:   mustParseDay(t, "2024-01-01"),
		Record: models.DayRecord{IsPeriod: true, Pain: intPtr(2), Note: "tired"},
	}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded := map[string]map[string]map[string]any{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	day := decoded["days"]["2024-01-01"]
	if day["period"] != true || day["mood"] != "tired" || day["pain"] != float64(2) {
		t.Fatalf("unexpected encoded day %#v", day)
	}
	if _, ok := day["flow"]; ok {
		t.Fatalf("expected absent flow to be omitted, got %#v", day)
	}
}
