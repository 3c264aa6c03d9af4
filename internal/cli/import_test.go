package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/cyclenote/internal/config"
	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/services"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "cyclenote.db")},
		Cycle: config.CycleConfig{
			FallbackCycleLength: 28,
			PeriodLength:        5,
			ForecastCycles:      3,
			ReminderLeadDays:    2,
		},
	}
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write import file: %v", err)
	}
	return path
}

func TestRunImportCommandMigratesLegacyDocument(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	path := writeFile(t, `{"periods":[{"start":"2024-01-01","length":2,"flow":"heavy"}]}`)

	var out bytes.Buffer
	if err := RunImportCommand(context.Background(), cfg, path, &out, zap.NewNop()); err != nil {
		t.Fatalf("RunImportCommand returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Migrated legacy") || !strings.Contains(out.String(), "Imported 2 days") {
		t.Fatalf("unexpected output %q", out.String())
	}

	database, err := db.OpenSQLite(cfg.Database.Path, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen database: %v", err)
	}
	raw, ok, err := db.NewKVRepository(database).Get(context.Background(), services.RecordsStorageKey)
	if err != nil || !ok {
		t.Fatalf("expected stored document, ok=%v err=%v", ok, err)
	}
	if services.DetectSchemaVersion(raw) != services.SchemaDays {
		t.Fatalf("expected stored document in days format, got %s", raw)
	}
}

func TestRunImportCommandRejectsUnknownDocument(t *testing.T) {
	t.Parallel()

	for _, contents := range []string{`not json`, `{}`, `{"records":{}}`} {
		cfg := testConfig(t)
		path := writeFile(t, contents)

		err := RunImportCommand(context.Background(), cfg, path, &bytes.Buffer{}, zap.NewNop())
		if !errors.Is(err, services.ErrMalformedDocument) {
			t.Fatalf("%s: expected ErrMalformedDocument, got %v", contents, err)
		}
		if _, statErr := os.Stat(cfg.Database.Path); !os.IsNotExist(statErr) {
			t.Fatalf("%s: expected no database to be created, stat err = %v", contents, statErr)
		}
	}
}

func TestRunImportCommandUsesConfiguredPeriodLength(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Cycle.PeriodLength = 4
	path := writeFile(t, `{"periods":[{"start":"2024-01-01"}]}`)

	var out bytes.Buffer
	if err := RunImportCommand(context.Background(), cfg, path, &out, zap.NewNop()); err != nil {
		t.Fatalf("RunImportCommand returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 4 days") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
