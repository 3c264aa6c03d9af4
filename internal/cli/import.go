package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/cyclenote/internal/config"
	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/services"
	"go.uber.org/zap"
)

// RunImportCommand replaces the stored records with the document at path.
// Both the current days document and the legacy periods list are accepted.
func RunImportCommand(ctx context.Context, cfg *config.Config, path string, out io.Writer, logger *zap.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	schema := services.DetectSchemaVersion(raw)
	if schema == services.SchemaUnknown {
		return fmt.Errorf("import %s: %w", path, services.ErrMalformedDocument)
	}

	database, err := db.OpenSQLite(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	store := services.OpenDayStore(ctx, db.NewKVRepository(database), cfg.Cycle.PeriodLength, logger)
	tracker, err := services.NewTracker(store, cfg.CycleSettings(), logger)
	if err != nil {
		return err
	}

	count, err := tracker.Import(ctx, raw)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	if schema == services.SchemaLegacyPeriods {
		fmt.Fprintln(out, "Migrated legacy periods document")
	}
	fmt.Fprintf(out, "Imported %d days into %s\n", count, cfg.Database.Path)
	return nil
}
