package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/todocsv/internal/apiservice"
	"github.com/specialistvlad/todocsv/internal/ctxlog"
)

// ErrPartialFailure is returned by Run in strict mode when at least one row
// could not be saved.
var ErrPartialFailure = errors.New("some rows were not saved")

// Run executes one fetch-and-save pass. The returned result is non-nil
// whenever the fetch succeeded, including in strict mode failures.
func (a *App) Run(ctx context.Context) (*apiservice.SaveResult, error) {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	logger.Info("🚀 Starting export.", "url", a.settings.URL, "path", a.settings.StoragePath)
	result, err := a.service.Run(ctx)
	if err != nil {
		logger.Error("Export failed.", "error", err)
		return nil, fmt.Errorf("execution failed: %w", err)
	}
	logger.Info("🏁 Export finished.",
		"saved", result.SavedCount(),
		"failed", result.FailedCount(),
		"duplicate_ids", len(result.DuplicateIDs),
	)

	if a.config.Strict && !result.OK() {
		return result, fmt.Errorf("%w: %d of %d", ErrPartialFailure, result.FailedCount(), result.Total())
	}

	logger.Debug("App.Run method finished.")
	return result, nil
}
