package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/openrota/weekshift/pkg/db"
)

// ScheduleStore defines the database operations for reading and pruning the
// shift history.
type ScheduleStore interface {
	GetLatestShift(ctx context.Context) (*db.Shift, error)
	ListShifts(ctx context.Context) ([]db.Shift, error)
	DeleteShift(ctx context.Context, id int64) error
}

// LatestSchedule returns the most recently created shift version, or
// (nil, nil) when nothing has been published yet. Latest means newest by
// creation, not by anchor date.
func LatestSchedule(ctx context.Context, store ScheduleStore) (*db.Shift, error) {
	shift, err := store.GetLatestShift(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest shift: %w", err)
	}
	return shift, nil
}

// ScheduleHistory returns every saved shift version.
func ScheduleHistory(ctx context.Context, store ScheduleStore) ([]db.Shift, error) {
	shifts, err := store.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift history: %w", err)
	}
	return shifts, nil
}

// RemoveSchedule deletes one shift version. Removing an id that no longer
// exists is not an error.
func RemoveSchedule(ctx context.Context, store ScheduleStore, logger *zap.Logger, id int64) error {
	if err := store.DeleteShift(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	logger.Info("Shift removed", zap.Int64("shift_id", id))
	return nil
}
