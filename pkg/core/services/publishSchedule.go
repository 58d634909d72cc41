package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/openrota/weekshift/internal/config"
	"github.com/openrota/weekshift/pkg/core/model"
	"github.com/openrota/weekshift/pkg/core/roster"
	"github.com/openrota/weekshift/pkg/db"
)

// PublishStore defines the database operations a manual publish needs.
type PublishStore interface {
	InsertShift(ctx context.Context, shift *db.Shift) error
}

// PublishSchedule persists a hand-built schedule as a new shift version
// anchored at the next occurrence of the configured cadence. Every publish
// creates a new version; nothing is ever overwritten.
func PublishSchedule(ctx context.Context, store PublishStore, cfg *config.Config, logger *zap.Logger, schedule model.Schedule, savedBy string, base time.Time) (*db.Shift, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	if base.IsZero() {
		base = time.Now()
	}

	anchor, err := roster.NextAnchor(cfg.AnchorRule, base)
	if err != nil {
		return nil, err
	}

	shift := &db.Shift{
		Name:    roster.ShiftName(anchor),
		Data:    schedule,
		SavedBy: savedBy,
		Date:    anchor,
	}
	if err := store.InsertShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.Int64("shift_id", shift.ID),
		zap.String("name", shift.Name),
		zap.String("saved_by", savedBy))

	return shift, nil
}
