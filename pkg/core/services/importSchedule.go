package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openrota/weekshift/internal/config"
	"github.com/openrota/weekshift/pkg/core/model"
	"github.com/openrota/weekshift/pkg/core/roster"
	"github.com/openrota/weekshift/pkg/db"
)

// ErrCalendarNotConfigured reports that no calendar id is configured. It is
// a configuration problem, distinct from a runtime import failure, and is
// raised before any external call.
var ErrCalendarNotConfigured = errors.New("calendarID is not configured")

// SystemUser is recorded as the publisher of unattended imports.
const SystemUser = "system"

// EventLister is the narrow view of the calendar client the import needs.
type EventLister interface {
	ListEvents(ctx context.Context, calendarID string, from, to time.Time, timeZone string) ([]model.CalendarEvent, error)
}

// ImportStore defines the database operations the calendar import needs.
type ImportStore interface {
	ListEmployees(ctx context.Context) ([]db.Employee, error)
	InsertShift(ctx context.Context, shift *db.Shift) error
}

// ImportOptions controls one calendar import.
type ImportOptions struct {
	// Base overrides the instant the anchor is computed from; zero means now.
	Base time.Time
	// DryRun computes the schedule without persisting a shift.
	DryRun bool
	// SavedBy is the acting administrator; empty means an unattended run,
	// recorded as SystemUser.
	SavedBy string
}

// ImportResult is the outcome of one calendar import.
type ImportResult struct {
	Schedule model.Schedule
	Anchor   time.Time
	// Shift is the persisted version; nil for dry runs.
	Shift *db.Shift
}

// ImportSchedule pulls one week of events from the external calendar,
// classifies them into a weekly schedule, and persists it as a new shift
// version unless dry-running. Listing, directory lookup, and assembly are
// sequential; malformed events reduce the schedule's completeness but never
// abort the import. Re-running an import creates a new version rather than
// deduplicating against a prior one.
func ImportSchedule(ctx context.Context, store ImportStore, calendar EventLister, cfg *config.Config, logger *zap.Logger, opts ImportOptions) (*ImportResult, error) {
	if cfg.CalendarID == "" {
		return nil, ErrCalendarNotConfigured
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	base := opts.Base
	if base.IsZero() {
		base = time.Now()
	}

	anchor, err := roster.NextAnchor(cfg.AnchorRule, base)
	if err != nil {
		return nil, err
	}

	from, to := roster.WeekWindow(anchor)
	logger.Info("Importing schedule from calendar",
		zap.String("calendar_id", cfg.CalendarID),
		zap.Time("anchor", anchor),
		zap.Bool("dry_run", opts.DryRun))

	events, err := calendar.ListEvents(ctx, cfg.CalendarID, from, to, cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	logger.Debug("Fetched calendar events", zap.Int("count", len(events)))

	employees, err := store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	usersByEmail := make(map[string]string, len(employees))
	for _, employee := range employees {
		if employee.Email != "" {
			usersByEmail[strings.ToLower(employee.Email)] = employee.Username
		}
	}

	schedule := roster.Assemble(events, usersByEmail, loc)

	result := &ImportResult{Schedule: schedule, Anchor: anchor}
	if opts.DryRun {
		logger.Info("Dry run complete, nothing persisted")
		return result, nil
	}

	savedBy := opts.SavedBy
	if savedBy == "" {
		savedBy = SystemUser
	}

	shift := &db.Shift{
		Name:    roster.ShiftName(anchor),
		Data:    schedule,
		SavedBy: savedBy,
		Date:    anchor,
	}
	if err := store.InsertShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to save imported schedule: %w", err)
	}

	logger.Info("Imported schedule saved",
		zap.Int64("shift_id", shift.ID),
		zap.String("name", shift.Name),
		zap.String("saved_by", savedBy))

	result.Shift = shift
	return result, nil
}
