package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openrota/weekshift/internal/config"
	"github.com/openrota/weekshift/pkg/core/model"
	"github.com/openrota/weekshift/pkg/db"
)

type mockImportStore struct {
	employees []db.Employee
	listErr   error
	insertErr error

	inserted []*db.Shift
}

func (m *mockImportStore) ListEmployees(ctx context.Context) ([]db.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.employees, nil
}

func (m *mockImportStore) InsertShift(ctx context.Context, shift *db.Shift) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	shift.ID = int64(len(m.inserted) + 1)
	m.inserted = append(m.inserted, shift)
	return nil
}

type mockLister struct {
	events []model.CalendarEvent
	err    error

	called bool
	from   time.Time
	to     time.Time
}

func (m *mockLister) ListEvents(ctx context.Context, calendarID string, from, to time.Time, timeZone string) ([]model.CalendarEvent, error) {
	m.called = true
	m.from = from
	m.to = to
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func importConfig() *config.Config {
	return &config.Config{
		DatabaseURL: "postgres://localhost/weekshift",
		CalendarID:  "rota@group.calendar.google.com",
		Timezone:    "UTC",
	}
}

func TestImportSchedule(t *testing.T) {
	store := &mockImportStore{
		employees: []db.Employee{
			{ID: "emp-1", Username: "alice", Email: "Alice@example.com"},
		},
	}
	lister := &mockLister{
		events: []model.CalendarEvent{
			{StartDate: "2024-03-12", Summary: "Morning: alice,bob"},
		},
	}

	result, err := ImportSchedule(context.Background(), store, lister, importConfig(), zap.NewNop(), ImportOptions{
		Base:    time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC),
		SavedBy: "admin",
	})
	require.NoError(t, err)

	// A Wednesday base anchors the schedule on the upcoming Monday.
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), result.Anchor)
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), lister.from)
	assert.Equal(t, time.Date(2024, time.March, 17, 23, 59, 59, 999000000, time.UTC), lister.to)

	require.Len(t, store.inserted, 1)
	shift := store.inserted[0]
	assert.Equal(t, "(WN 11) 11-03-2024", shift.Name)
	assert.Equal(t, "admin", shift.SavedBy)
	assert.Equal(t, result.Anchor, shift.Date)

	// Tuesday morning carries both names from the event title.
	tuesday := result.Schedule[1]
	require.Len(t, tuesday, 2)
	assert.Equal(t, "1-0-alice-0", tuesday[0].ID())
	assert.Equal(t, "1-0-bob-1", tuesday[1].ID())
}

func TestImportScheduleDryRun(t *testing.T) {
	store := &mockImportStore{}
	lister := &mockLister{}

	result, err := ImportSchedule(context.Background(), store, lister, importConfig(), zap.NewNop(), ImportOptions{
		Base:   time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		DryRun: true,
	})
	require.NoError(t, err)

	assert.Nil(t, result.Shift)
	assert.Empty(t, store.inserted)
	require.NoError(t, result.Schedule.Validate())
}

func TestImportScheduleNoCalendarConfigured(t *testing.T) {
	cfg := importConfig()
	cfg.CalendarID = ""
	store := &mockImportStore{}
	lister := &mockLister{}

	_, err := ImportSchedule(context.Background(), store, lister, cfg, zap.NewNop(), ImportOptions{})
	assert.ErrorIs(t, err, ErrCalendarNotConfigured)

	// Configuration is checked before any external call.
	assert.False(t, lister.called)
}

func TestImportScheduleDefaultsSavedBy(t *testing.T) {
	store := &mockImportStore{}
	lister := &mockLister{}

	_, err := ImportSchedule(context.Background(), store, lister, importConfig(), zap.NewNop(), ImportOptions{
		Base: time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, SystemUser, store.inserted[0].SavedBy)
}

func TestImportScheduleResolvesAttendeeEmails(t *testing.T) {
	store := &mockImportStore{
		employees: []db.Employee{
			{ID: "emp-1", Username: "alice", Email: "Alice@Example.com"},
			{ID: "emp-2", Username: "bob"},
		},
	}
	lister := &mockLister{
		events: []model.CalendarEvent{
			{StartDate: "2024-03-11", Summary: "Shift", AttendeeEmails: []string{"alice@example.com"}, Slot: "middle"},
		},
	}

	result, err := ImportSchedule(context.Background(), store, lister, importConfig(), zap.NewNop(), ImportOptions{
		Base:   time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		DryRun: true,
	})
	require.NoError(t, err)

	monday := result.Schedule[0]
	require.Len(t, monday, 1)
	assert.Equal(t, "0-1-alice-0", monday[0].ID())
}
