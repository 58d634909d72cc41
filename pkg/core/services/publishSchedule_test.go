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
)

func TestPublishSchedule(t *testing.T) {
	store := &mockImportStore{}
	schedule := model.NewSchedule()
	schedule[0] = append(schedule[0], model.Assignment{
		Username: "alice",
		Key:      model.AssignmentKey{Day: 0, Slot: model.SlotMorning, Username: "alice"},
	})

	shift, err := PublishSchedule(context.Background(), store, &config.Config{}, zap.NewNop(),
		schedule, "admin", time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "(WN 11) 11-03-2024", shift.Name)
	assert.Equal(t, "admin", shift.SavedBy)
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), shift.Date)
	require.Len(t, store.inserted, 1)
}

func TestPublishScheduleRejectsMalformed(t *testing.T) {
	store := &mockImportStore{}

	// Six days instead of seven.
	schedule := model.Schedule(make([][]model.Assignment, 6))

	_, err := PublishSchedule(context.Background(), store, &config.Config{}, zap.NewNop(),
		schedule, "admin", time.Time{})
	assert.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestPublishScheduleVersionsNeverOverwrite(t *testing.T) {
	store := &mockImportStore{}
	base := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)

	_, err := PublishSchedule(context.Background(), store, &config.Config{}, zap.NewNop(),
		model.NewSchedule(), "admin", base)
	require.NoError(t, err)

	second, err := PublishSchedule(context.Background(), store, &config.Config{}, zap.NewNop(),
		model.NewSchedule(), "admin", base)
	require.NoError(t, err)

	require.Len(t, store.inserted, 2)
	assert.Equal(t, int64(2), second.ID)
}
