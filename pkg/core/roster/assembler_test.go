package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/weekshift/pkg/core/model"
)

func TestAssembleEmpty(t *testing.T) {
	schedule := Assemble(nil, nil, time.UTC)

	require.Len(t, schedule, model.DaysPerWeek)
	for _, day := range schedule {
		assert.NotNil(t, day)
		assert.Empty(t, day)
	}
}

func TestAssembleScenario(t *testing.T) {
	events := []model.CalendarEvent{
		{
			StartTime: "2024-03-06T10:00:00Z", // Wednesday
			Summary:   "Morning: alice,bob | Evening: carol",
		},
		{
			StartTime:      "2024-03-07T10:00:00Z", // Thursday
			Summary:        "Team sync",
			AttendeeEmails: []string{"alice@x.com", "unknown@x.com"},
			Slot:           "middle",
		},
	}
	directory := map[string]string{"alice@x.com": "alice"}

	schedule := Assemble(events, directory, time.UTC)

	wednesday := schedule[2]
	require.Len(t, wednesday, 3)
	assert.Equal(t, "2-0-alice-0", wednesday[0].ID())
	assert.Equal(t, "alice", wednesday[0].Username)
	assert.Equal(t, "bob", wednesday[1].Username)
	assert.Equal(t, model.SlotMorning, wednesday[1].Key.Slot)
	assert.Equal(t, "carol", wednesday[2].Username)
	assert.Equal(t, model.SlotEvening, wednesday[2].Key.Slot)

	thursday := schedule[3]
	require.Len(t, thursday, 1)
	assert.Equal(t, "alice", thursday[0].Username)
	assert.Equal(t, model.SlotMiddle, thursday[0].Key.Slot)

	for _, day := range []int{0, 1, 4, 5, 6} {
		assert.Empty(t, schedule[day])
	}
}

func TestAssembleOrdersSlotsWithinDay(t *testing.T) {
	// Events arrive evening-first; sorting by id restores slot order.
	events := []model.CalendarEvent{
		{StartTime: "2024-03-06T18:00:00Z", Summary: "Evening: zoe"},
		{StartTime: "2024-03-06T08:00:00Z", Summary: "Morning: alice,bob"},
		{StartTime: "2024-03-06T12:00:00Z", Summary: "Middle: carol"},
	}

	schedule := Assemble(events, nil, time.UTC)

	day := schedule[2]
	require.Len(t, day, 4)

	var got []string
	for _, a := range day {
		got = append(got, a.ID())
	}
	assert.Equal(t, []string{"2-0-alice-0", "2-0-bob-1", "2-1-carol-0", "2-2-zoe-0"}, got)
}

func TestAssembleDuplicateNamesKeepDistinctIDs(t *testing.T) {
	events := []model.CalendarEvent{
		{StartTime: "2024-03-06T08:00:00Z", Summary: "Morning: alice,alice"},
	}

	schedule := Assemble(events, nil, time.UTC)

	day := schedule[2]
	require.Len(t, day, 2)
	assert.Equal(t, "2-0-alice-0", day[0].ID())
	assert.Equal(t, "2-0-alice-1", day[1].ID())
}

func TestAssembleMalformedEventsDegradeGracefully(t *testing.T) {
	events := []model.CalendarEvent{
		{Summary: "Morning: ghost"}, // no start: skipped
		{StartTime: "not-a-time", Summary: "Morning: ghost"},
		{StartTime: "2024-03-06T08:00:00Z", Summary: "Morning: alice"},
	}

	schedule := Assemble(events, nil, time.UTC)

	require.Len(t, schedule[2], 1)
	assert.Equal(t, "alice", schedule[2][0].Username)
}

func TestAssembleDeterministic(t *testing.T) {
	events := []model.CalendarEvent{
		{StartTime: "2024-03-06T10:00:00Z", Summary: "Morning: alice,bob | Evening: carol"},
		{StartTime: "2024-03-09T10:00:00Z", Summary: "dave, erin"},
	}

	first := Assemble(events, nil, time.UTC)
	second := Assemble(events, nil, time.UTC)

	assert.Equal(t, first, second)
}
