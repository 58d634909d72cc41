package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/weekshift/pkg/core/model"
)

// 2024-03-06 is a Wednesday.
const wednesdayStart = "2024-03-06T10:00:00Z"

func TestClassifyEventStructuredTitle(t *testing.T) {
	ev := model.CalendarEvent{
		StartTime: wednesdayStart,
		Summary:   "Morning: alice,bob | Evening: carol",
	}

	placements := ClassifyEvent(ev, nil, time.UTC)
	require.Len(t, placements, 2)

	assert.Equal(t, 2, placements[0].Day)
	assert.Equal(t, model.SlotMorning, placements[0].Slot)
	assert.Equal(t, []string{"alice", "bob"}, placements[0].Usernames)

	assert.Equal(t, 2, placements[1].Day)
	assert.Equal(t, model.SlotEvening, placements[1].Slot)
	assert.Equal(t, []string{"carol"}, placements[1].Usernames)
}

func TestClassifyEventStructuredSingleSlot(t *testing.T) {
	// A morning-only segment fills morning only, not three empty slots.
	ev := model.CalendarEvent{
		StartTime: wednesdayStart,
		Summary:   "Morning Crew: alice",
	}

	placements := ClassifyEvent(ev, nil, time.UTC)
	require.Len(t, placements, 1)
	assert.Equal(t, model.SlotMorning, placements[0].Slot)
	assert.Equal(t, []string{"alice"}, placements[0].Usernames)
}

func TestClassifyEventStructuredDescriptionFallback(t *testing.T) {
	ev := model.CalendarEvent{
		StartTime:   wednesdayStart,
		Summary:     "Weekly plan",
		Description: "middle: dave, erin",
	}

	placements := ClassifyEvent(ev, nil, time.UTC)
	require.Len(t, placements, 1)
	assert.Equal(t, model.SlotMiddle, placements[0].Slot)
	assert.Equal(t, []string{"dave", "erin"}, placements[0].Usernames)
}

func TestClassifyEventStructuredWinsOverAttendees(t *testing.T) {
	// Both tiers could match; the structured parse must be used exclusively.
	ev := model.CalendarEvent{
		StartTime:      wednesdayStart,
		Summary:        "Morning: alice",
		AttendeeEmails: []string{"bob@x.com"},
		Slot:           "evening",
	}
	directory := map[string]string{"bob@x.com": "bob"}

	placements := ClassifyEvent(ev, directory, time.UTC)
	require.Len(t, placements, 1)
	assert.Equal(t, model.SlotMorning, placements[0].Slot)
	assert.Equal(t, []string{"alice"}, placements[0].Usernames)
}

func TestClassifyEventAttendeeResolution(t *testing.T) {
	ev := model.CalendarEvent{
		StartTime:      wednesdayStart,
		Summary:        "Team sync",
		AttendeeEmails: []string{"Alice@X.com", "unknown@x.com"},
		Slot:           "middle",
	}
	directory := map[string]string{"alice@x.com": "alice"}

	placements := ClassifyEvent(ev, directory, time.UTC)
	require.Len(t, placements, 1)
	assert.Equal(t, 2, placements[0].Day)
	assert.Equal(t, model.SlotMiddle, placements[0].Slot)
	// Unresolved attendees are discarded, not failed.
	assert.Equal(t, []string{"alice"}, placements[0].Usernames)
}

func TestClassifyEventAttendeeSlotDefaults(t *testing.T) {
	directory := map[string]string{"alice@x.com": "alice"}

	tests := []struct {
		name     string
		slot     string
		expected model.Slot
	}{
		{"absent property means morning", "", model.SlotMorning},
		{"morning", "morning", model.SlotMorning},
		{"middle", "middle", model.SlotMiddle},
		{"anything else means evening", "night", model.SlotEvening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := model.CalendarEvent{
				StartTime:      wednesdayStart,
				AttendeeEmails: []string{"alice@x.com"},
				Slot:           tt.slot,
			}

			placements := ClassifyEvent(ev, directory, time.UTC)
			require.Len(t, placements, 1)
			assert.Equal(t, tt.expected, placements[0].Slot)
		})
	}
}

func TestClassifyEventRawTitleFallback(t *testing.T) {
	ev := model.CalendarEvent{
		StartTime: wednesdayStart,
		Summary:   "alice, bob, ,carol",
		Slot:      "evening",
	}

	placements := ClassifyEvent(ev, nil, time.UTC)
	require.Len(t, placements, 1)
	assert.Equal(t, model.SlotEvening, placements[0].Slot)
	assert.Equal(t, []string{"alice", "bob", "carol"}, placements[0].Usernames)
}

func TestClassifyEventUnresolvedAttendeesFallToRawTitle(t *testing.T) {
	// Attendee resolution only fires when at least one attendee resolves.
	ev := model.CalendarEvent{
		StartTime:      wednesdayStart,
		Summary:        "alice",
		AttendeeEmails: []string{"unknown@x.com"},
	}
	directory := map[string]string{"alice@x.com": "alice"}

	placements := ClassifyEvent(ev, directory, time.UTC)
	require.Len(t, placements, 1)
	assert.Equal(t, []string{"alice"}, placements[0].Usernames)
}

func TestClassifyEventNoStartIsSkipped(t *testing.T) {
	ev := model.CalendarEvent{Summary: "Morning: alice"}

	assert.Nil(t, ClassifyEvent(ev, nil, time.UTC))
}

func TestClassifyEventNoNamesAnywhere(t *testing.T) {
	ev := model.CalendarEvent{StartTime: wednesdayStart}

	assert.Nil(t, ClassifyEvent(ev, nil, time.UTC))
}

func TestEventDayBuckets(t *testing.T) {
	tests := []struct {
		name     string
		ev       model.CalendarEvent
		loc      string
		expected int
	}{
		{"Wednesday timestamp", model.CalendarEvent{StartTime: wednesdayStart}, "UTC", 2},
		{"Monday maps to zero", model.CalendarEvent{StartTime: "2024-03-04T08:00:00Z"}, "UTC", 0},
		{"Sunday maps to six", model.CalendarEvent{StartTime: "2024-03-10T08:00:00Z"}, "UTC", 6},
		{"date-only fallback", model.CalendarEvent{StartDate: "2024-03-08"}, "UTC", 4},
		{"timezone shifts the day", model.CalendarEvent{StartTime: "2024-03-06T23:30:00Z"}, "Asia/Tokyo", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.loc)
			require.NoError(t, err)

			day, ok := eventDay(tt.ev, loc)
			require.True(t, ok)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestEventDayRejectsUnparseable(t *testing.T) {
	_, ok := eventDay(model.CalendarEvent{StartTime: "yesterday"}, time.UTC)
	assert.False(t, ok)

	_, ok = eventDay(model.CalendarEvent{}, time.UTC)
	assert.False(t, ok)
}
