package model

import "strings"

// Slot is one of the three ordered shift slots within a day.
type Slot int

const (
	SlotMorning Slot = 0
	SlotMiddle  Slot = 1
	SlotEvening Slot = 2
)

// Slots lists all slots in display order.
var Slots = []Slot{SlotMorning, SlotMiddle, SlotEvening}

func (s Slot) String() string {
	switch s {
	case SlotMorning:
		return "morning"
	case SlotMiddle:
		return "middle"
	case SlotEvening:
		return "evening"
	}
	return "unknown"
}

// SlotFromLabel matches a free-text label against the slot names by
// lower-cased substring containment, so "Morning Crew" matches morning.
func SlotFromLabel(label string) (Slot, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(label, "morning"):
		return SlotMorning, true
	case strings.Contains(label, "middle"):
		return SlotMiddle, true
	case strings.Contains(label, "evening"):
		return SlotEvening, true
	}
	return 0, false
}

// SlotFromProperty maps a calendar event's private "slot" property to a slot.
// An absent property means morning; anything other than morning or middle
// means evening.
func SlotFromProperty(value string) Slot {
	switch value {
	case "", "morning":
		return SlotMorning
	case "middle":
		return SlotMiddle
	}
	return SlotEvening
}
