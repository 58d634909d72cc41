package roster

import (
	"strings"
	"time"

	"github.com/openrota/weekshift/pkg/core/model"
)

// Placement is the classifier's verdict for one slot of one event: these
// usernames belong in this (day, slot) cell, in this order.
type Placement struct {
	Day       int
	Slot      model.Slot
	Usernames []string
}

// ClassifyEvent maps one calendar event to zero or more placements using a
// tiered heuristic. The tiers are tried in strict precedence order and the
// first one that yields any names wins:
//
//  1. structured "label: name,name | ..." parse of the summary, then the
//     description; the only tier that can fill multiple slots at once;
//  2. attendee emails resolved against the usersByEmail directory, slot taken
//     from the event's private "slot" property;
//  3. the raw summary split on commas as literal usernames, slot as tier 2.
//
// Events without any start information are skipped entirely; incomplete
// calendar data must not abort a whole import.
func ClassifyEvent(ev model.CalendarEvent, usersByEmail map[string]string, loc *time.Location) []Placement {
	day, ok := eventDay(ev, loc)
	if !ok {
		return nil
	}

	bySlot := namesBySlot(ev.Summary)
	if bySlot == nil {
		bySlot = namesBySlot(ev.Description)
	}
	if bySlot != nil {
		placements := make([]Placement, 0, len(model.Slots))
		for _, slot := range model.Slots {
			if names := bySlot[slot]; len(names) > 0 {
				placements = append(placements, Placement{Day: day, Slot: slot, Usernames: names})
			}
		}
		return placements
	}

	if names := resolveAttendees(ev.AttendeeEmails, usersByEmail); len(names) > 0 {
		return []Placement{{Day: day, Slot: model.SlotFromProperty(ev.Slot), Usernames: names}}
	}

	if names := splitNames(ev.Summary); len(names) > 0 {
		return []Placement{{Day: day, Slot: model.SlotFromProperty(ev.Slot), Usernames: names}}
	}

	return nil
}

// eventDay buckets the event's start instant into a Monday-first day index.
// The timestamp start is preferred; all-day events fall back to the date-only
// start interpreted in the configured location.
func eventDay(ev model.CalendarEvent, loc *time.Location) (int, bool) {
	var start time.Time
	switch {
	case ev.StartTime != "":
		t, err := time.Parse(time.RFC3339, ev.StartTime)
		if err != nil {
			return 0, false
		}
		start = t
	case ev.StartDate != "":
		t, err := time.ParseInLocation("2006-01-02", ev.StartDate, loc)
		if err != nil {
			return 0, false
		}
		start = t
	default:
		return 0, false
	}

	// time.Weekday counts Sunday=0; the schedule counts Monday=0.
	weekday := int(start.In(loc).Weekday())
	if weekday == 0 {
		return 6, true
	}
	return weekday - 1, true
}

// namesBySlot parses the structured "label: name,name | ..." grammar. It
// returns nil when the text yields no slot at all; slots without names are
// simply absent from the map.
func namesBySlot(text string) map[model.Slot][]string {
	if text == "" {
		return nil
	}

	out := make(map[model.Slot][]string)
	for _, segment := range strings.Split(text, "|") {
		label, namesRaw, found := strings.Cut(segment, ":")
		if !found {
			continue
		}
		slot, ok := model.SlotFromLabel(label)
		if !ok {
			continue
		}
		if names := splitNames(namesRaw); len(names) > 0 {
			out[slot] = names
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// resolveAttendees maps attendee emails to usernames through the directory,
// discarding attendees the directory does not know.
func resolveAttendees(emails []string, usersByEmail map[string]string) []string {
	if len(emails) == 0 || usersByEmail == nil {
		return nil
	}

	var names []string
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if username, ok := usersByEmail[email]; ok && username != "" {
			names = append(names, username)
		}
	}
	return names
}

// splitNames splits a comma-separated list, trimming entries and discarding
// empties.
func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
