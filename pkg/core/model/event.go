package model

// CalendarEvent is the core's view of one external calendar event. The
// calendar client converts provider types into this shape so classification
// stays independent of any API client.
type CalendarEvent struct {
	// StartTime is the RFC3339 start instant, if the event has one.
	StartTime string
	// StartDate is the date-only start ("2006-01-02") for all-day events.
	// Only consulted when StartTime is empty.
	StartDate string

	Summary     string
	Description string

	// AttendeeEmails lists the email addresses of the event's attendees.
	AttendeeEmails []string

	// Slot is the event's private extended property "slot", if set.
	Slot string
}
