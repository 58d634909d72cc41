package calendarclient

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/openrota/weekshift/pkg/core/model"
)

// Client wraps the Google Calendar API client.
type Client struct {
	service *calendar.Service
}

// NewClient creates a read-only Calendar client authenticated with a
// service-account credential, so imports can run unattended.
func NewClient(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Client{service: service}, nil
}

// ListEvents lists the single events of a calendar within a time window,
// ordered by start time, converted to the core's event shape.
func (c *Client) ListEvents(ctx context.Context, calendarID string, from, to time.Time, timeZone string) ([]model.CalendarEvent, error) {
	call := c.service.Events.List(calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")
	if timeZone != "" {
		call = call.TimeZone(timeZone)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]model.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, convertEvent(item))
	}

	return events, nil
}

// convertEvent maps a Google event onto model.CalendarEvent. Absent fields
// stay zero-valued; the classifier decides what to do with incomplete events.
func convertEvent(item *calendar.Event) model.CalendarEvent {
	ev := model.CalendarEvent{
		Summary:     item.Summary,
		Description: item.Description,
	}

	if item.Start != nil {
		ev.StartTime = item.Start.DateTime
		ev.StartDate = item.Start.Date
	}

	for _, attendee := range item.Attendees {
		if attendee != nil && attendee.Email != "" {
			ev.AttendeeEmails = append(ev.AttendeeEmails, attendee.Email)
		}
	}

	if item.ExtendedProperties != nil && item.ExtendedProperties.Private != nil {
		ev.Slot = item.ExtendedProperties.Private["slot"]
	}

	return ev
}
