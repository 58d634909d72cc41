package roster

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultAnchorRule is the cadence published schedules anchor to: the
// upcoming Monday of each week.
const DefaultAnchorRule = "FREQ=WEEKLY;BYDAY=MO"

// anchorEpoch is a Monday midnight UTC; pinning DTSTART here keeps rule
// occurrences on midnight boundaries regardless of when the rule is evaluated.
var anchorEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// NextAnchor returns the first occurrence of the anchor rule strictly after
// base, normalized to midnight UTC. With the default rule this is the next
// Monday; a Monday base rolls over to the following week.
func NextAnchor(ruleStr string, base time.Time) (time.Time, error) {
	if ruleStr == "" {
		ruleStr = DefaultAnchorRule
	}

	opt, err := rrule.StrToROption(ruleStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse anchor rule: %w", err)
	}

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build anchor rule: %w", err)
	}
	rule.DTStart(anchorEpoch)

	next := rule.After(base.UTC(), false)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("anchor rule %q has no occurrence after %s", ruleStr, base.Format("2006-01-02"))
	}

	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC), nil
}

// WeekWindow returns the import window covered by a schedule anchored at the
// given Monday: anchor midnight through the end of the following Sunday, UTC.
func WeekWindow(anchor time.Time) (time.Time, time.Time) {
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// ShiftName builds the human label for a published schedule version,
// embedding the ISO week number and the anchor date: "(WN 10) 04-03-2024".
func ShiftName(anchor time.Time) string {
	_, week := anchor.ISOWeek()
	return fmt.Sprintf("(WN %d) %s", week, anchor.Format("02-01-2006"))
}
