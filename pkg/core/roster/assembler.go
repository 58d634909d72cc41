package roster

import (
	"sort"
	"time"

	"github.com/openrota/weekshift/pkg/core/model"
)

// Assemble folds calendar events into a weekly schedule. Events are
// classified in input order and their assignments appended to the matching
// day bucket; each day is then sorted by serialized assignment key, which
// groups the day's entries by slot. The function is pure:
// identical inputs always produce identical schedules.
func Assemble(events []model.CalendarEvent, usersByEmail map[string]string, loc *time.Location) model.Schedule {
	schedule := model.NewSchedule()

	for _, ev := range events {
		for _, placement := range ClassifyEvent(ev, usersByEmail, loc) {
			for ordinal, username := range placement.Usernames {
				schedule[placement.Day] = append(schedule[placement.Day], model.Assignment{
					Username: username,
					Key: model.AssignmentKey{
						Day:      placement.Day,
						Slot:     placement.Slot,
						Username: username,
						Ordinal:  ordinal,
					},
				})
			}
		}
	}

	for _, day := range schedule {
		sort.Slice(day, func(i, j int) bool {
			return day[i].ID() < day[j].ID()
		})
	}

	return schedule
}
