package model

import "fmt"

// DaysPerWeek is the fixed length of a schedule, Monday through Sunday.
const DaysPerWeek = 7

// Schedule is an ordered sequence of exactly 7 days (Monday..Sunday), each an
// ordered, never-nil sequence of assignments.
type Schedule [][]Assignment

// NewSchedule returns an empty schedule with 7 initialized day buckets.
func NewSchedule() Schedule {
	s := make(Schedule, DaysPerWeek)
	for i := range s {
		s[i] = []Assignment{}
	}
	return s
}

// Validate checks the fixed-shape invariant: 7 days, none of them nil.
func (s Schedule) Validate() error {
	if len(s) != DaysPerWeek {
		return fmt.Errorf("schedule must have %d days, got %d", DaysPerWeek, len(s))
	}
	for i, day := range s {
		if day == nil {
			return fmt.Errorf("schedule day %d is missing", i)
		}
	}
	return nil
}
