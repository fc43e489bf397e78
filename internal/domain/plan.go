package domain

import (
	"fmt"
	"time"
)

// StudyPlan is the user's configured recurrence: which weekdays to study,
// at which times, how long each session runs and how many per day. At most
// one plan is active; the AI adjustment flow rewrites SessionDuration and
// SessionsPerDay wholesale.
type StudyPlan struct {
	ID              string
	SessionDuration int // minutes
	SessionsPerDay  int
	StudyDays       []string // weekday codes, mon..sun
	PreferredTimes  []string // ordered HH:MM values
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *StudyPlan) Validate() error {
	if p.SessionDuration <= 0 {
		return fmt.Errorf("session duration must be positive, got %d", p.SessionDuration)
	}
	if p.SessionsPerDay <= 0 {
		return fmt.Errorf("sessions per day must be positive, got %d", p.SessionsPerDay)
	}
	for _, d := range p.StudyDays {
		if _, ok := WeekdayOffsets[d]; !ok {
			return fmt.Errorf("invalid study day %q (use mon..sun)", d)
		}
	}
	if len(p.PreferredTimes) == 0 {
		return fmt.Errorf("at least one preferred time is required")
	}
	for _, t := range p.PreferredTimes {
		if _, err := time.Parse(TimeKey, t); err != nil {
			return fmt.Errorf("invalid preferred time %q: %w", t, err)
		}
	}
	return nil
}
