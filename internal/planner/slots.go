// Package planner derives study-session slots from user configuration.
// Functions here are pure; persistence and idempotence checks live in the
// service layer.
package planner

import (
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
)

// Slot is one generated session position before persistence.
type Slot struct {
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	DurationMin int
}

const (
	// DefaultSessionMin is the session length assumed for ad-hoc daily
	// generation when no plan is configured.
	DefaultSessionMin = 50

	// DefaultAnchorHour is the first slot's hour for daily generation.
	DefaultAnchorHour = 9

	// DefaultSpacingHours separates consecutive daily slots.
	DefaultSpacingHours = 2
)

// DailyConfig tunes ad-hoc daily generation. Zero values take defaults.
type DailyConfig struct {
	SessionMin   int
	AnchorHour   int
	SpacingHours int
}

func (c DailyConfig) withDefaults() DailyConfig {
	if c.SessionMin <= 0 {
		c.SessionMin = DefaultSessionMin
	}
	if c.AnchorHour <= 0 {
		c.AnchorHour = DefaultAnchorHour
	}
	if c.SpacingHours <= 0 {
		c.SpacingHours = DefaultSpacingHours
	}
	return c
}

// DailySlots emits floor(availableMin / sessionMin) slots for the given day,
// spaced at a fixed interval from the anchor hour. Zero available minutes
// yields zero slots; that is not an error.
func DailySlots(day time.Time, availableMin int, cfg DailyConfig) []Slot {
	cfg = cfg.withDefaults()
	count := availableMin / cfg.SessionMin
	if count <= 0 {
		return nil
	}

	date := day.Format(domain.DateKey)
	start := time.Date(day.Year(), day.Month(), day.Day(), cfg.AnchorHour, 0, 0, 0, day.Location())

	slots := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		at := start.Add(time.Duration(i*cfg.SpacingHours) * time.Hour)
		slots = append(slots, Slot{
			Date:        date,
			Time:        at.Format(domain.TimeKey),
			DurationMin: cfg.SessionMin,
		})
	}
	return slots
}

// WeekStart returns Monday 00:00 of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// WeekSlots maps a plan's weekday codes onto the week beginning at weekStart
// and emits SessionsPerDay slots per configured day at the plan's preferred
// times, cycling through the list when fewer times than sessions are
// configured. Unknown weekday codes are skipped.
func WeekSlots(plan *domain.StudyPlan, weekStart time.Time) []Slot {
	if plan.SessionsPerDay <= 0 || len(plan.PreferredTimes) == 0 {
		return nil
	}

	var slots []Slot
	for _, code := range plan.StudyDays {
		offset, ok := domain.WeekdayOffsets[code]
		if !ok {
			continue
		}
		date := weekStart.AddDate(0, 0, offset).Format(domain.DateKey)
		for i := 0; i < plan.SessionsPerDay; i++ {
			slots = append(slots, Slot{
				Date:        date,
				Time:        plan.PreferredTimes[i%len(plan.PreferredTimes)],
				DurationMin: plan.SessionDuration,
			})
		}
	}
	return slots
}
