package planner

import (
	"testing"
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wednesday = time.Date(2025, 9, 17, 12, 30, 0, 0, time.UTC)

func TestDailySlots_CountIsFloorOfAvailable(t *testing.T) {
	tests := []struct {
		name         string
		availableMin int
		want         int
	}{
		{"zero minutes", 0, 0},
		{"below one session", 49, 0},
		{"exactly one session", 50, 1},
		{"two and a half sessions", 125, 2},
		{"three sessions", 150, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := DailySlots(wednesday, tt.availableMin, DailyConfig{})
			assert.Len(t, slots, tt.want)
		})
	}
}

func TestDailySlots_SpacingFromAnchor(t *testing.T) {
	slots := DailySlots(wednesday, 150, DailyConfig{})
	require.Len(t, slots, 3)

	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "11:00", slots[1].Time)
	assert.Equal(t, "13:00", slots[2].Time)
	for _, s := range slots {
		assert.Equal(t, "2025-09-17", s.Date)
		assert.Equal(t, 50, s.DurationMin)
	}
}

func TestDailySlots_CustomConfig(t *testing.T) {
	slots := DailySlots(wednesday, 90, DailyConfig{SessionMin: 30, AnchorHour: 7, SpacingHours: 1})
	require.Len(t, slots, 3)
	assert.Equal(t, "07:00", slots[0].Time)
	assert.Equal(t, "08:00", slots[1].Time)
	assert.Equal(t, 30, slots[2].DurationMin)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday", wednesday, "2025-09-15"},
		{"monday itself", time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), "2025-09-15"},
		{"sunday belongs to preceding monday", time.Date(2025, 9, 21, 23, 0, 0, 0, time.UTC), "2025-09-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in).Format(domain.DateKey))
		})
	}
}

func TestWeekSlots_MapsConfiguredDays(t *testing.T) {
	plan := testutil.NewTestPlan(
		testutil.WithStudyDays(domain.DayMon, domain.DayFri),
		testutil.WithSessionsPerDay(2),
		testutil.WithPreferredTimes("09:00", "14:00"),
	)

	slots := WeekSlots(plan, WeekStart(wednesday))
	require.Len(t, slots, 4)

	assert.Equal(t, "2025-09-15", slots[0].Date)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "2025-09-15", slots[1].Date)
	assert.Equal(t, "14:00", slots[1].Time)
	assert.Equal(t, "2025-09-19", slots[2].Date)
	assert.Equal(t, "2025-09-19", slots[3].Date)
}

func TestWeekSlots_CyclesPreferredTimes(t *testing.T) {
	plan := testutil.NewTestPlan(
		testutil.WithStudyDays(domain.DayTue),
		testutil.WithSessionsPerDay(3),
		testutil.WithPreferredTimes("08:00", "19:00"),
	)

	slots := WeekSlots(plan, WeekStart(wednesday))
	require.Len(t, slots, 3)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "19:00", slots[1].Time)
	assert.Equal(t, "08:00", slots[2].Time, "third session wraps back to the first time")
}

func TestWeekSlots_SkipsUnknownDayCodes(t *testing.T) {
	plan := testutil.NewTestPlan(testutil.WithStudyDays("mon", "funday"))
	slots := WeekSlots(plan, WeekStart(wednesday))
	assert.Len(t, slots, plan.SessionsPerDay)
}

func TestWeekSlots_SundayLandsAtEndOfWeek(t *testing.T) {
	plan := testutil.NewTestPlan(
		testutil.WithStudyDays(domain.DaySun),
		testutil.WithSessionsPerDay(1),
	)
	slots := WeekSlots(plan, WeekStart(wednesday))
	require.Len(t, slots, 1)
	assert.Equal(t, "2025-09-21", slots[0].Date)
}
