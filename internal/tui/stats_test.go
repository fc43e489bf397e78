package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ritmo-app/ritmo/internal/service"
	"github.com/ritmo-app/ritmo/internal/stats"
)

func TestStatsModel_View(t *testing.T) {
	m := NewStatsModel(&service.ProgressSummary{
		Week:          stats.WeekProgress{Completed: 3, Total: 4},
		Streak:        5,
		LastStudyDate: "2025-09-17",
		Totals: []stats.SubjectTotal{
			{SubjectID: "s1", SubjectName: "Math", Minutes: 100},
			{SubjectID: "s2", SubjectName: "History", Minutes: 30},
		},
		Message: "More than halfway there. You're crushing it!",
	})

	view := m.View()
	assert.Contains(t, view, "3/4 sessions (75%)")
	assert.Contains(t, view, "Streak: 5 day(s)")
	assert.Contains(t, view, "Math")
	assert.Contains(t, view, "crushing it")
}

func TestStatsModel_ViewEmpty(t *testing.T) {
	m := NewStatsModel(&service.ProgressSummary{
		Message: "Let's get started! The first step is always the most important one.",
	})

	view := m.View()
	assert.Contains(t, view, "No completed sessions yet.")
}
