// Package stats holds the read-side projections over session history:
// the streak calculator and the progress aggregator. Everything here is
// pure; callers load history and persist caches themselves.
package stats

import (
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
)

// Streak walks backward from today counting consecutive calendar days with
// at least one completed session. A day with multiple completions counts
// once. When today has no completed session yet, the walk anchors on
// yesterday, so an unbroken run is reported as "not yet extended" rather
// than broken; the distinction is not visible in the returned integer.
func Streak(sessions []*domain.StudySession, today time.Time) int {
	days := make(map[string]bool)
	for _, s := range sessions {
		if s.Status == domain.SessionCompleted {
			days[s.Date] = true
		}
	}
	if len(days) == 0 {
		return 0
	}

	anchor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !days[anchor.Format(domain.DateKey)] {
		anchor = anchor.AddDate(0, 0, -1)
	}

	streak := 0
	for d := anchor; days[d.Format(domain.DateKey)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LastStudyDate returns the most recent calendar day with a completed
// session, or "" when history holds none.
func LastStudyDate(sessions []*domain.StudySession) string {
	last := ""
	for _, s := range sessions {
		if s.Status == domain.SessionCompleted && s.Date > last {
			last = s.Date
		}
	}
	return last
}
