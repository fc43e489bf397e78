package stats

import (
	"sort"
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
)

// WeekProgress summarizes one week's sessions for the dashboard.
type WeekProgress struct {
	Completed int
	Total     int
}

// Percent returns the completion ratio as 0..100, 0 for an empty week.
func (w WeekProgress) Percent() float64 {
	if w.Total == 0 {
		return 0
	}
	return float64(w.Completed) / float64(w.Total) * 100
}

// WeekOf counts completed vs. total sessions scheduled in the week starting
// at weekStart (Monday 00:00).
func WeekOf(sessions []*domain.StudySession, weekStart time.Time) WeekProgress {
	from := weekStart.Format(domain.DateKey)
	to := weekStart.AddDate(0, 0, 6).Format(domain.DateKey)

	var p WeekProgress
	for _, s := range sessions {
		if s.Date < from || s.Date > to {
			continue
		}
		p.Total++
		if s.Status == domain.SessionCompleted {
			p.Completed++
		}
	}
	return p
}

// SubjectTotal is the studied minutes accumulated for one subject.
type SubjectTotal struct {
	SubjectID   string
	SubjectName string
	Minutes     int
}

// SubjectTotals sums studied minutes of completed sessions per subject,
// falling back to the planned duration when no actual duration was
// recorded, sorted by total descending. Sessions without a subject are
// grouped under an empty id.
func SubjectTotals(sessions []*domain.StudySession) []SubjectTotal {
	byID := make(map[string]*SubjectTotal)
	var order []string
	for _, s := range sessions {
		if s.Status != domain.SessionCompleted {
			continue
		}
		t, ok := byID[s.SubjectID]
		if !ok {
			t = &SubjectTotal{SubjectID: s.SubjectID, SubjectName: s.SubjectName}
			byID[s.SubjectID] = t
			order = append(order, s.SubjectID)
		}
		t.Minutes += s.EffectiveMinutes()
	}

	totals := make([]SubjectTotal, 0, len(order))
	for _, id := range order {
		totals = append(totals, *byID[id])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Minutes > totals[j].Minutes
	})
	return totals
}
