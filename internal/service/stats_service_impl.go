package service

import (
	"context"
	"time"

	"github.com/ritmo-app/ritmo/internal/planner"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/stats"
)

type statsService struct {
	sessions repository.SessionRepo
}

func NewStatsService(sessions repository.SessionRepo) StatsService {
	return &statsService{sessions: sessions}
}

// Summary recomputes every projection from full history. The streak shown
// here is derived from history, not the cache, so a stale cache can never
// inflate the dashboard.
func (s *statsService) Summary(ctx context.Context, now time.Time) (*ProgressSummary, error) {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	week := stats.WeekOf(sessions, planner.WeekStart(now))
	return &ProgressSummary{
		Week:          week,
		Streak:        stats.Streak(sessions, now),
		LastStudyDate: stats.LastStudyDate(sessions),
		Totals:        stats.SubjectTotals(sessions),
		Message:       stats.MotivationalMessage(week.Percent()),
	}, nil
}
