package service

import (
	"context"
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/intelligence"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/stats"
)

// snapshotWindowDays bounds how far back the behavior snapshot looks.
const snapshotWindowDays = 30

type coachService struct {
	adjust   intelligence.AdjustService
	sessions repository.SessionRepo
	plans    PlanService
	profiles ProfileService
}

func NewCoachService(adjust intelligence.AdjustService, sessions repository.SessionRepo, plans PlanService, profiles ProfileService) CoachService {
	return &coachService{adjust: adjust, sessions: sessions, plans: plans, profiles: profiles}
}

func (s *coachService) AdjustPlan(ctx context.Context, now time.Time) (*intelligence.PlanAdjustment, error) {
	// Resolve the plan first: without one there is nothing to adjust and
	// no model call should be made.
	plan, err := s.plans.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.buildSnapshot(ctx, profile, now)
	if err != nil {
		return nil, err
	}

	adjustment, err := s.adjust.ProposeAdjustment(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	// The recurrence is kept; only the model-tuned parameters change.
	adjusted := &domain.StudyPlan{
		SessionDuration: adjustment.SessionDuration,
		SessionsPerDay:  adjustment.SessionsPerDay,
		StudyDays:       plan.StudyDays,
		PreferredTimes:  plan.PreferredTimes,
	}
	if err := s.plans.Save(ctx, adjusted); err != nil {
		return nil, err
	}
	return adjustment, nil
}

func (s *coachService) buildSnapshot(ctx context.Context, profile *domain.UserProfile, now time.Time) (intelligence.BehaviorSnapshot, error) {
	from := now.AddDate(0, 0, -snapshotWindowDays).Format(domain.DateKey)
	to := now.Format(domain.DateKey)
	sessions, err := s.sessions.ListRange(ctx, from, to)
	if err != nil {
		return intelligence.BehaviorSnapshot{}, err
	}

	snap := intelligence.BehaviorSnapshot{
		CurrentStreak:     stats.Streak(sessions, now),
		StudyGoal:         profile.StudyGoal,
		WeeklyFrequency:   profile.WeeklyFrequency,
		FocusCapacity:     profile.FocusCapacity,
		BestTime:          profile.BestTime,
		MainDifficulty:    profile.MainDifficulty,
		RoutineStyle:      profile.RoutineStyle,
		DailyAvailableMin: profile.DailyAvailableMin,
	}

	totalMinutes := 0
	for _, sess := range sessions {
		snap.TotalSessions++
		switch sess.Status {
		case domain.SessionCompleted:
			snap.CompletedSessions++
			totalMinutes += sess.EffectiveMinutes()
		case domain.SessionAbandoned:
			snap.AbandonedSessions++
		case domain.SessionSkipped:
			snap.SkippedSessions++
		}
	}
	if snap.CompletedSessions > 0 {
		snap.AverageDurationMin = float64(totalMinutes) / float64(snap.CompletedSessions)
	}
	return snap, nil
}
