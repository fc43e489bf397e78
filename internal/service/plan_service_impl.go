package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/planner"
	"github.com/ritmo-app/ritmo/internal/repository"
)

type planService struct {
	plans    repository.PlanRepo
	sessions repository.SessionRepo
	profiles repository.ProfileRepo
}

func NewPlanService(plans repository.PlanRepo, sessions repository.SessionRepo, profiles repository.ProfileRepo) PlanService {
	return &planService{plans: plans, sessions: sessions, profiles: profiles}
}

func (s *planService) GetActive(ctx context.Context) (*domain.StudyPlan, error) {
	p, err := s.plans.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoActivePlan
	}
	return p, err
}

func (s *planService) Save(ctx context.Context, p *domain.StudyPlan) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Active = true

	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating plan: %w", err)
	}
	return s.plans.Create(ctx, p)
}

func (s *planService) GenerateToday(ctx context.Context, now time.Time) (int, error) {
	today := now.Format(domain.DateKey)
	exists, err := s.sessions.ExistsInRange(ctx, today, today)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	profile, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrOnboardingIncomplete
	}
	if err != nil {
		return 0, err
	}

	// A configured plan overrides the default session length.
	cfg := planner.DailyConfig{}
	if plan, err := s.plans.GetActive(ctx); err == nil {
		cfg.SessionMin = plan.SessionDuration
	}

	slots := planner.DailySlots(now, profile.DailyAvailableMin, cfg)
	return len(slots), s.persistSlots(ctx, slots)
}

func (s *planService) GenerateWeek(ctx context.Context, now time.Time) (int, error) {
	weekStart := planner.WeekStart(now)
	from := weekStart.Format(domain.DateKey)
	to := weekStart.AddDate(0, 0, 6).Format(domain.DateKey)

	exists, err := s.sessions.ExistsInRange(ctx, from, to)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	plan, err := s.GetActive(ctx)
	if err != nil {
		return 0, err
	}

	slots := planner.WeekSlots(plan, weekStart)
	return len(slots), s.persistSlots(ctx, slots)
}

func (s *planService) persistSlots(ctx context.Context, slots []planner.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	created := time.Now().UTC()
	sessions := make([]*domain.StudySession, 0, len(slots))
	for _, slot := range slots {
		sessions = append(sessions, &domain.StudySession{
			ID:              uuid.New().String(),
			Date:            slot.Date,
			Time:            slot.Time,
			DurationPlanned: slot.DurationMin,
			Status:          domain.SessionPending,
			CreatedAt:       created,
		})
	}
	return s.sessions.CreateBatch(ctx, sessions)
}
