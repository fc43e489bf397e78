package service

import (
	"context"
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/intelligence"
	"github.com/ritmo-app/ritmo/internal/stats"
	"github.com/ritmo-app/ritmo/internal/timer"
)

// PlanService manages the active study plan and session generation.
type PlanService interface {
	GetActive(ctx context.Context) (*domain.StudyPlan, error)
	// Save validates the plan and installs it as the single active plan,
	// deactivating any previous one.
	Save(ctx context.Context, p *domain.StudyPlan) error

	// GenerateToday creates today's ad-hoc sessions from the profile's
	// daily availability. Returns the number created; zero when any
	// session already exists today.
	GenerateToday(ctx context.Context, now time.Time) (int, error)

	// GenerateWeek creates the current week's sessions from the active
	// plan. Returns the number created; zero when the week already has
	// any session.
	GenerateWeek(ctx context.Context, now time.Time) (int, error)
}

// SessionService manages study-session status transitions and queries.
type SessionService interface {
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	ListToday(ctx context.Context, now time.Time) ([]*domain.StudySession, error)
	ListWeek(ctx context.Context, now time.Time) ([]*domain.StudySession, error)
	ListAll(ctx context.Context) ([]*domain.StudySession, error)

	MarkSkipped(ctx context.Context, id string) error
	MarkAbandoned(ctx context.Context, id string) error

	// CompleteWithFeedback records a finished timer run: the session
	// becomes completed with its studied minutes, feedback and the subject
	// it was run under (nil keeps the session's existing subject), and the
	// streak cache is updated in the same transaction.
	CompleteWithFeedback(ctx context.Context, res *timer.Result, subject *domain.Subject, now time.Time) error
}

// ProgressSummary is the dashboard projection over session history.
type ProgressSummary struct {
	Week          stats.WeekProgress
	Streak        int
	LastStudyDate string
	Totals        []stats.SubjectTotal
	Message       string
}

// StatsService builds read-side projections over the full history.
type StatsService interface {
	Summary(ctx context.Context, now time.Time) (*ProgressSummary, error)
}

// SubjectService manages the subject catalog. Removal is a soft reference
// break: past sessions keep their denormalized subject name.
type SubjectService interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Remove(ctx context.Context, id string) error
}

// ProfileService manages the single onboarding profile.
type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	SaveOnboarding(ctx context.Context, p *domain.UserProfile) error
}

// CoachService runs the AI adjustment flow: summarize recent behavior, ask
// the model for new plan parameters and apply them to the active plan. Any
// failure leaves the plan untouched.
type CoachService interface {
	AdjustPlan(ctx context.Context, now time.Time) (*intelligence.PlanAdjustment, error)
}
