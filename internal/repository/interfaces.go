package repository

import (
	"context"

	"github.com/ritmo-app/ritmo/internal/domain"
)

// SessionRepo is the persistence boundary for study sessions. The four
// operations the planning core needs are batch insert, read-all, update by
// id and range filtering by calendar day; everything else is derived.
type SessionRepo interface {
	CreateBatch(ctx context.Context, sessions []*domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	Update(ctx context.Context, s *domain.StudySession) error
	ListAll(ctx context.Context) ([]*domain.StudySession, error)
	// ListRange returns sessions with fromDate <= scheduled_date <= toDate,
	// ordered by date then time.
	ListRange(ctx context.Context, fromDate, toDate string) ([]*domain.StudySession, error)
	// ExistsInRange reports whether any session falls in the date range.
	// The plan generator uses this coarse check for idempotence.
	ExistsInRange(ctx context.Context, fromDate, toDate string) (bool, error)
}

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	// GetActive returns the single active plan, or ErrNotFound.
	GetActive(ctx context.Context) (*domain.StudyPlan, error)
	Create(ctx context.Context, p *domain.StudyPlan) error
	Update(ctx context.Context, p *domain.StudyPlan) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

type StreakRepo interface {
	Get(ctx context.Context) (*domain.StreakState, error)
	Upsert(ctx context.Context, s *domain.StreakState) error
}
