package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOnboardingIncomplete
	}
	return p, err
}

func (s *profileService) SaveOnboarding(ctx context.Context, p *domain.UserProfile) error {
	if p.DailyAvailableMin <= 0 {
		return fmt.Errorf("daily available minutes must be positive, got %d", p.DailyAvailableMin)
	}
	p.ID = domain.DefaultProfileID
	p.OnboardingCompleted = true
	return s.profiles.Upsert(ctx, p)
}
