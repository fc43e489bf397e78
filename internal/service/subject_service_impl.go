package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/repository"
)

type subjectService struct {
	subjects repository.SubjectRepo
}

func NewSubjectService(subjects repository.SubjectRepo) SubjectService {
	return &subjectService{subjects: subjects}
}

func (s *subjectService) Create(ctx context.Context, subject *domain.Subject) error {
	if subject.Name == "" {
		return fmt.Errorf("subject name is required")
	}
	if subject.ID == "" {
		subject.ID = uuid.New().String()
	}
	if subject.Priority == "" {
		subject.Priority = domain.PriorityMedium
	}
	if !domain.ValidPriorities[string(subject.Priority)] {
		return fmt.Errorf("invalid priority %q (use high, medium or low)", subject.Priority)
	}
	subject.CreatedAt = time.Now().UTC()
	return s.subjects.Create(ctx, subject)
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *subjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subjects, func(i, j int) bool {
		if subjects[i].Priority.SortRank() != subjects[j].Priority.SortRank() {
			return subjects[i].Priority.SortRank() < subjects[j].Priority.SortRank()
		}
		return subjects[i].Name < subjects[j].Name
	})
	return subjects, nil
}

// Remove deletes the subject only. Past sessions keep the denormalized
// subject name they were scheduled with.
func (s *subjectService) Remove(ctx context.Context, id string) error {
	return s.subjects.Delete(ctx, id)
}
