package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/testutil"
)

func TestSubjectService_CreateDefaultsAndValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewSubjectService(repository.NewSQLiteSubjectRepo(database))
	ctx := context.Background()

	subj := &domain.Subject{Name: "Biology"}
	require.NoError(t, svc.Create(ctx, subj))
	assert.NotEmpty(t, subj.ID)
	assert.Equal(t, domain.PriorityMedium, subj.Priority)

	assert.Error(t, svc.Create(ctx, &domain.Subject{}))
	assert.Error(t, svc.Create(ctx, &domain.Subject{Name: "X", Priority: "urgent"}))
}

func TestSubjectService_ListOrdersByPriorityThenName(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewSubjectService(repository.NewSQLiteSubjectRepo(database))
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.Subject{Name: "Zoology", Priority: domain.PriorityLow}))
	require.NoError(t, svc.Create(ctx, &domain.Subject{Name: "Math", Priority: domain.PriorityHigh}))
	require.NoError(t, svc.Create(ctx, &domain.Subject{Name: "Art", Priority: domain.PriorityHigh}))

	subjects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "Art", subjects[0].Name)
	assert.Equal(t, "Math", subjects[1].Name)
	assert.Equal(t, "Zoology", subjects[2].Name)
}

func TestSubjectService_RemoveKeepsSessionHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	subjects := repository.NewSQLiteSubjectRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	svc := NewSubjectService(subjects)
	ctx := context.Background()

	subj := testutil.NewTestSubject("Chemistry")
	require.NoError(t, subjects.Create(ctx, subj))
	sess := testutil.NewTestSession(testutil.Day(0), testutil.WithSubject(subj.ID, subj.Name), testutil.Completed(50))
	require.NoError(t, sessions.CreateBatch(ctx, []*domain.StudySession{sess}))

	require.NoError(t, svc.Remove(ctx, subj.ID))

	_, err := svc.GetByID(ctx, subj.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", got.SubjectName)
}

func TestProfileService_SaveOnboarding(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteProfileRepo(database))
	ctx := context.Background()

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, ErrOnboardingIncomplete)

	assert.Error(t, svc.SaveOnboarding(ctx, &domain.UserProfile{StudyGoal: "exam"}))

	require.NoError(t, svc.SaveOnboarding(ctx, &domain.UserProfile{
		StudyGoal:         "exam",
		DailyAvailableMin: 60,
	}))

	profile, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, profile.OnboardingCompleted)
	assert.Equal(t, domain.DefaultProfileID, profile.ID)
}
