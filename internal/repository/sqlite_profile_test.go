package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/testutil"
)

func sampleProfile() *domain.UserProfile {
	return &domain.UserProfile{
		StudyGoal:           "pass the entrance exam",
		WeeklyFrequency:     "5+ days",
		FocusCapacity:       "50 minutes",
		BestTime:            "morning",
		MainDifficulty:      "procrastination",
		RoutineStyle:        "fixed",
		DailyAvailableMin:   120,
		OnboardingCompleted: true,
	}
}

func TestProfileRepo_GetMissing(t *testing.T) {
	repo := repository.NewSQLiteProfileRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileRepo_UpsertAndGet(t *testing.T) {
	repo := repository.NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleProfile()))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfileID, got.ID)
	assert.Equal(t, "pass the entrance exam", got.StudyGoal)
	assert.Equal(t, 120, got.DailyAvailableMin)
	assert.True(t, got.OnboardingCompleted)
}

func TestProfileRepo_UpsertReplacesSingleRow(t *testing.T) {
	repo := repository.NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleProfile()))

	updated := sampleProfile()
	updated.DailyAvailableMin = 90
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, got.DailyAvailableMin)
}
