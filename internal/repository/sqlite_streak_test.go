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

func TestStreakRepo_GetNeverWritten(t *testing.T) {
	repo := repository.NewSQLiteStreakRepo(testutil.NewTestDB(t))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count)
	assert.Empty(t, got.LastStudyDate)
}

func TestStreakRepo_UpsertAndGet(t *testing.T) {
	repo := repository.NewSQLiteStreakRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.StreakState{Count: 4, LastStudyDate: "2025-09-17"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Count)
	assert.Equal(t, "2025-09-17", got.LastStudyDate)

	require.NoError(t, repo.Upsert(ctx, &domain.StreakState{Count: 5, LastStudyDate: "2025-09-18"}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Count)
}
