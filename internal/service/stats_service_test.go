package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/testutil"
)

func TestStatsService_Summary(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	svc := NewStatsService(sessions)
	ctx := context.Background()

	now := time.Date(2025, 9, 17, 12, 0, 0, 0, time.UTC) // wednesday
	require.NoError(t, sessions.CreateBatch(ctx, []*domain.StudySession{
		testutil.NewTestSession("2025-09-15", testutil.Completed(50), testutil.WithSubject("s1", "Math")),
		testutil.NewTestSession("2025-09-16", testutil.Completed(30), testutil.WithSubject("s2", "History")),
		testutil.NewTestSession("2025-09-17", testutil.Completed(50), testutil.WithSubject("s1", "Math")),
		testutil.NewTestSession("2025-09-19"),
	}))

	summary, err := svc.Summary(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Week.Completed)
	assert.Equal(t, 4, summary.Week.Total)
	assert.Equal(t, 3, summary.Streak)
	assert.Equal(t, "2025-09-17", summary.LastStudyDate)

	require.Len(t, summary.Totals, 2)
	assert.Equal(t, "Math", summary.Totals[0].SubjectName)
	assert.Equal(t, 100, summary.Totals[0].Minutes)

	assert.Equal(t, "More than halfway there. You're crushing it!", summary.Message)
}

func TestStatsService_SummaryEmptyHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewStatsService(repository.NewSQLiteSessionRepo(database))

	summary, err := svc.Summary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, summary.Week.Total)
	assert.Zero(t, summary.Streak)
	assert.Empty(t, summary.Totals)
	assert.Equal(t, "Let's get started! The first step is always the most important one.", summary.Message)
}
