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
	"github.com/ritmo-app/ritmo/internal/timer"
)

type sessionFixture struct {
	svc      SessionService
	sessions repository.SessionRepo
	streaks  repository.StreakRepo
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	return &sessionFixture{
		svc:      NewSessionService(sessions, testutil.NewTestUoW(database)),
		sessions: sessions,
		streaks:  repository.NewSQLiteStreakRepo(database),
	}
}

func (f *sessionFixture) seed(t *testing.T, sess *domain.StudySession) *domain.StudySession {
	t.Helper()
	require.NoError(t, f.sessions.CreateBatch(context.Background(), []*domain.StudySession{sess}))
	return sess
}

func result(sessionID string, studiedMin int) *timer.Result {
	return &timer.Result{
		SessionID:  sessionID,
		StudiedMin: studiedMin,
		Cycles:     studiedMin / 25,
		Feedback: timer.Feedback{
			ProductivityRating: 4,
			HadDistractions:    true,
			Notes:              "phone kept buzzing",
		},
	}
}

func TestSessionService_MarkSkipped(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sess := f.seed(t, testutil.NewTestSession(testutil.Day(0)))

	require.NoError(t, f.svc.MarkSkipped(ctx, sess.ID))

	got, err := f.svc.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSkipped, got.Status)

	assert.ErrorIs(t, f.svc.MarkSkipped(ctx, sess.ID), ErrSessionNotPending)
	assert.ErrorIs(t, f.svc.MarkAbandoned(ctx, sess.ID), ErrSessionNotPending)
}

func TestSessionService_MarkAbandoned(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sess := f.seed(t, testutil.NewTestSession(testutil.Day(0)))

	require.NoError(t, f.svc.MarkAbandoned(ctx, sess.ID))

	got, err := f.svc.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionAbandoned, got.Status)
	assert.Nil(t, got.ActualDuration, "abandonment records no studied time")
}

func TestSessionService_CompleteWithFeedback(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	now := time.Now()
	sess := f.seed(t, testutil.NewTestSession(now.Format(domain.DateKey)))

	require.NoError(t, f.svc.CompleteWithFeedback(ctx, result(sess.ID, 50), nil, now))

	got, err := f.svc.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, got.Status)
	require.NotNil(t, got.ActualDuration)
	assert.Equal(t, 50, *got.ActualDuration)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.ProductivityRating)
	assert.Equal(t, 4, *got.ProductivityRating)
	require.NotNil(t, got.HadDistractions)
	assert.True(t, *got.HadDistractions)
	assert.Equal(t, "phone kept buzzing", got.FeedbackNotes)

	streak, err := f.streaks.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.Count)
	assert.Equal(t, now.Format(domain.DateKey), streak.LastStudyDate)
}

func TestSessionService_CompleteAttachesSubject(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	now := time.Now()
	sess := f.seed(t, testutil.NewTestSession(now.Format(domain.DateKey)))
	subject := testutil.NewTestSubject("Math")

	require.NoError(t, f.svc.CompleteWithFeedback(ctx, result(sess.ID, 50), subject, now))

	got, err := f.svc.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, subject.ID, got.SubjectID)
	assert.Equal(t, "Math", got.SubjectName)
}

func TestSessionService_CompleteSameDayKeepsStreak(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	now := time.Now()
	first := f.seed(t, testutil.NewTestSession(now.Format(domain.DateKey)))
	second := f.seed(t, testutil.NewTestSession(now.Format(domain.DateKey), testutil.WithTime("14:00")))

	require.NoError(t, f.svc.CompleteWithFeedback(ctx, result(first.ID, 50), nil, now))
	require.NoError(t, f.svc.CompleteWithFeedback(ctx, result(second.ID, 25), nil, now))

	streak, err := f.streaks.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.Count, "two completions on one day count once")
}

func TestSessionService_CompleteExtendsStreakFromYesterday(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, f.streaks.Upsert(ctx, &domain.StreakState{
		Count:         3,
		LastStudyDate: testutil.Day(-1),
	}))
	sess := f.seed(t, testutil.NewTestSession(now.Format(domain.DateKey)))

	require.NoError(t, f.svc.CompleteWithFeedback(ctx, result(sess.ID, 50), nil, now))

	streak, err := f.streaks.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, streak.Count)
}

func TestSessionService_CompleteAfterGapResetsStreak(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, f.streaks.Upsert(ctx, &domain.StreakState{
		Count:         9,
		LastStudyDate: testutil.Day(-3),
	}))
	sess := f.seed(t, testutil.NewTestSession(now.Format(domain.DateKey)))

	require.NoError(t, f.svc.CompleteWithFeedback(ctx, result(sess.ID, 50), nil, now))

	streak, err := f.streaks.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.Count)
}

func TestSessionService_CompleteTerminalRollsBack(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	now := time.Now()
	sess := f.seed(t, testutil.NewTestSession(now.Format(domain.DateKey), testutil.WithStatus(domain.SessionSkipped)))

	err := f.svc.CompleteWithFeedback(ctx, result(sess.ID, 50), nil, now)
	assert.ErrorIs(t, err, ErrSessionNotPending)

	streak, sErr := f.streaks.Get(ctx)
	require.NoError(t, sErr)
	assert.Zero(t, streak.Count, "failed completion must not touch the streak")
}

func TestSessionService_ListTodayAndWeek(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 9, 17, 12, 0, 0, 0, time.UTC) // wednesday

	f.seed(t, testutil.NewTestSession("2025-09-17"))
	f.seed(t, testutil.NewTestSession("2025-09-19"))
	f.seed(t, testutil.NewTestSession("2025-09-22")) // next monday

	today, err := f.svc.ListToday(ctx, now)
	require.NoError(t, err)
	assert.Len(t, today, 1)

	week, err := f.svc.ListWeek(ctx, now)
	require.NoError(t, err)
	assert.Len(t, week, 2)
}
