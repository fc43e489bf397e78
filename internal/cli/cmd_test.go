package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/service"
	"github.com/ritmo-app/ritmo/internal/testutil"
)

func newTestApp(t *testing.T) (*App, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)

	app := &App{
		Plans:    service.NewPlanService(repository.NewSQLitePlanRepo(database), sessions, profiles),
		Sessions: service.NewSessionService(sessions, testutil.NewTestUoW(database)),
		Stats:    service.NewStatsService(sessions),
		Subjects: service.NewSubjectService(repository.NewSQLiteSubjectRepo(database)),
		Profiles: service.NewProfileService(profiles),
	}
	return app, sessions
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestGenerateWeekCmd(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Plans.Save(context.Background(), testutil.NewTestPlan()))

	out, err := execute(t, app, "generate", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 6 session(s)")

	out, err = execute(t, app, "generate", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "already has sessions")
}

func TestGenerateWeekCmdWithoutPlan(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "generate", "week")
	assert.ErrorIs(t, err, service.ErrNoActivePlan)
}

func TestSessionListCmd(t *testing.T) {
	app, sessions := newTestApp(t)
	require.NoError(t, sessions.CreateBatch(context.Background(), []*domain.StudySession{
		testutil.NewTestSession(testutil.Day(0), testutil.WithSubject("s1", "Math")),
	}))

	out, err := execute(t, app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "pending")
}

func TestSessionSkipCmdByPrefix(t *testing.T) {
	app, sessions := newTestApp(t)
	ctx := context.Background()
	sess := testutil.NewTestSession(testutil.Day(0))
	require.NoError(t, sessions.CreateBatch(ctx, []*domain.StudySession{sess}))

	out, err := execute(t, app, "session", "skip", sess.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")

	got, err := sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSkipped, got.Status)
}

func TestSessionSkipCmdUnknownID(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "session", "skip", "nope")
	assert.Error(t, err)
}

func TestPlanShowCmd(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Plans.Save(context.Background(), testutil.NewTestPlan()))

	out, err := execute(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions per day: 2")
}

func TestPlanAdjustCmdDisabled(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "plan", "adjust")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestSubjectCmds(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "subject", "add", "Biology", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Biology")

	out, err = execute(t, app, "subject", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Biology")

	out, err = execute(t, app, "subject", "remove", "Biology")
	require.NoError(t, err)
	assert.Contains(t, out, "removed")

	out, err = execute(t, app, "subject", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No subjects.")
}

func TestStatsCmdPlain(t *testing.T) {
	app, sessions := newTestApp(t)
	require.NoError(t, sessions.CreateBatch(context.Background(), []*domain.StudySession{
		testutil.NewTestSession(testutil.Day(0), testutil.Completed(50)),
	}))

	out, err := execute(t, app, "stats", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Streak:    1 day(s)")
}

func TestExportCSVCmd(t *testing.T) {
	app, sessions := newTestApp(t)
	require.NoError(t, sessions.CreateBatch(context.Background(), []*domain.StudySession{
		testutil.NewTestSession(testutil.Day(0)),
	}))

	path := filepath.Join(t.TempDir(), "out.csv")
	out, err := execute(t, app, "export", "csv", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 session(s)")
	assert.FileExists(t, path)
}

func TestTimerCmdNotInteractive(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "timer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive")
}
