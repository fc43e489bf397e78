package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritmo-app/ritmo/internal/llm"
)

func newAdjustService(t *testing.T, response string) AdjustService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]string{"model": "test", "response": response})
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	return NewAdjustService(llm.NewOllamaClient(cfg, nil))
}

func sampleSnapshot() BehaviorSnapshot {
	return BehaviorSnapshot{
		TotalSessions:      20,
		CompletedSessions:  12,
		AbandonedSessions:  6,
		SkippedSessions:    2,
		AverageDurationMin: 32.5,
		CurrentStreak:      3,
		StudyGoal:          "exam",
		WeeklyFrequency:    "most days",
		FocusCapacity:      "medium",
		BestTime:           "morning",
		MainDifficulty:     "procrastination",
		RoutineStyle:       "structured",
		DailyAvailableMin:  120,
	}
}

func TestProposeAdjustment(t *testing.T) {
	svc := newAdjustService(t, `{
		"sessionDuration": 35,
		"sessionsPerDay": 2,
		"message": "You finish shorter sessions more often, so the plan now leans into that.",
		"adjustments": ["Shortened sessions to 35 minutes after 6 abandoned sessions"]
	}`)

	adj, err := svc.ProposeAdjustment(context.Background(), sampleSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 35, adj.SessionDuration)
	assert.Equal(t, 2, adj.SessionsPerDay)
	assert.Len(t, adj.Adjustments, 1)
}

func TestProposeAdjustment_FencedOutput(t *testing.T) {
	svc := newAdjustService(t, "```json\n{\"sessionDuration\": 25, \"sessionsPerDay\": 3, \"message\": \"Keep it light.\", \"adjustments\": []}\n```")

	adj, err := svc.ProposeAdjustment(context.Background(), sampleSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 25, adj.SessionDuration)
}

func TestProposeAdjustment_OutOfRangeRejected(t *testing.T) {
	svc := newAdjustService(t, `{"sessionDuration": 300, "sessionsPerDay": 2, "message": "Marathon mode."}`)

	_, err := svc.ProposeAdjustment(context.Background(), sampleSnapshot())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestProposeAdjustment_TooManySessionsRejected(t *testing.T) {
	svc := newAdjustService(t, `{"sessionDuration": 30, "sessionsPerDay": 12, "message": "Go go go."}`)

	_, err := svc.ProposeAdjustment(context.Background(), sampleSnapshot())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestProposeAdjustment_ProseOnlyRejected(t *testing.T) {
	svc := newAdjustService(t, "I think you should study a bit less each day.")

	_, err := svc.ProposeAdjustment(context.Background(), sampleSnapshot())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestValidateAdjustment_Bounds(t *testing.T) {
	ok := PlanAdjustment{SessionDuration: 10, SessionsPerDay: 8, Message: "m"}
	assert.NoError(t, ValidateAdjustment(ok))

	assert.Error(t, ValidateAdjustment(PlanAdjustment{SessionDuration: 9, SessionsPerDay: 2, Message: "m"}))
	assert.Error(t, ValidateAdjustment(PlanAdjustment{SessionDuration: 181, SessionsPerDay: 2, Message: "m"}))
	assert.Error(t, ValidateAdjustment(PlanAdjustment{SessionDuration: 30, SessionsPerDay: 0, Message: "m"}))
	assert.Error(t, ValidateAdjustment(PlanAdjustment{SessionDuration: 30, SessionsPerDay: 2}))
}
