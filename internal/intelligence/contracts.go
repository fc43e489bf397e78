package intelligence

import "fmt"

// BehaviorSnapshot summarizes recent study behavior for the adjustment
// prompt. Counts cover the analysis window, not all-time history.
type BehaviorSnapshot struct {
	TotalSessions      int     `json:"totalSessions"`
	CompletedSessions  int     `json:"completedSessions"`
	AbandonedSessions  int     `json:"abandonedSessions"`
	SkippedSessions    int     `json:"skippedSessions"`
	AverageDurationMin float64 `json:"averageDuration"`
	CurrentStreak      int     `json:"currentStreak"`

	// Survey answers captured during onboarding.
	StudyGoal         string `json:"studyGoal"`
	WeeklyFrequency   string `json:"weeklyFrequency"`
	FocusCapacity     string `json:"focusCapacity"`
	BestTime          string `json:"bestTime"`
	MainDifficulty    string `json:"mainDifficulty"`
	RoutineStyle      string `json:"routineStyle"`
	DailyAvailableMin int    `json:"dailyAvailableMinutes"`
}

// PlanAdjustment is the structured recommendation produced by the model.
type PlanAdjustment struct {
	SessionDuration int      `json:"sessionDuration"`
	SessionsPerDay  int      `json:"sessionsPerDay"`
	Message         string   `json:"message"`
	Adjustments     []string `json:"adjustments"`
}

const (
	MinSessionDuration = 10
	MaxSessionDuration = 180
	MinSessionsPerDay  = 1
	MaxSessionsPerDay  = 8
)

// ValidateAdjustment rejects recommendations outside the plan's legal
// parameter ranges. An out-of-range recommendation is treated as invalid
// model output, never clamped.
func ValidateAdjustment(a PlanAdjustment) error {
	if a.SessionDuration < MinSessionDuration || a.SessionDuration > MaxSessionDuration {
		return fmt.Errorf("sessionDuration %d outside [%d, %d]",
			a.SessionDuration, MinSessionDuration, MaxSessionDuration)
	}
	if a.SessionsPerDay < MinSessionsPerDay || a.SessionsPerDay > MaxSessionsPerDay {
		return fmt.Errorf("sessionsPerDay %d outside [%d, %d]",
			a.SessionsPerDay, MinSessionsPerDay, MaxSessionsPerDay)
	}
	if a.Message == "" {
		return fmt.Errorf("message is empty")
	}
	return nil
}
