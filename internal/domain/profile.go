package domain

// UserProfile holds the onboarding survey answers that feed the AI
// adjustment prompt, plus the daily availability used for ad-hoc daily
// generation. A single row keyed "default" exists per database.
type UserProfile struct {
	ID                  string
	StudyGoal           string
	WeeklyFrequency     string
	FocusCapacity       string
	BestTime            string
	MainDifficulty      string
	RoutineStyle        string
	DailyAvailableMin   int
	OnboardingCompleted bool
}

// DefaultProfileID is the fixed key of the single profile row.
const DefaultProfileID = "default"
