package domain

// StreakState is a persisted cache of the derived streak value. It is not
// authoritative: the count is recomputed from completed-session history on
// load. LastStudyDate is written at the moment a session is completed so
// that multiple completions on one day cannot double-extend the streak.
type StreakState struct {
	Count         int
	LastStudyDate string // YYYY-MM-DD, empty when no session was ever completed
}
