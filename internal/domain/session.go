package domain

import (
	"fmt"
	"time"
)

// StudySession is one scheduled unit of study time. Sessions are created in
// batch by the plan generator and move from pending to exactly one terminal
// status; history is append-only and sessions are never deleted.
type StudySession struct {
	ID              string
	Date            string // calendar day, YYYY-MM-DD
	Time            string // time of day, HH:MM
	DurationPlanned int    // minutes

	// Soft reference: deleting a subject does not touch past sessions,
	// which keep the denormalized id and name.
	SubjectID   string
	SubjectName string

	Status      SessionStatus
	CompletedAt *time.Time
	// ActualDuration is the recorded studied minutes, set on completion.
	ActualDuration *int

	ProductivityRating *int
	HadDistractions    *bool
	FeedbackNotes      string

	CreatedAt time.Time
}

// Validate checks the completed-session invariant: a completed session must
// carry both a completion timestamp and an actual duration.
func (s *StudySession) Validate() error {
	if s.Status == SessionCompleted {
		if s.CompletedAt == nil {
			return fmt.Errorf("completed session %s has no completed_at", s.ID)
		}
		if s.ActualDuration == nil {
			return fmt.Errorf("completed session %s has no actual_duration", s.ID)
		}
	}
	return nil
}

// EffectiveMinutes returns the studied minutes to count for aggregation:
// the actual duration when recorded, otherwise the planned duration.
func (s *StudySession) EffectiveMinutes() int {
	if s.ActualDuration != nil {
		return *s.ActualDuration
	}
	return s.DurationPlanned
}

// DateKey is the layout used for session calendar days.
const DateKey = "2006-01-02"

// TimeKey is the layout used for session times of day.
const TimeKey = "15:04"
