package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ritmo-app/ritmo/internal/domain"
)

// Session options
type SessionOption func(*domain.StudySession)

func WithStatus(s domain.SessionStatus) SessionOption {
	return func(sess *domain.StudySession) {
		sess.Status = s
	}
}

func WithSubject(id, name string) SessionOption {
	return func(sess *domain.StudySession) {
		sess.SubjectID = id
		sess.SubjectName = name
	}
}

func WithTime(hhmm string) SessionOption {
	return func(sess *domain.StudySession) {
		sess.Time = hhmm
	}
}

// Completed marks the session completed with the given studied minutes,
// satisfying the completed-session invariant.
func Completed(actualMin int) SessionOption {
	return func(sess *domain.StudySession) {
		now := time.Now().UTC()
		sess.Status = domain.SessionCompleted
		sess.CompletedAt = &now
		sess.ActualDuration = &actualMin
	}
}

// NewTestSession builds a pending 50-minute session on the given calendar day.
func NewTestSession(date string, opts ...SessionOption) *domain.StudySession {
	s := &domain.StudySession{
		ID:              uuid.New().String(),
		Date:            date,
		Time:            "09:00",
		DurationPlanned: 50,
		Status:          domain.SessionPending,
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestSubject builds a subject with a default color and priority.
func NewTestSubject(name string) *domain.Subject {
	return &domain.Subject{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#6366F1",
		Priority:  domain.PriorityMedium,
		CreatedAt: time.Now().UTC(),
	}
}

// Plan options
type PlanOption func(*domain.StudyPlan)

func WithStudyDays(days ...string) PlanOption {
	return func(p *domain.StudyPlan) {
		p.StudyDays = days
	}
}

func WithPreferredTimes(times ...string) PlanOption {
	return func(p *domain.StudyPlan) {
		p.PreferredTimes = times
	}
}

func WithSessionsPerDay(n int) PlanOption {
	return func(p *domain.StudyPlan) {
		p.SessionsPerDay = n
	}
}

// NewTestPlan builds an active weekday plan with two preferred times.
func NewTestPlan(opts ...PlanOption) *domain.StudyPlan {
	now := time.Now().UTC()
	p := &domain.StudyPlan{
		ID:              uuid.New().String(),
		SessionDuration: 50,
		SessionsPerDay:  2,
		StudyDays:       []string{domain.DayMon, domain.DayWed, domain.DayFri},
		PreferredTimes:  []string{"09:00", "14:00"},
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Day returns the date key for today shifted by offset days.
func Day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(domain.DateKey)
}
