package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ritmo-app/ritmo/internal/db"
	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/planner"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/timer"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork) SessionService {
	return &sessionService{sessions: sessions, uow: uow}
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListToday(ctx context.Context, now time.Time) ([]*domain.StudySession, error) {
	today := now.Format(domain.DateKey)
	return s.sessions.ListRange(ctx, today, today)
}

func (s *sessionService) ListWeek(ctx context.Context, now time.Time) ([]*domain.StudySession, error) {
	weekStart := planner.WeekStart(now)
	from := weekStart.Format(domain.DateKey)
	to := weekStart.AddDate(0, 0, 6).Format(domain.DateKey)
	return s.sessions.ListRange(ctx, from, to)
}

func (s *sessionService) ListAll(ctx context.Context) ([]*domain.StudySession, error) {
	return s.sessions.ListAll(ctx)
}

func (s *sessionService) MarkSkipped(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.SessionSkipped)
}

func (s *sessionService) MarkAbandoned(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.SessionAbandoned)
}

// transition moves a pending session into a terminal status. Terminal
// sessions never change again.
func (s *sessionService) transition(ctx context.Context, id string, to domain.SessionStatus) error {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sess.Status.Terminal() {
		return fmt.Errorf("session %s is %s: %w", id, sess.Status, ErrSessionNotPending)
	}
	sess.Status = to
	return s.sessions.Update(ctx, sess)
}

func (s *sessionService) CompleteWithFeedback(ctx context.Context, res *timer.Result, subject *domain.Subject, now time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txStreaks := repository.NewSQLiteStreakRepo(tx)

		sess, err := txSessions.GetByID(ctx, res.SessionID)
		if err != nil {
			return err
		}
		if sess.Status.Terminal() {
			return fmt.Errorf("session %s is %s: %w", sess.ID, sess.Status, ErrSessionNotPending)
		}

		// The subject is attached at session-start time; the name is
		// denormalized so history survives subject removal.
		if subject != nil {
			sess.SubjectID = subject.ID
			sess.SubjectName = subject.Name
		}

		completedAt := now.UTC()
		studied := res.StudiedMin
		sess.Status = domain.SessionCompleted
		sess.CompletedAt = &completedAt
		sess.ActualDuration = &studied
		sess.ProductivityRating = &res.Feedback.ProductivityRating
		sess.HadDistractions = &res.Feedback.HadDistractions
		sess.FeedbackNotes = res.Feedback.Notes

		if err := sess.Validate(); err != nil {
			return err
		}
		if err := txSessions.Update(ctx, sess); err != nil {
			return err
		}

		return advanceStreak(ctx, txStreaks, now)
	})
}

// advanceStreak updates the cached streak for a completion on now's
// calendar day. A second completion on the same day leaves it unchanged.
func advanceStreak(ctx context.Context, streaks repository.StreakRepo, now time.Time) error {
	state, err := streaks.Get(ctx)
	if err != nil {
		return err
	}

	today := now.Format(domain.DateKey)
	if state.LastStudyDate == today {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1).Format(domain.DateKey)
	if state.LastStudyDate == yesterday {
		state.Count++
	} else {
		state.Count = 1
	}
	state.LastStudyDate = today
	return streaks.Upsert(ctx, state)
}
