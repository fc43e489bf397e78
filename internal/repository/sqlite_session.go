package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ritmo-app/ritmo/internal/db"
	"github.com/ritmo-app/ritmo/internal/domain"
)

const sessionColumns = `id, scheduled_date, scheduled_time, duration_planned,
	subject_id, subject_name, status, completed_at, actual_duration,
	productivity_rating, had_distractions, feedback_notes, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) CreateBatch(ctx context.Context, sessions []*domain.StudySession) error {
	query := `INSERT INTO study_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, s := range sessions {
		if err := s.Validate(); err != nil {
			return err
		}
		_, err := r.db.ExecContext(ctx, query,
			s.ID,
			s.Date,
			s.Time,
			s.DurationPlanned,
			s.SubjectID,
			s.SubjectName,
			string(s.Status),
			nullableTimeToString(s.CompletedAt, time.RFC3339),
			nullableIntToValue(s.ActualDuration),
			nullableIntToValue(s.ProductivityRating),
			nullableBoolToValue(s.HadDistractions),
			s.FeedbackNotes,
			s.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting study session: %w", err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.StudySession) error {
	if err := s.Validate(); err != nil {
		return err
	}
	query := `UPDATE study_sessions SET
		scheduled_date = ?, scheduled_time = ?, duration_planned = ?,
		subject_id = ?, subject_name = ?, status = ?, completed_at = ?,
		actual_duration = ?, productivity_rating = ?, had_distractions = ?,
		feedback_notes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Date,
		s.Time,
		s.DurationPlanned,
		s.SubjectID,
		s.SubjectName,
		string(s.Status),
		nullableTimeToString(s.CompletedAt, time.RFC3339),
		nullableIntToValue(s.ActualDuration),
		nullableIntToValue(s.ProductivityRating),
		nullableBoolToValue(s.HadDistractions),
		s.FeedbackNotes,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating study session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("study session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		ORDER BY scheduled_date DESC, scheduled_time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing study sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListRange(ctx context.Context, fromDate, toDate string) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE scheduled_date >= ? AND scheduled_date <= ?
		ORDER BY scheduled_date, scheduled_time`
	rows, err := r.db.QueryContext(ctx, query, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("listing sessions in range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ExistsInRange(ctx context.Context, fromDate, toDate string) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM study_sessions WHERE scheduled_date >= ? AND scheduled_date <= ?)`
	var exists int
	if err := r.db.QueryRowContext(ctx, query, fromDate, toDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking sessions in range: %w", err)
	}
	return exists == 1, nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.StudySession, error) {
	var s domain.StudySession
	var status, createdAtStr string
	var completedAt sql.NullString
	var actualDuration, rating sql.NullInt64
	var distractions sql.NullInt64

	err := row.Scan(
		&s.ID, &s.Date, &s.Time, &s.DurationPlanned,
		&s.SubjectID, &s.SubjectName, &status, &completedAt, &actualDuration,
		&rating, &distractions, &s.FeedbackNotes, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study session: %w", err)
	}

	return r.populateSession(&s, status, createdAtStr, completedAt, actualDuration, rating, distractions)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	var sessions []*domain.StudySession
	for rows.Next() {
		var s domain.StudySession
		var status, createdAtStr string
		var completedAt sql.NullString
		var actualDuration, rating sql.NullInt64
		var distractions sql.NullInt64

		err := rows.Scan(
			&s.ID, &s.Date, &s.Time, &s.DurationPlanned,
			&s.SubjectID, &s.SubjectName, &status, &completedAt, &actualDuration,
			&rating, &distractions, &s.FeedbackNotes, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, status, createdAtStr, completedAt, actualDuration, rating, distractions)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a StudySession after scanning raw values.
func (r *SQLiteSessionRepo) populateSession(
	s *domain.StudySession,
	status, createdAtStr string,
	completedAt sql.NullString,
	actualDuration, rating, distractions sql.NullInt64,
) (*domain.StudySession, error) {
	s.Status = domain.SessionStatus(status)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	s.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	if actualDuration.Valid {
		v := int(actualDuration.Int64)
		s.ActualDuration = &v
	}
	if rating.Valid {
		v := int(rating.Int64)
		s.ProductivityRating = &v
	}
	if distractions.Valid {
		v := distractions.Int64 != 0
		s.HadDistractions = &v
	}

	return s, nil
}
