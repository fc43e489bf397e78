package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ritmo-app/ritmo/internal/db"
	"github.com/ritmo-app/ritmo/internal/domain"
)

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(conn db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: conn}
}

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject) error {
	if err := s.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO subjects (id, name, color, priority, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Color,
		string(s.Priority),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	query := `SELECT id, name, color, priority, created_at FROM subjects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Subject
	var priority, createdAtStr string
	if err := row.Scan(&s.ID, &s.Name, &s.Color, &priority, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subject: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	s.Priority = domain.SubjectPriority(priority)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &s, nil
}

func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	query := `SELECT id, name, color, priority, created_at FROM subjects ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		var priority, createdAtStr string
		if err := rows.Scan(&s.ID, &s.Name, &s.Color, &priority, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning subject row: %w", err)
		}
		s.Priority = domain.SubjectPriority(priority)
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		subjects = append(subjects, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

// Delete removes a subject. Past sessions keep their denormalized subject
// name and id; nothing cascades.
func (r *SQLiteSubjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("subject %s: %w", id, ErrNotFound)
	}
	return nil
}
