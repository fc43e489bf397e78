package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ritmo-app/ritmo/internal/db"
	"github.com/ritmo-app/ritmo/internal/domain"
)

// SQLiteStreakRepo implements StreakRepo using a SQLite database. The streak
// row is a cache of a derived value; Get returns a zero state rather than
// ErrNotFound when the cache was never written.
type SQLiteStreakRepo struct {
	db db.DBTX
}

// NewSQLiteStreakRepo creates a new SQLiteStreakRepo.
func NewSQLiteStreakRepo(conn db.DBTX) *SQLiteStreakRepo {
	return &SQLiteStreakRepo{db: conn}
}

func (r *SQLiteStreakRepo) Get(ctx context.Context) (*domain.StreakState, error) {
	query := `SELECT count, last_study_date FROM streak_state WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var s domain.StreakState
	if err := row.Scan(&s.Count, &s.LastStudyDate); err != nil {
		if err == sql.ErrNoRows {
			return &domain.StreakState{}, nil
		}
		return nil, fmt.Errorf("scanning streak state: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStreakRepo) Upsert(ctx context.Context, s *domain.StreakState) error {
	query := `INSERT OR REPLACE INTO streak_state (id, count, last_study_date)
		VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, domain.DefaultProfileID, s.Count, s.LastStudyDate)
	if err != nil {
		return fmt.Errorf("upserting streak state: %w", err)
	}
	return nil
}
