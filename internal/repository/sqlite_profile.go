package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ritmo-app/ritmo/internal/db"
	"github.com/ritmo-app/ritmo/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, study_goal, weekly_frequency, focus_capacity, best_time,
		main_difficulty, routine_style, daily_available_min, onboarding_completed
		FROM user_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var p domain.UserProfile
	var completed int
	err := row.Scan(
		&p.ID,
		&p.StudyGoal,
		&p.WeeklyFrequency,
		&p.FocusCapacity,
		&p.BestTime,
		&p.MainDifficulty,
		&p.RoutineStyle,
		&p.DailyAvailableMin,
		&completed,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.OnboardingCompleted = completed != 0
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		p.ID = domain.DefaultProfileID
	}
	completed := 0
	if p.OnboardingCompleted {
		completed = 1
	}
	query := `INSERT OR REPLACE INTO user_profile (id, study_goal, weekly_frequency,
		focus_capacity, best_time, main_difficulty, routine_style,
		daily_available_min, onboarding_completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.StudyGoal,
		p.WeeklyFrequency,
		p.FocusCapacity,
		p.BestTime,
		p.MainDifficulty,
		p.RoutineStyle,
		p.DailyAvailableMin,
		completed,
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
