package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ritmo-app/ritmo/internal/db"
	"github.com/ritmo-app/ritmo/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) GetActive(ctx context.Context) (*domain.StudyPlan, error) {
	query := `SELECT id, session_duration, sessions_per_day, study_days,
		preferred_times, active, created_at, updated_at
		FROM study_plans WHERE active = 1 LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.StudyPlan
	var days, times, createdAtStr, updatedAtStr string
	var active int
	err := row.Scan(&p.ID, &p.SessionDuration, &p.SessionsPerDay, &days,
		&times, &active, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("active study plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study plan: %w", err)
	}

	p.StudyDays = splitList(days)
	p.PreferredTimes = splitList(times)
	p.Active = active != 0

	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

// Create inserts a plan and deactivates any previously active plan, so at
// most one plan is active at a time.
func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.StudyPlan) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Active {
		if _, err := r.db.ExecContext(ctx, `UPDATE study_plans SET active = 0 WHERE active = 1`); err != nil {
			return fmt.Errorf("deactivating previous plan: %w", err)
		}
	}
	query := `INSERT INTO study_plans (id, session_duration, sessions_per_day,
		study_days, preferred_times, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	active := 0
	if p.Active {
		active = 1
	}
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.SessionDuration,
		p.SessionsPerDay,
		joinList(p.StudyDays),
		joinList(p.PreferredTimes),
		active,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.StudyPlan) error {
	if err := p.Validate(); err != nil {
		return err
	}
	active := 0
	if p.Active {
		active = 1
	}
	query := `UPDATE study_plans SET session_duration = ?, sessions_per_day = ?,
		study_days = ?, preferred_times = ?, active = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.SessionDuration,
		p.SessionsPerDay,
		joinList(p.StudyDays),
		joinList(p.PreferredTimes),
		active,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating study plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("study plan %s: %w", p.ID, ErrNotFound)
	}
	return nil
}
