package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// additions tolerate "duplicate column name" errors since the migration
// system re-runs all statements on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '#6366F1',
		priority   TEXT NOT NULL DEFAULT 'medium'
		           CHECK(priority IN ('high','medium','low')),
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_plans (
		id               TEXT PRIMARY KEY,
		session_duration INTEGER NOT NULL,
		sessions_per_day INTEGER NOT NULL,
		study_days       TEXT NOT NULL DEFAULT '',
		preferred_times  TEXT NOT NULL DEFAULT '',
		active           INTEGER NOT NULL DEFAULT 1,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id                  TEXT PRIMARY KEY,
		scheduled_date      TEXT NOT NULL,
		scheduled_time      TEXT NOT NULL,
		duration_planned    INTEGER NOT NULL,
		subject_id          TEXT NOT NULL DEFAULT '',
		subject_name        TEXT NOT NULL DEFAULT '',
		status              TEXT NOT NULL DEFAULT 'pending'
		                    CHECK(status IN ('pending','completed','skipped','abandoned')),
		completed_at        TEXT,
		actual_duration     INTEGER,
		productivity_rating INTEGER,
		had_distractions    INTEGER,
		feedback_notes      TEXT NOT NULL DEFAULT '',
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON study_sessions(scheduled_date)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_status ON study_sessions(status)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id                   TEXT PRIMARY KEY,
		study_goal           TEXT NOT NULL DEFAULT '',
		weekly_frequency     TEXT NOT NULL DEFAULT '',
		focus_capacity       TEXT NOT NULL DEFAULT '',
		best_time            TEXT NOT NULL DEFAULT '',
		main_difficulty      TEXT NOT NULL DEFAULT '',
		routine_style        TEXT NOT NULL DEFAULT '',
		daily_available_min  INTEGER NOT NULL DEFAULT 0,
		onboarding_completed INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS streak_state (
		id              TEXT PRIMARY KEY,
		count           INTEGER NOT NULL DEFAULT 0,
		last_study_date TEXT NOT NULL DEFAULT ''
	)`,
}
