package db

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS roadmaps (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		career_id     TEXT NOT NULL,
		title         TEXT NOT NULL,
		weekly_hours  REAL NOT NULL,
		plan          TEXT NOT NULL,
		original_plan TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roadmaps_user ON roadmaps(user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS gamification (
		user_id         TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		xp              INTEGER NOT NULL DEFAULT 0,
		current_streak  INTEGER NOT NULL DEFAULT 0,
		longest_streak  INTEGER NOT NULL DEFAULT 0,
		last_active     TEXT,
		badges          TEXT NOT NULL DEFAULT '[]',
		tasks_completed INTEGER NOT NULL DEFAULT 0
	)`,
}

// Migrate creates any missing tables. It is safe to run repeatedly.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
