package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// ProgressFunc changes a roadmap's plan and its owner's gamification profile in place.
type ProgressFunc func(rec *RoadmapRecord, profile *types.GamificationProfile) error

// UpdateProgress loads one of the user's roadmaps and the user's gamification profile, applies fn
// and saves both in a single transaction. On Postgres both rows stay locked until commit; SQLite
// runs on a single connection, so its transactions never interleave.
//
// It reports false without calling fn when the roadmap does not exist. An error from fn rolls the
// transaction back and is returned as is.
func (db *DB) UpdateProgress(ctx context.Context, userID, id uuid.UUID, fn ProgressFunc) (bool, error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	found, err := db.withTx(tx).updateProgress(ctx, userID, id, fn)
	if err != nil || !found {
		_ = tx.Rollback()
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit progress: %w", err)
	}
	return true, nil
}

func (db *DB) updateProgress(ctx context.Context, userID, id uuid.UUID, fn ProgressFunc) (bool, error) {
	rec, err := db.GetRoadmap(ctx, userID, id)
	if err != nil || rec == nil {
		return false, err
	}

	// the row must exist before it can be locked
	if _, err := db.exec(ctx,
		`INSERT INTO gamification (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`,
		userID.String(),
	); err != nil {
		return false, fmt.Errorf("failed to create gamification profile: %w", err)
	}
	profile, err := db.GetGamificationProfile(ctx, userID)
	if err != nil {
		return false, err
	}

	if err := fn(rec, profile); err != nil {
		return false, err
	}

	updated, err := db.UpdateRoadmapPlan(ctx, userID, id, &rec.Plan)
	if err != nil || !updated {
		return false, err
	}
	profile.UserID = userID
	if err := db.SaveGamificationProfile(ctx, profile); err != nil {
		return false, err
	}
	return true, nil
}
