package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-pathfinder/internal/gamification"
	"github.com/jonathan/career-pathfinder/internal/types"
)

// GetGamificationProfile returns the user's profile, or a fresh level-1 profile if none is stored.
func (db *DB) GetGamificationProfile(ctx context.Context, userID uuid.UUID) (*types.GamificationProfile, error) {
	p := types.GamificationProfile{UserID: userID, Level: 1, Badges: []types.Badge{}}

	var (
		lastActive sql.NullString
		badgesJSON string
	)
	err := db.queryRow(ctx,
		`SELECT xp, current_streak, longest_streak, last_active, badges, tasks_completed
		 FROM gamification WHERE user_id = ?`+db.forUpdate(),
		userID.String(),
	).Scan(&p.XP, &p.CurrentStreak, &p.LongestStreak, &lastActive, &badgesJSON, &p.TasksCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &p, nil
		}
		return nil, fmt.Errorf("failed to get gamification profile: %w", err)
	}

	if err := json.Unmarshal([]byte(badgesJSON), &p.Badges); err != nil {
		return nil, fmt.Errorf("failed to unmarshal badges: %w", err)
	}
	if lastActive.Valid && lastActive.String != "" {
		t, err := parseTime(lastActive.String)
		if err != nil {
			return nil, err
		}
		p.LastActive = &t
	}
	p.Level = gamification.Level(p.XP)
	return &p, nil
}

// SaveGamificationProfile inserts or replaces the user's profile.
func (db *DB) SaveGamificationProfile(ctx context.Context, p *types.GamificationProfile) error {
	badges := p.Badges
	if badges == nil {
		badges = []types.Badge{}
	}
	badgesJSON, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("failed to marshal badges: %w", err)
	}

	var lastActive sql.NullString
	if p.LastActive != nil {
		lastActive = sql.NullString{String: formatTime(*p.LastActive), Valid: true}
	}

	_, err = db.exec(ctx,
		`INSERT INTO gamification (user_id, xp, current_streak, longest_streak, last_active, badges, tasks_completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   xp = excluded.xp,
		   current_streak = excluded.current_streak,
		   longest_streak = excluded.longest_streak,
		   last_active = excluded.last_active,
		   badges = excluded.badges,
		   tasks_completed = excluded.tasks_completed`,
		p.UserID.String(), p.XP, p.CurrentStreak, p.LongestStreak, lastActive, string(badgesJSON), p.TasksCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to save gamification profile: %w", err)
	}
	return nil
}
