// Package types provides type definitions for structured data used throughout the career-pathfinder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Badge is an achievement a user has earned.
type Badge struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earnedAt"`
}

// GamificationProfile is a user's XP, streak and badge state.
type GamificationProfile struct {
	UserID         uuid.UUID  `json:"userId"`
	XP             int        `json:"xp"`
	Level          int        `json:"level"`
	CurrentStreak  int        `json:"currentStreak"`
	LongestStreak  int        `json:"longestStreak"`
	LastActive     *time.Time `json:"lastActive,omitempty"`
	TasksCompleted int        `json:"tasksCompleted"`
	Badges         []Badge    `json:"badges"`
}

// HasBadge reports whether the profile already holds the badge.
func (p *GamificationProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"userId"`
	XP     int    `json:"xp"`
}

// ProgressResponse is returned after a task is toggled.
type ProgressResponse struct {
	Task      Task                `json:"task"`
	XPAwarded int                 `json:"xpAwarded"`
	NewBadges []Badge             `json:"newBadges"`
	Profile   GamificationProfile `json:"profile"`
}

// MarketInsight is simulated labour-market data for a career.
type MarketInsight struct {
	CareerID          string   `json:"careerId"`
	DemandIndex       int      `json:"demandIndex"`
	ProjectedGrowth   float64  `json:"projectedGrowthPct"`
	RemoteFriendlyPct int      `json:"remoteFriendlyPct"`
	MedianSalary      int      `json:"medianSalary"`
	Trend             string   `json:"trend"`
	TopRegions        []string `json:"topRegions"`
	Simulated         bool     `json:"simulated"`
}
