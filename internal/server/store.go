package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/career-pathfinder/internal/db"
	"github.com/jonathan/career-pathfinder/internal/types"
)

// UserStore is the persistence the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// RoadmapStore persists saved roadmaps.
type RoadmapStore interface {
	SaveRoadmap(ctx context.Context, userID uuid.UUID, plan *types.Roadmap) (uuid.UUID, error)
	GetRoadmap(ctx context.Context, userID, id uuid.UUID) (*db.RoadmapRecord, error)
	ListRoadmaps(ctx context.Context, userID uuid.UUID) ([]db.RoadmapSummary, error)
	UpdateRoadmapPlan(ctx context.Context, userID, id uuid.UUID, plan *types.Roadmap) (bool, error)
	DeleteRoadmap(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// ProgressStore persists gamification profiles. UpdateProgress applies a change to a roadmap and
// its owner's profile atomically, so concurrent task toggles cannot double-credit XP.
type ProgressStore interface {
	GetGamificationProfile(ctx context.Context, userID uuid.UUID) (*types.GamificationProfile, error)
	UpdateProgress(ctx context.Context, userID, id uuid.UUID, fn db.ProgressFunc) (bool, error)
}

// Store is everything the server persists. *db.DB implements it.
type Store interface {
	UserStore
	RoadmapStore
	ProgressStore
	Ping(ctx context.Context) error
}

// Leaderboard ranks users by XP. *gamification.Leaderboard implements it.
type Leaderboard interface {
	Record(ctx context.Context, userID string, xp int) error
	Top(ctx context.Context, n int) ([]types.LeaderboardEntry, error)
	Rank(ctx context.Context, userID string) (int, error)
}

var _ Store = (*db.DB)(nil)
