package gamification

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// LeaderboardKey is the sorted set holding every user's XP.
const LeaderboardKey = "pathfinder:leaderboard:xp"

// Leaderboard ranks users by XP in a Redis sorted set.
type Leaderboard struct {
	client *redis.Client
}

// NewLeaderboard creates a Leaderboard over an existing client.
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{client: client}
}

// Record sets the user's XP score.
func (l *Leaderboard) Record(ctx context.Context, userID string, xp int) error {
	if err := l.client.ZAdd(ctx, LeaderboardKey, redis.Z{Score: float64(xp), Member: userID}).Err(); err != nil {
		return fmt.Errorf("failed to record leaderboard score: %w", err)
	}
	return nil
}

// Top returns the n highest-scoring users, best first.
func (l *Leaderboard) Top(ctx context.Context, n int) ([]types.LeaderboardEntry, error) {
	if n <= 0 {
		return []types.LeaderboardEntry{}, nil
	}
	zs, err := l.client.ZRevRangeWithScores(ctx, LeaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]types.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		entries = append(entries, types.LeaderboardEntry{
			Rank:   i + 1,
			UserID: member,
			XP:     int(z.Score),
		})
	}
	return entries, nil
}

// Rank returns the user's 1-based position, or 0 when the user has no score yet.
func (l *Leaderboard) Rank(ctx context.Context, userID string) (int, error) {
	rank, err := l.client.ZRevRank(ctx, LeaderboardKey, userID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read leaderboard rank: %w", err)
	}
	return int(rank) + 1, nil
}
