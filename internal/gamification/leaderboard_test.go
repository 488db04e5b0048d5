package gamification

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestLeaderboard(t *testing.T) {
	client, mr := setupRedis(t)
	lb := NewLeaderboard(client)
	ctx := context.Background()

	require.NoError(t, lb.Record(ctx, "ada", 120))
	require.NoError(t, lb.Record(ctx, "grace", 450))
	require.NoError(t, lb.Record(ctx, "linus", 80))
	require.NoError(t, lb.Record(ctx, "ada", 500))

	top, err := lb.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "ada", top[0].UserID)
	assert.Equal(t, 500, top[0].XP)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, "grace", top[1].UserID)
	assert.Equal(t, 2, top[1].Rank)

	rank, err := lb.Rank(ctx, "linus")
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	rank, err = lb.Rank(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, rank)

	score, err := mr.ZScore(LeaderboardKey, "grace")
	require.NoError(t, err)
	assert.Equal(t, 450.0, score)
}

func TestLeaderboard_TopEmpty(t *testing.T) {
	client, _ := setupRedis(t)
	lb := NewLeaderboard(client)

	top, err := lb.Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)

	top, err = lb.Top(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestLeaderboard_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	lb := NewLeaderboard(client)
	mr.Close()

	assert.Error(t, lb.Record(context.Background(), "ada", 1))
	_, err = lb.Top(context.Background(), 3)
	assert.Error(t, err)
}
