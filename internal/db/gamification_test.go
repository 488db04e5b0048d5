package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-pathfinder/internal/types"
)

func TestGamificationProfile_DefaultsWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "fresh@example.com")

	p, err := db.GetGamificationProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Nil(t, p.LastActive)
	assert.NotNil(t, p.Badges)
	assert.Empty(t, p.Badges)
}

func TestGamificationProfile_Upsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, db, "xp@example.com")

	active := time.Date(2024, 5, 3, 18, 30, 0, 0, time.UTC)
	p := &types.GamificationProfile{
		UserID:         userID,
		XP:             520,
		CurrentStreak:  2,
		LongestStreak:  4,
		LastActive:     &active,
		TasksCompleted: 12,
		Badges:         []types.Badge{{ID: "first-step", Name: "First Step", EarnedAt: active}},
	}
	require.NoError(t, db.SaveGamificationProfile(ctx, p))

	got, err := db.GetGamificationProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 520, got.XP)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 2, got.CurrentStreak)
	assert.Equal(t, 4, got.LongestStreak)
	assert.Equal(t, 12, got.TasksCompleted)
	require.NotNil(t, got.LastActive)
	assert.True(t, active.Equal(*got.LastActive))
	require.Len(t, got.Badges, 1)
	assert.Equal(t, "first-step", got.Badges[0].ID)

	p.XP = 1040
	p.Badges = nil
	p.LastActive = nil
	require.NoError(t, db.SaveGamificationProfile(ctx, p))

	got, err = db.GetGamificationProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1040, got.XP)
	assert.Equal(t, 3, got.Level)
	assert.Nil(t, got.LastActive)
	assert.Empty(t, got.Badges)
}

func TestSaveGamificationProfile_Error(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db := newDB(sqlDB, dialectPostgres)

	mock.ExpectExec(`INSERT INTO gamification .* ON CONFLICT \(user_id\) DO UPDATE`).
		WillReturnError(errors.New("disk full"))

	err = db.SaveGamificationProfile(context.Background(), &types.GamificationProfile{UserID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save gamification profile")
	assert.NoError(t, mock.ExpectationsWereMet())
}
