package server

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-pathfinder/internal/config"
	"github.com/jonathan/career-pathfinder/internal/db"
	"github.com/jonathan/career-pathfinder/internal/types"
)

func setupTestUserService(t *testing.T) (*UserService, *memStore) {
	t.Helper()
	passwordConfig, err := config.NewPasswordConfig(10, "pepper")
	require.NoError(t, err)
	store := newMemStore()
	return NewUserService(store, passwordConfig), store
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: "hashed-password",
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		typesUser := convertDBUserToTypesUser(dbUser)
		require.NotNil(t, typesUser)
		assert.Equal(t, dbUser.ID, typesUser.ID)
		assert.Equal(t, dbUser.Name, typesUser.Name)
		assert.Equal(t, dbUser.Email, typesUser.Email)
		assert.Equal(t, dbUser.CreatedAt, typesUser.CreatedAt)
		assert.Equal(t, dbUser.UpdatedAt, typesUser.UpdatedAt)
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Nil(t, convertDBUserToTypesUser(nil))
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email and hashes password", func(t *testing.T) {
		svc, store := setupTestUserService(t)

		user, err := svc.Register(ctx, &types.CreateUserRequest{
			Name: "  Ada Lovelace ", Email: " Ada@Example.COM ", Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", user.Name)
		assert.Equal(t, "ada@example.com", user.Email)

		stored, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		require.True(t, stored.PasswordSet())
		assert.NotEqual(t, "password123", stored.PasswordHash)
		assert.True(t, svc.passwordConfig.VerifyPassword("password123", stored.PasswordHash))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _ := setupTestUserService(t)
		req := &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"}

		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, &types.CreateUserRequest{Name: "Ada", Email: "ADA@example.com", Password: "password123"})
		var exists *ErrEmailAlreadyExists
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, "ada@example.com", exists.Email)
	})

	t.Run("password too long", func(t *testing.T) {
		svc, store := setupTestUserService(t)

		_, err := svc.Register(ctx, &types.CreateUserRequest{
			Name: "Ada", Email: "ada@example.com", Password: strings.Repeat("x", 80),
		})
		var ve *ErrValidation
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "password", ve.Field)
		assert.Empty(t, store.users, "no account is created")
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := setupTestUserService(t)
		store.err = errors.New("db down")

		_, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check email existence")
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc, store := setupTestUserService(t)

	registered, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)

	noPassword, err := store.CreateUser(ctx, "Legacy", "legacy@example.com")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, noPassword)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(ctx, &types.LoginRequest{Email: " ADA@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	failures := []struct {
		name string
		req  types.LoginRequest
	}{
		{name: "wrong password", req: types.LoginRequest{Email: "ada@example.com", Password: "password124"}},
		{name: "unknown email", req: types.LoginRequest{Email: "nobody@example.com", Password: "password123"}},
		{name: "password never set", req: types.LoginRequest{Email: "legacy@example.com", Password: ""}},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			var bad *ErrInvalidCredentials
			assert.ErrorAs(t, err, &bad)
		})
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestUserService(t)

	user, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, uuid.New(), "password123", "new-password")
		var missing *ErrUserNotFound
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, user.ID, "nope", "new-password")
		var mismatch *ErrPasswordMismatch
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("new password too long", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, user.ID, "password123", strings.Repeat("y", 100))
		var ve *ErrValidation
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "newPassword", ve.Field)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.UpdatePassword(ctx, user.ID, "password123", "new-password"))

		_, err := svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "password123"})
		assert.Error(t, err)
		_, err = svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "new-password"})
		assert.NoError(t, err)
	})
}
