package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is a stored account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PasswordSet reports whether the user has a password hash stored.
func (u *User) PasswordSet() bool {
	return u.PasswordHash != ""
}

// CreateUser inserts a user without a password and returns its id.
func (db *DB) CreateUser(ctx context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	ts := formatTime(now())
	_, err := db.exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, '', ?, ?)`,
		id.String(), name, email, ts, ts,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// GetUser retrieves a user by id, or nil if absent.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row := db.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email, or nil if absent.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, nil
	}
	row := db.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// CheckEmailExists reports whether an account already uses email.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	if err := db.queryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// UpdatePassword stores a new password hash for the user.
func (db *DB) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := db.exec(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, formatTime(now()), id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to update password: user %s not found", id)
	}
	return nil
}

// DeleteUser removes a user and, through cascading keys, their data.
func (db *DB) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := db.exec(ctx, `DELETE FROM users WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var (
		u                User
		id               string
		created, updated string
	)
	if err := row.Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var err error
	if u.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid stored user id %q: %w", id, err)
	}
	if u.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &u, nil
}
