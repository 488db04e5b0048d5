package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a migrated SQLite database in a temporary directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "pathfinder.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

// stubClock makes now() return successive seconds starting at start.
func stubClock(t *testing.T, start time.Time) {
	t.Helper()
	orig := now
	current := start
	now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	t.Cleanup(func() { now = orig })
}

func TestRebind(t *testing.T) {
	pg := newDB(nil, dialectPostgres)
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2", pg.rebind("SELECT * FROM t WHERE a = ? AND b = ?"))

	lite := newDB(nil, dialectSQLite)
	assert.Equal(t, "SELECT * FROM t WHERE a = ?", lite.rebind("SELECT * FROM t WHERE a = ?"))
}

func TestTimeFormat(t *testing.T) {
	whole := time.Date(2024, 3, 1, 10, 0, 5, 0, time.UTC)
	frac := whole.Add(500 * time.Millisecond)

	assert.Less(t, formatTime(whole), formatTime(frac), "string order must follow time order")

	parsed, err := parseTime(formatTime(frac))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(frac))

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrate(context.Background()))
	require.NoError(t, db.Ping(context.Background()))
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	assert.Error(t, err)
}
