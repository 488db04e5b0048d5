// Package db provides SQL storage for users, saved roadmaps and gamification profiles.
// SQLite (modernc) is the default backend; postgres:// URLs use pgx through database/sql.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// DB wraps a database/sql handle along with the SQL dialect it speaks.
type DB struct {
	sql     *sql.DB
	conn    querier
	dialect dialect
	// locking is set on transaction-scoped copies; reads then take row locks on Postgres.
	locking bool
}

// Open connects to the database named by dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*DB, error) {
	driver, d := "sqlite", dialectSQLite
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver, d = "pgx", dialectPostgres
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if d == dialectSQLite {
		// single writer
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if d == dialectSQLite {
		if _, err := sqlDB.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return newDB(sqlDB, d), nil
}

func newDB(sqlDB *sql.DB, d dialect) *DB {
	return &DB{sql: sqlDB, conn: sqlDB, dialect: d}
}

// withTx returns a copy of db whose queries run inside tx.
func (db *DB) withTx(tx *sql.Tx) *DB {
	return &DB{sql: db.sql, conn: tx, dialect: db.dialect, locking: true}
}

// forUpdate is appended to reads of rows a transaction is about to rewrite.
func (db *DB) forUpdate() string {
	if db.locking && db.dialect == dialectPostgres {
		return " FOR UPDATE"
	}
	return ""
}

// Close closes the underlying connection pool
func (db *DB) Close() error {
	if db.sql != nil {
		return db.sql.Close()
	}
	return nil
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// rebind rewrites ? placeholders to $n for Postgres.
func (db *DB) rebind(query string) string {
	if db.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, db.rebind(query), args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, db.rebind(query), args...)
}

func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, db.rebind(query), args...)
}

// Timestamps are stored as fixed-width RFC 3339 text so both backends share one schema
// and string order matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
	}
	return t, nil
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }
