package database

// schema.go creates the application tables on startup and seeds the demo
// account.  The schema is idempotent: every statement is guarded by
// IF NOT EXISTS / INSERT OR IGNORE so restarts preserve existing data.

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-lounge/internal/utils"
)

// DemoUsername and DemoPassword are the fixed credentials of the account
// seeded at first startup.  They are a documented bootstrap convenience,
// not a security boundary.
const (
	DemoUsername = "demo"
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE REFERENCES users(id),
		content TEXT NOT NULL DEFAULT '',
		last_updated TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS game_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE REFERENCES users(id),
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0,
		ties INTEGER NOT NULL DEFAULT 0
	)`,
}

// Init creates the tables if they are missing and seeds the demo account.
// bcryptCost is used when hashing the demo password.
func Init(ctx context.Context, db *sql.DB, bcryptCost int) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	hash, err := utils.HashPassword(DemoPassword, bcryptCost)
	if err != nil {
		return err
	}
	// OR IGNORE keeps an existing demo account (and its data) untouched.
	_, err = db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (username, email, password_hash) VALUES (?,?,?)",
		DemoUsername, DemoEmail, hash)
	return err
}
