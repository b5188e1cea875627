package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the sqlite database file and verifies the connection.
// The file is created on first use if it does not exist yet.
func Open(path string) (*sql.DB, error) {
	// _busy_timeout lets concurrent writers wait for the file lock instead of
	// failing immediately | _foreign_keys enforces the user_id references
	dsn := "file:" + path + "?_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers through a single file lock; one open
	// connection avoids spurious SQLITE_BUSY between pool connections.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
