// Package store persists EcoQuest state in an embedded SQLite database.
// All business logic lives above it; the Store only moves records in and
// out so the backing engine can be swapped without touching the quest core.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Store wraps the SQLite handle and exposes repository methods for users,
// submissions and daily mission sets.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (or creates) the database at the given DSN and applies the
// schema.
func Open(dsn string, log *zap.Logger) (*Store, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single writer keeps SQLite happy and matches the single-session
	// model of the quest core.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user' CHECK(role IN ('user', 'admin')),
		total_points INTEGER NOT NULL DEFAULT 0,
		missions_completed INTEGER NOT NULL DEFAULT 0,
		last_completed_date DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS pending_approvals (
		username TEXT NOT NULL,
		mission_id INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (username, mission_id),
		FOREIGN KEY (username) REFERENCES users(username) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		mission_id INTEGER NOT NULL,
		lat REAL,
		lng REAL,
		proof_link TEXT NOT NULL,
		description TEXT,
		agreed_to_terms INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending', 'approved', 'rejected')),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		decided_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS mission_sets (
		date_key TEXT PRIMARY KEY,
		mission_ids TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions(status);
	CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions(username);
	CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// metaGet reads a key from the meta table, returning "" when absent.
func (s *Store) metaGet(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
