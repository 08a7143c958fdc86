// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The two backends differ only in how surrogate ids are assigned; every
// other column, constraint, and index is spelled identically.
func CreateSchema(db *sql.DB, databaseType string) error {
	var schema string
	switch databaseType {
	case TypeSQLite:
		schema = schemaSQLite
	case TypePostgres:
		schema = schemaPostgres
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaSQLite = `
-- Listener accounts
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at);

-- Song votes, at most one row per (song, fingerprint)
CREATE TABLE IF NOT EXISTS song_ratings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    song_id TEXT NOT NULL,
    user_fingerprint TEXT NOT NULL,
    rating INTEGER NOT NULL CHECK (rating IN (1, -1)),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (song_id, user_fingerprint)
);

CREATE INDEX IF NOT EXISTS idx_song_ratings_song_id ON song_ratings(song_id);
CREATE INDEX IF NOT EXISTS idx_song_ratings_fingerprint ON song_ratings(user_fingerprint);
`

const schemaPostgres = `
-- Listener accounts
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at);

-- Song votes, at most one row per (song, fingerprint)
CREATE TABLE IF NOT EXISTS song_ratings (
    id BIGSERIAL PRIMARY KEY,
    song_id TEXT NOT NULL,
    user_fingerprint TEXT NOT NULL,
    rating INTEGER NOT NULL CHECK (rating IN (1, -1)),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (song_id, user_fingerprint)
);

CREATE INDEX IF NOT EXISTS idx_song_ratings_song_id ON song_ratings(song_id);
CREATE INDEX IF NOT EXISTS idx_song_ratings_fingerprint ON song_ratings(user_fingerprint);
`
