// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/radiocalico/station-api/cliparse"
	"github.com/radiocalico/station-api/db"
)

// SetupTestDB creates a fresh embedded database with the full schema.
// Each test gets its own file under t.TempDir, so tests are hermetic and
// need no external server.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "station.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. Caching is off so
// reads always hit the store; cache behavior has its own tests.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    "test.db",
		DatabaseType:   db.TypeSQLite,
		AllowedOrigins: "*",
		CacheEnabled:   false,
	}
}

// CreateTestUser inserts a user row directly and returns its id.
func CreateTestUser(t *testing.T, conn *sql.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (name, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, email, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// SubmitTestVote inserts a song_ratings row directly.
func SubmitTestVote(t *testing.T, conn *sql.DB, songID, fp string, rating int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO song_ratings (song_id, user_fingerprint, rating, created_at)
		VALUES ($1, $2, $3, $4)
	`, songID, fp, rating, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
