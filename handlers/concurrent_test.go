// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/radiocalico/station-api/ledger"
	"github.com/radiocalico/station-api/models"
	"github.com/radiocalico/station-api/testutil"
)

// TestConcurrentRatings_DistinctVoters verifies that simultaneous votes from
// different listeners don't corrupt the counts or drop rows
func TestConcurrentRatings_DistinctVoters(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewRatingHandler(ledger.New(conn), nil)

	numVoters := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			rating := models.RatingThumbsUp
			if voterIdx%2 == 1 {
				rating = models.RatingThumbsDown
			}

			body, _ := json.Marshal(models.RateSongRequest{Rating: &rating})
			req := httptest.NewRequest("POST", "/api/ratings/song-1", bytes.NewReader(body))
			req.SetPathValue("songID", "song-1")
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", voterIdx+1))
			w := httptest.NewRecorder()

			handler.Rate(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	var rowCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM song_ratings WHERE song_id = 'song-1'`).Scan(&rowCount); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if rowCount != numVoters {
		t.Errorf("Expected %d rows, got %d", numVoters, rowCount)
	}

	var up, down int
	err := conn.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN rating = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN rating = -1 THEN 1 ELSE 0 END), 0)
		FROM song_ratings WHERE song_id = 'song-1'
	`).Scan(&up, &down)
	if err != nil {
		t.Fatalf("Failed to aggregate votes: %v", err)
	}
	if up != numVoters/2 || down != numVoters/2 {
		t.Errorf("Expected %d/%d split, got %d/%d", numVoters/2, numVoters/2, up, down)
	}
}

// TestConcurrentRatings_SameVoter verifies that a listener hammering the vote
// button ends up with exactly one row, whatever the interleaving
func TestConcurrentRatings_SameVoter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewRatingHandler(ledger.New(conn), nil)

	numAttempts := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(attempt int) {
			defer wg.Done()

			rating := models.RatingThumbsUp
			if attempt%2 == 1 {
				rating = models.RatingThumbsDown
			}

			body, _ := json.Marshal(models.RateSongRequest{Rating: &rating})
			req := httptest.NewRequest("POST", "/api/ratings/song-1", bytes.NewReader(body))
			req.SetPathValue("songID", "song-1")
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Forwarded-For", "203.0.113.50")
			w := httptest.NewRecorder()

			handler.Rate(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numAttempts {
		t.Errorf("Expected %d successful votes, got %d", numAttempts, successCount.Load())
	}

	var rowCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM song_ratings WHERE song_id = 'song-1'`).Scan(&rowCount); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if rowCount != 1 {
		t.Errorf("Expected a single row for one voter, got %d", rowCount)
	}

	var rating int
	if err := conn.QueryRow(`SELECT rating FROM song_ratings WHERE song_id = 'song-1'`).Scan(&rating); err != nil {
		t.Fatalf("Failed to read final vote: %v", err)
	}
	if rating != models.RatingThumbsUp && rating != models.RatingThumbsDown {
		t.Errorf("Final vote outside valid range: %d", rating)
	}
}
