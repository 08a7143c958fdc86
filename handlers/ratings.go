// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/radiocalico/station-api/cache"
	"github.com/radiocalico/station-api/fingerprint"
	"github.com/radiocalico/station-api/ledger"
	"github.com/radiocalico/station-api/middleware"
	"github.com/radiocalico/station-api/models"
)

// ratingsCacheTTL is short: aggregates move while a song is on air.
const ratingsCacheTTL = 30 * time.Second

type RatingHandler struct {
	ledger *ledger.Ledger
	cache  *cache.Cache
}

func NewRatingHandler(l *ledger.Ledger, c *cache.Cache) *RatingHandler {
	return &RatingHandler{ledger: l, cache: c}
}

// Get handles GET /api/ratings/:songID
func (h *RatingHandler) Get(w http.ResponseWriter, r *http.Request) {
	songID := r.PathValue("songID")
	if songID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song id is required")
		return
	}

	fp := fingerprint.FromRequest(r)

	// Keyed per fingerprint: the payload embeds the caller's own vote.
	key := cache.Key("ratings", songID, fp)
	if cached, ok := h.cache.Get(key, ratingsCacheTTL); ok {
		middleware.JSONResponse(w, http.StatusOK, cached)
		return
	}

	view, err := h.ledger.RatingView(r.Context(), songID, fp)
	if err != nil {
		slog.Error("failed to fetch ratings", "error", err, "song_id", songID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := models.RatingViewResponse{
		SongID:     view.SongID,
		ThumbsUp:   view.ThumbsUp,
		ThumbsDown: view.ThumbsDown,
		UserRating: view.OwnVote,
	}
	h.cache.Set(key, resp)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Rate handles POST /api/ratings/:songID
func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	songID := r.PathValue("songID")
	if songID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song id is required")
		return
	}

	var req models.RateSongRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Rating == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Rating is required")
		return
	}

	fp := fingerprint.FromRequest(r)

	receipt, err := h.ledger.SubmitVote(r.Context(), songID, fp, *req.Rating)
	switch {
	case errors.Is(err, ledger.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Rating must be 1 (thumbs up) or -1 (thumbs down)")
		return
	case err != nil:
		slog.Error("failed to submit rating", "error", err, "song_id", songID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Every cached view of this song is stale now, for all fingerprints.
	// The trailing separator keeps a song id that is a prefix of another
	// from clearing the sibling's entries.
	h.cache.DeletePrefix(cache.Key("ratings", songID) + ":")

	slog.Info("rating submitted", "song_id", receipt.SongID, "rating", receipt.OwnVote, "result", receipt.Message)

	middleware.JSONResponse(w, http.StatusOK, models.RateSongResponse{
		Message:    receipt.Message,
		SongID:     receipt.SongID,
		ThumbsUp:   receipt.ThumbsUp,
		ThumbsDown: receipt.ThumbsDown,
		UserRating: receipt.OwnVote,
	})
}
