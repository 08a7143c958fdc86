// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/radiocalico/station-api/cache"
	"github.com/radiocalico/station-api/cliparse"
	"github.com/radiocalico/station-api/handlers"
	"github.com/radiocalico/station-api/ledger"
	"github.com/radiocalico/station-api/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	var c *cache.Cache // nil disables caching
	if cfg.CacheEnabled {
		c = cache.New(cache.DefaultMaxEntries)
	}

	// Initialize handlers
	l := ledger.New(db)
	userHandler := handlers.NewUserHandler(l, c)
	ratingHandler := handlers.NewRatingHandler(l, c)
	healthHandler := handlers.NewHealthHandler(db, cfg.DatabaseType)

	// Health check
	mux.HandleFunc("GET /health", middleware.WithLogging(healthHandler.Check))

	// Listener accounts
	mux.HandleFunc("GET /api/users", middleware.WithLogging(userHandler.List))
	mux.HandleFunc("POST /api/users", middleware.WithLogging(userHandler.Create))

	// Song ratings (public, fingerprint-identified)
	mux.HandleFunc("GET /api/ratings/{songID}", middleware.WithLogging(ratingHandler.Get))
	mux.HandleFunc("POST /api/ratings/{songID}", middleware.WithLogging(ratingHandler.Rate))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Radio Calico API v1"))
	})

	return mux
}
