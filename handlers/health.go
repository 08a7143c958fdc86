// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/radiocalico/station-api/middleware"
	"github.com/radiocalico/station-api/models"
)

type HealthHandler struct {
	db           *sql.DB
	databaseType string
}

func NewHealthHandler(db *sql.DB, databaseType string) *HealthHandler {
	return &HealthHandler{db: db, databaseType: databaseType}
}

// Check handles GET /health for load balancers. A quick query proves the
// store is reachable.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	var one int
	if err := h.db.QueryRowContext(r.Context(), "SELECT 1").Scan(&one); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  h.databaseType,
	})
}
