// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/radiocalico/station-api/cache"
	"github.com/radiocalico/station-api/ledger"
	"github.com/radiocalico/station-api/middleware"
	"github.com/radiocalico/station-api/models"
)

// usersCacheTTL is how long a cached user listing stays valid.
const usersCacheTTL = 60 * time.Second

var usersListKey = cache.Key("users_list")

type UserHandler struct {
	ledger *ledger.Ledger
	cache  *cache.Cache
}

func NewUserHandler(l *ledger.Ledger, c *cache.Cache) *UserHandler {
	return &UserHandler{ledger: l, cache: c}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.cache.Get(usersListKey, usersCacheTTL); ok {
		middleware.JSONResponse(w, http.StatusOK, cached)
		return
	}

	users, err := h.ledger.ListUsers(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := models.ListUsersResponse{Users: users}
	h.cache.Set(usersListKey, resp)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.ledger.CreateUser(r.Context(), req.Name, req.Email)
	switch {
	case errors.Is(err, ledger.ErrInvalidEmail):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email format")
		return
	case errors.Is(err, ledger.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name and email are required")
		return
	case errors.Is(err, ledger.ErrDuplicateEmail):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already exists")
		return
	case err != nil:
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// The listing is stale the moment a row lands.
	h.cache.Delete(usersListKey)

	slog.Info("user created", "user_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		ID:      id,
		Message: "User created successfully",
	})
}
