// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/users", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
tagged with a generated request id that is also returned to the client in
X-Request-ID.

# CORS Middleware

Enable cross-origin requests for the station frontend:

	server := http.Server{
		Handler: middleware.CORS(mux, cfg.AllowedOrigins),
	}

Allows methods GET, POST, OPTIONS with the Content-Type header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

For log lines only. Vote deduplication derives its address through the
fingerprint package, which follows a deliberately narrower policy.
*/
package middleware
