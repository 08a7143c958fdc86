// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Radio Calico API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - UserHandler: listener registration and listing
  - RatingHandler: per-song vote aggregates and vote submission
  - HealthHandler: store liveness probe

	userHandler := handlers.NewUserHandler(ledger, cache)

# Listener Flow

	GET  /api/users → List (most recent first, capped)
	POST /api/users → Create (400 on validation or duplicate email)

# Voting Flow

No login: the voter is identified by a fingerprint derived from request
metadata (see the fingerprint package).

	GET  /api/ratings/{songID} → Get  (aggregate + caller's own vote)
	POST /api/ratings/{songID} → Rate (submit or overwrite, then aggregate)

# Error Mapping

Ledger error kinds map onto responses:

  - ErrValidation variants → 400 with a stable message
  - ErrDuplicateEmail → 400 "Email already exists"
  - anything else → logged, 500 "Internal server error" (driver detail is
    never echoed to callers)

# Caching

Read endpoints consult the shared bounded TTL cache; the write paths clear
exactly the keys they invalidate (user list on creation, a song's views on
a vote). With caching disabled the handlers behave identically.
*/
package handlers
