// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Radio Calico API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Listener accounts:

	GET  /api/users - List registered listeners
	POST /api/users - Register a listener

Song ratings (no auth; voter identity is a derived fingerprint):

	GET  /api/ratings/{songID} - Aggregate counts plus caller's own vote
	POST /api/ratings/{songID} - Submit or update a vote

# Handler Initialization

The router builds the ledger and shared response cache once and injects
them into handler instances:

	l := ledger.New(db)
	userHandler := handlers.NewUserHandler(l, c)
	ratingHandler := handlers.NewRatingHandler(l, c)

With CacheEnabled false in the config, the cache pointer is nil and every
read goes to the store.
*/
package router
