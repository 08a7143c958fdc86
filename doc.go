// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Radio Calico API server.

Radio Calico is a small web API backing the station site: it registers
listener accounts and records per-listener thumbs-up/thumbs-down votes on
songs. Voters are identified without login by a fingerprint derived from
request metadata, so each browser gets one vote per song that it can change
but not duplicate.

# Starting the Server

The server runs on an embedded SQLite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

A .env file in the working directory is loaded if present.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string, or file path for sqlite
    (default: database.db); required for postgres
  - ALLOWED_ORIGINS (-origins): CORS origins (default: *)
  - CACHE_DISABLED=1 (-cache=false): turn off response caching

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, ratings, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - ledger: vote storage, aggregation, and user registration
  - fingerprint: pseudonymous voter identity from request metadata
  - cache: bounded TTL memo for read endpoints
  - db: backend selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
