// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: connection string (postgres) or file path (sqlite)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AllowedOrigins: CORS origins (default: "*")
  - CacheEnabled: in-process response caching (default: on)

# CLI Flags

	-p        Server port
	-d        Database URL or file path
	-t        Database type
	-origins  Allowed CORS origins
	-cache    Enable response caching

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ALLOWED_ORIGINS → -origins
	CACHE_DISABLED=1 forces caching off

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for the postgres backend

The sqlite backend defaults to a database.db file in the working directory,
matching local development.
*/
package cliparse
