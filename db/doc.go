// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles backend selection, schema creation, and the small
database/sql plumbing shared by the ledger.

# Backends

Two interchangeable backends, chosen by configuration:

  - sqlite: embedded file database (modernc.org/sqlite), used in
    development and tests
  - postgres: networked server (lib/pq), used in production

Open returns a *sql.DB for either:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: listener accounts (email unique)
  - song_ratings: one vote per (song_id, user_fingerprint), rating
    constrained to 1 or -1

The uniqueness of (song_id, user_fingerprint) is enforced by the store, not
application logic, so concurrent votes from one client cannot race into
duplicate rows.

# Dialect Differences

Only the surrogate-id column differs between backends (AUTOINCREMENT vs
BIGSERIAL). Queries elsewhere in the module use $1-style parameters, which
both drivers accept, so the ledger never branches on backend.

IsUniqueViolation classifies constraint errors from either driver:

	if db.IsUniqueViolation(err) { ... }

# Transactions

DBTX is the query subset satisfied by both *sql.DB and *sql.Tx. WithTx runs
a function transactionally with commit/rollback handling:

	err := db.WithTx(ctx, conn, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, "UPDATE ...")
		return err
	})
*/
package db
