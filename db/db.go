// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported backend types.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the configured backend. The URL is either a file path
// (sqlite) or a connection string (postgres). The caller owns the handle.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case TypeSQLite:
		conn, err := sql.Open("sqlite", databaseURL)
		if err != nil {
			return nil, err
		}
		// SQLite allows one writer at a time. A single pooled connection
		// makes concurrent writers queue on the pool instead of failing
		// with SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
		return conn, nil
	case TypePostgres:
		return sql.Open("postgres", databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// IsUniqueViolation reports whether err is a uniqueness-constraint
// violation from either supported driver. Both drivers surface the
// violation only through the error text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// DBTX is the subset of database/sql used by the ledger.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
