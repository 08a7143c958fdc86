// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/radiocalico/station-api/db"
	"github.com/radiocalico/station-api/models"
)

// listUsersLimit bounds the listing so the endpoint stays cheap as the
// table grows.
const listUsersLimit = 100

// CreateUser registers a listener and returns the assigned id. The email
// is normalized (trimmed, lower-cased) and must be unique; uniqueness is
// detected from the store's constraint rather than a read-then-write check,
// so concurrent registrations of the same address cannot both succeed.
func (l *Ledger) CreateUser(ctx context.Context, name, email string) (int64, error) {
	name = truncate(strings.TrimSpace(name), maxFieldLen)
	email = strings.ToLower(truncate(strings.TrimSpace(email), maxFieldLen))

	if name == "" || email == "" {
		return 0, ErrNameEmailRequired
	}
	if !validEmail(email) {
		return 0, ErrInvalidEmail
	}

	var id int64
	err := l.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, email, time.Now().UTC()).Scan(&id)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, storeErr(err)
	}

	return id, nil
}

// ListUsers returns registered listeners, most recently created first,
// capped at listUsersLimit. Ties on created_at break by id so the order is
// deterministic.
func (l *Ledger) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, name, email, created_at
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, listUsersLimit)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, storeErr(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return users, nil
}

// validEmail applies the minimal shape check: an @ with at least one dot
// somewhere after it. Anything stricter belongs to a confirmation flow,
// which this system does not have.
func validEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
