// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiocalico/station-api/testutil"
)

func TestCreateUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	l := New(conn)
	ctx := context.Background()

	id, err := l.CreateUser(ctx, "  Alice  ", "  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	// Stored normalized: trimmed name, trimmed lower-cased email.
	var name, email string
	err = conn.QueryRow(`SELECT name, email FROM users WHERE id = $1`, id).Scan(&name, &email)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
	assert.Equal(t, "alice@example.com", email)
}

func TestCreateUserValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	l := New(conn)
	ctx := context.Background()

	tests := []struct {
		name    string
		arg     string
		email   string
		wantErr error
	}{
		{"empty name", "", "a@b.com", ErrNameEmailRequired},
		{"whitespace name", "   ", "a@b.com", ErrNameEmailRequired},
		{"empty email", "Alice", "", ErrNameEmailRequired},
		{"no at sign", "Alice", "alice.example.com", ErrInvalidEmail},
		{"no dot after at", "Alice", "alice@example", ErrInvalidEmail},
		{"dot only before at", "Alice", "alice.smith@example", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.CreateUser(ctx, tt.arg, tt.email)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing was written by any rejected attempt.
	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestCreateUserTruncatesLongFields(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	l := New(conn)

	longName := strings.Repeat("n", 150)
	id, err := l.CreateUser(context.Background(), longName, strings.Repeat("e", 90)+"@radio.fm")
	require.NoError(t, err)

	var name, email string
	require.NoError(t, conn.QueryRow(`SELECT name, email FROM users WHERE id = $1`, id).Scan(&name, &email))
	assert.Len(t, name, 100)
	assert.LessOrEqual(t, len(email), 100)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	l := New(conn)
	ctx := context.Background()

	firstID, err := l.CreateUser(ctx, "A", "x@y.com")
	require.NoError(t, err)

	_, err = l.CreateUser(ctx, "B", "x@y.com")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// Case-insensitive: normalization collides these too.
	_, err = l.CreateUser(ctx, "C", "X@Y.COM")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// The first row is untouched.
	var name string
	require.NoError(t, conn.QueryRow(`SELECT name FROM users WHERE id = $1`, firstID).Scan(&name))
	assert.Equal(t, "A", name)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestListUsersOrderAndBound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	l := New(conn)
	ctx := context.Background()

	for i := 0; i < 105; i++ {
		_, err := l.CreateUser(ctx, fmt.Sprintf("user%03d", i), fmt.Sprintf("user%03d@radio.fm", i))
		require.NoError(t, err)
	}

	users, err := l.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 100, "listing is capped")

	// Most recently created first; ids break created_at ties.
	assert.Equal(t, "user104", users[0].Name)
	for i := 1; i < len(users); i++ {
		assert.Greater(t, users[i-1].ID, users[i].ID, "order must be newest first")
	}
}

func TestListUsersEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	l := New(conn)

	users, err := l.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestCreateUserTruncationKeepsValidUTF8(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	l := New(conn)

	// A two-byte rune straddles the 100-byte cap; it must be dropped
	// whole rather than leaving a dangling continuation byte.
	name := strings.Repeat("a", 99) + "é"
	id, err := l.CreateUser(context.Background(), name, "utf8@example.com")
	require.NoError(t, err)

	var stored string
	require.NoError(t, conn.QueryRow(`SELECT name FROM users WHERE id = $1`, id).Scan(&stored))
	assert.True(t, utf8.ValidString(stored))
	assert.Equal(t, strings.Repeat("a", 99), stored)
}
