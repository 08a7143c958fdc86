// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxFieldLen caps song ids, names, and emails before persistence.
const maxFieldLen = 100

// Messages reported by SubmitVote.
const (
	MessageSubmitted = "submitted"
	MessageUpdated   = "updated"
)

// Error kinds surfaced by ledger operations. Callers classify with
// errors.Is; anything wrapping ErrStoreUnavailable carries driver detail
// that must be logged, never echoed to external callers.
var (
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrNameEmailRequired = fmt.Errorf("%w: name and email are required", ErrValidation)
	ErrInvalidEmail      = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrInvalidRating     = fmt.Errorf("%w: rating must be 1 or -1", ErrValidation)
)

// Ledger owns the users and song_ratings relations. It holds no mutable
// state of its own; safety under concurrent requests comes entirely from
// the backing store's constraints.
type Ledger struct {
	db *sql.DB
}

func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// truncate caps s at n bytes, backing up so a multi-byte rune is never
// split and the stored value stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
