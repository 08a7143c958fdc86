// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the vote ledger: durable storage and aggregation of song
ratings plus listener registration, behind four operations.

	l := ledger.New(conn)

	id, err := l.CreateUser(ctx, name, email)
	users, err := l.ListUsers(ctx)
	view, err := l.RatingView(ctx, songID, fp)
	receipt, err := l.SubmitVote(ctx, songID, fp, rating)

# Vote Semantics

For every (song_id, user_fingerprint) pair there is at most one row,
enforced by a store-level unique constraint. SubmitVote upserts against
that constraint: a first vote inserts ("submitted"), a revote overwrites
the rating and refreshes its timestamp ("updated"). There is no retract
operation. The aggregate returned after a write is recomputed inside the
same transaction.

# Error Kinds

Every failure is one of three kinds, classified with errors.Is:

  - ErrValidation: malformed or missing input (with specific wrapped
    variants ErrNameEmailRequired, ErrInvalidEmail, ErrInvalidRating)
  - ErrDuplicateEmail: the store's unique index rejected a registration
  - ErrStoreUnavailable: any other query failure; wraps driver detail
    intended for logs only

Success is never reported alongside a partial write: user creation is a
single statement and vote submission commits atomically or not at all.
*/
package ledger
