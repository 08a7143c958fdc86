// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/radiocalico/station-api/db"
	"github.com/radiocalico/station-api/models"
)

// RatingView returns the aggregate counts for a song plus the caller's own
// vote, if any. Absence of data is a valid zero-filled result, never an
// error.
func (l *Ledger) RatingView(ctx context.Context, songID, fp string) (models.RatingView, error) {
	songID = truncate(songID, maxFieldLen)

	view := models.RatingView{SongID: songID}

	up, down, err := aggregate(ctx, l.db, songID)
	if err != nil {
		return models.RatingView{}, storeErr(err)
	}
	view.ThumbsUp = up
	view.ThumbsDown = down

	own, err := ownVote(ctx, l.db, songID, fp)
	if err != nil {
		return models.RatingView{}, storeErr(err)
	}
	view.OwnVote = own

	return view, nil
}

// SubmitVote records or overwrites the caller's vote on a song, then
// returns the recomputed aggregate. The write is an atomic upsert keyed on
// the store's (song_id, user_fingerprint) constraint, so concurrent
// submissions for the same key serialize instead of erroring; a revote
// overwrites the rating and refreshes created_at.
func (l *Ledger) SubmitVote(ctx context.Context, songID, fp string, rating int) (models.VoteReceipt, error) {
	songID = truncate(songID, maxFieldLen)

	if rating != models.RatingThumbsUp && rating != models.RatingThumbsDown {
		return models.VoteReceipt{}, ErrInvalidRating
	}

	var receipt models.VoteReceipt
	err := db.WithTx(ctx, l.db, func(ctx context.Context, tx db.DBTX) error {
		// The pre-read only decides the reported message; row uniqueness
		// rests on the upsert below, not on this check.
		var exists bool
		err := tx.QueryRowContext(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM song_ratings
				WHERE song_id = $1 AND user_fingerprint = $2
			)
		`, songID, fp).Scan(&exists)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO song_ratings (song_id, user_fingerprint, rating, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (song_id, user_fingerprint)
			DO UPDATE SET rating = EXCLUDED.rating, created_at = EXCLUDED.created_at
		`, songID, fp, rating, time.Now().UTC())
		if err != nil {
			return err
		}

		up, down, err := aggregate(ctx, tx, songID)
		if err != nil {
			return err
		}

		message := MessageSubmitted
		if exists {
			message = MessageUpdated
		}
		receipt = models.VoteReceipt{
			Message:    message,
			SongID:     songID,
			ThumbsUp:   up,
			ThumbsDown: down,
			OwnVote:    rating,
		}
		return nil
	})
	if err != nil {
		return models.VoteReceipt{}, storeErr(err)
	}

	return receipt, nil
}

func aggregate(ctx context.Context, q db.DBTX, songID string) (up, down int, err error) {
	err = q.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN rating = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN rating = -1 THEN 1 ELSE 0 END), 0)
		FROM song_ratings WHERE song_id = $1
	`, songID).Scan(&up, &down)
	return up, down, err
}

func ownVote(ctx context.Context, q db.DBTX, songID, fp string) (*int, error) {
	var rating int
	err := q.QueryRowContext(ctx, `
		SELECT rating FROM song_ratings
		WHERE song_id = $1 AND user_fingerprint = $2
	`, songID, fp).Scan(&rating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
