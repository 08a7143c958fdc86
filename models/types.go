// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Rating values accepted for a song vote.
const (
	RatingThumbsUp   = 1
	RatingThumbsDown = -1
)

// Request types

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Rating is a pointer so a missing field can be told apart from zero.
type RateSongRequest struct {
	Rating *int `json:"rating"`
}

// Response types

type CreateUserResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type RatingViewResponse struct {
	SongID     string `json:"song_id"`
	ThumbsUp   int    `json:"thumbs_up"`
	ThumbsDown int    `json:"thumbs_down"`
	UserRating *int   `json:"user_rating"`
}

type RateSongResponse struct {
	Message    string `json:"message"`
	SongID     string `json:"song_id"`
	ThumbsUp   int    `json:"thumbs_up"`
	ThumbsDown int    `json:"thumbs_down"`
	UserRating int    `json:"user_rating"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// Domain types

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingView is a song's aggregate plus the caller's own vote, if any.
type RatingView struct {
	SongID     string
	ThumbsUp   int
	ThumbsDown int
	OwnVote    *int
}

// VoteReceipt is the result of a submitted or updated vote.
type VoteReceipt struct {
	Message    string
	SongID     string
	ThumbsUp   int
	ThumbsDown int
	OwnVote    int
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
