// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: name, email
  - RateSongRequest: rating (*int so "absent" and "zero" are distinct)

# Response Types

Types for JSON responses:

  - CreateUserResponse: id, message
  - ListUsersResponse: users
  - RatingViewResponse: song_id, thumbs_up, thumbs_down, user_rating
  - RateSongResponse: message, song_id, thumbs_up, thumbs_down, user_rating
  - HealthResponse: status, timestamp, database
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: registered listener account
  - RatingView: a song's aggregate counts plus the caller's own vote
  - VoteReceipt: outcome of a vote submission

# Constants

Accepted rating values:

	RatingThumbsUp   = 1
	RatingThumbsDown = -1
*/
package models
