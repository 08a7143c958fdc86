// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cache provides a bounded in-process TTL memo used by the read
endpoints (user listing, per-song rating views).

	c := cache.New(cache.DefaultMaxEntries)

	if v, ok := c.Get(key, 30*time.Second); ok { ... }
	c.Set(key, value)
	c.DeletePrefix(cache.Key("ratings", songID))

Keys are operation name plus arguments; rating-view keys include the
caller's fingerprint, since the cached payload embeds their own vote.

The cache is strictly best-effort: writes invalidate the keys they shadow
synchronously (user creation clears the user list, a vote clears that
song's views), and every correctness property of the system holds with the
cache disabled. A nil *Cache disables it; all methods are nil-safe.
*/
package cache
