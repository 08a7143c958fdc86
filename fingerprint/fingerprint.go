// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"
)

// maxUserAgentLen caps the user-agent contribution to the digest input.
const maxUserAgentLen = 500

// hexLen is the rendered fingerprint width: 32 hex chars = 128 bits.
const hexLen = 32

// Derive computes a stable pseudonymous identifier from request metadata.
// Identical (userAgent, address-after-policy) pairs always produce the same
// output. All-empty input yields a single degenerate fingerprint shared by
// every such caller; that collision is accepted, this is deduplication, not
// authentication.
//
// Address policy: the first comma-delimited entry of forwardedFor wins when
// present; otherwise remoteAddr with any :port suffix stripped (the port is
// per-connection and would break determinism).
func Derive(userAgent, remoteAddr, forwardedFor string) string {
	if len(userAgent) > maxUserAgentLen {
		cut := maxUserAgentLen
		for cut > 0 && !utf8.RuneStart(userAgent[cut]) {
			cut--
		}
		userAgent = userAgent[:cut]
	}

	address := clientAddress(remoteAddr, forwardedFor)

	sum := sha256.Sum256([]byte(userAgent + "_" + address))
	return hex.EncodeToString(sum[:])[:hexLen]
}

// FromRequest derives the fingerprint for an inbound HTTP request.
func FromRequest(r *http.Request) string {
	return Derive(r.UserAgent(), r.RemoteAddr, r.Header.Get("X-Forwarded-For"))
}

func clientAddress(remoteAddr, forwardedFor string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}

	if remoteAddr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
