// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fingerprint derives a pseudonymous listener identity from request
metadata, so votes can be limited to one per listener per song without
requiring login or any persisted session state.

	fp := fingerprint.FromRequest(r)

The fingerprint is the first 128 bits of a SHA-256 digest over
"{user_agent}_{address}", rendered as 32 lowercase hex characters. The
address is the first entry of X-Forwarded-For when the request came through
a proxy, otherwise the connection's remote host.

This is explicitly not a security boundary. Two people behind the same
proxy running the same browser version collide and count as one voter;
that is accepted behavior. The only property relied on elsewhere is
determinism: the same client metadata always maps to the same string.
*/
package fingerprint
