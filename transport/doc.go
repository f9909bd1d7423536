// Package transport wraps an http.RoundTripper so every outgoing request
// carries the stored credential and every authorization failure is reacted
// to in one place.
//
// On the request path the transport clones the request (the original is
// never mutated), attaches "Authorization: Bearer <token>" when a session is
// active, and assigns an X-Request-ID when the caller did not.
//
// On the response path only failures matter:
//
//   - 401 — the session is over: clear the store, notify the user, force a
//     navigation to the login route.
//   - 403 — notify only; the user is authenticated, just not entitled.
//   - transport-level failure (no response at all) — notify that the server
//     is unreachable.
//
// The original response or error is always handed back to the caller: the
// transport annotates failures with side effects, it never swallows them.
package transport
