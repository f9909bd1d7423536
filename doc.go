// Package gvero is the client-side session and authorization layer for the
// gvero application: it establishes whether a user is authenticated, attaches
// the credential to outgoing requests, reacts to authorization failures, and
// gates navigation into protected areas.
//
// The package is built through [Builder]: wire a storage backend, optionally
// a notifier and a navigator, and Build a [Client]. The Client orchestrates
// four collaborators, each in its own subpackage:
//
//   - session — the durable, observable session store;
//   - transport — the RoundTripper that attaches the bearer credential and
//     reacts to 401/403/unreachable responses;
//   - nav — the navigation guard evaluated before protected routes;
//   - api — the HTTP client for the remote auth endpoint.
//
// # Architecture boundaries
//
// gvero is the public surface. It decides policy: which failures clear the
// session, which produce notices, where forced navigations go. Subpackages
// are mechanism only and never make those decisions themselves.
//
// # What this package must NOT do
//
//   - Render UI. Notices and navigations are handed to caller-supplied sinks.
//   - Issue or validate tokens. The credential is opaque; only the backend
//     judges it.
//   - Enforce authorization. The permission table gates navigation and hides
//     controls; the backend remains the security boundary.
package gvero
