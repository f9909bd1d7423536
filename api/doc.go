// Package api is the HTTP client for the gvero authentication endpoint.
//
// It speaks three routes: POST /auth/login, POST /auth/logout, and
// GET /auth/verify. Any non-2xx response is surfaced as an [*Error] carrying
// the status code and, when the backend provided one, its message — callers
// decide how much of that detail reaches the user.
//
// # Architecture boundaries
//
// The client is stateless. Credential attachment happens in the transport
// package; normalization of authentication failures happens in the root
// package. This package only translates HTTP into typed results.
package api
