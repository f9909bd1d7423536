package gvero

import "errors"

var (
	// ErrInvalidCredentials is the single normalized error returned by
	// [Client.Login] for every failure mode: wrong password, unknown user,
	// unreachable endpoint. The underlying cause is logged, never surfaced.
	ErrInvalidCredentials = errors.New("invalid credentials: check your email and password")

	// ErrBuilderReused is returned when Build is called twice on one Builder.
	ErrBuilderReused = errors.New("builder already used")

	// ErrStorageRequired is returned by Build when no storage backend was
	// configured.
	ErrStorageRequired = errors.New("storage backend required")
)
