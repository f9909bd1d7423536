package gvero

import (
	"context"
	"log"
)

// Login exchanges the credentials for a session. On success the credential
// and identity are stored together and the identity is returned. On any
// failure — rejection or unreachable endpoint — the store is left untouched
// and the single normalized [ErrInvalidCredentials] is returned; the
// underlying cause is logged, not surfaced.
//
// Concurrent Login calls are independent attempts: none is deduplicated or
// cancelled, and the store reflects whichever completes last.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	result, err := c.endpoint.Login(ctx, email, password)
	if err != nil {
		log.Printf("gvero: login failed: %v", err)
		return nil, ErrInvalidCredentials
	}

	if err := c.store.Set(ctx, &result.User, result.Token); err != nil {
		log.Printf("gvero: storing session after login failed: %v", err)
		return nil, ErrInvalidCredentials
	}

	return result.User.Clone(), nil
}
