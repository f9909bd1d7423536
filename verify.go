package gvero

import (
	"context"
	"log"
	"time"

	"github.com/Pantaleaogc/gvero-sdk/jwt"
)

// Verify revalidates the stored credential against the endpoint and reports
// whether the session is still good. It never returns an error.
//
// With no stored credential it resolves false immediately, without a network
// call. On endpoint success the identity is refreshed from the authoritative
// response (the credential itself is not rotated). On any failure the session
// is treated as invalid: local state is cleared, a navigation to the login
// route is forced, and Verify resolves false. The endpoint is not notified —
// the credential is already known-bad.
func (c *Client) Verify(ctx context.Context) bool {
	token := c.store.Token()
	if token == "" {
		return false
	}

	if c.config.Verification.LocalExpiryCheck && jwt.Expired(token, time.Now()) {
		c.invalidate(ctx)
		return false
	}

	identity, err := c.endpoint.Verify(ctx)
	if err != nil {
		log.Printf("gvero: credential verification failed: %v", err)
		c.invalidate(ctx)
		return false
	}

	if err := c.store.Set(ctx, identity, token); err != nil {
		log.Printf("gvero: refreshing identity after verification failed: %v", err)
	}
	return true
}

// invalidate is the local half of logout: clear and redirect, no remote call.
func (c *Client) invalidate(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		log.Printf("gvero: clearing invalid session failed: %v", err)
	}
	c.navigator.Navigate(c.config.Routes.Login)
}
