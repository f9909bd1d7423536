package gvero

import (
	"context"
	"log"
)

// Logout ends the session. The endpoint is notified best-effort within the
// configured logout timeout — a failure there is logged and changes nothing.
// The local session is cleared and a navigation to the login route is forced
// unconditionally.
func (c *Client) Logout(ctx context.Context) {
	notifyCtx := ctx
	if c.config.Endpoint.LogoutTimeout > 0 {
		var cancel context.CancelFunc
		notifyCtx, cancel = context.WithTimeout(ctx, c.config.Endpoint.LogoutTimeout)
		defer cancel()
	}
	if err := c.endpoint.Logout(notifyCtx); err != nil {
		log.Printf("gvero: logout notification failed: %v", err)
	}

	if err := c.store.Clear(ctx); err != nil {
		log.Printf("gvero: clearing session on logout failed: %v", err)
	}
	c.navigator.Navigate(c.config.Routes.Login)
}
