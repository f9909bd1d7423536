package gvero

import (
	"context"

	"github.com/Pantaleaogc/gvero-sdk/api"
	"github.com/Pantaleaogc/gvero-sdk/nav"
	"github.com/Pantaleaogc/gvero-sdk/permission"
	"github.com/Pantaleaogc/gvero-sdk/session"
)

// Client is the session service: it orchestrates login, logout, credential
// verification, and permission checks against the session store and the
// remote auth endpoint. Build one through [Builder]; it is safe for
// concurrent use afterwards.
type Client struct {
	config    Config
	store     *session.Store
	endpoint  *api.Client
	table     *permission.Table
	navigator nav.Navigator
}

// Store exposes the underlying session store so UIs can observe session
// state directly.
func (c *Client) Store() *session.Store {
	return c.store
}

// CurrentUser returns a copy of the current identity, or nil when no session
// is active. No I/O.
func (c *Client) CurrentUser() *Identity {
	return c.store.Current()
}

// Authenticated reports whether a credential is currently stored. It does
// not revalidate the credential — use [Client.Verify] for that.
func (c *Client) Authenticated() bool {
	return c.store.Token() != ""
}

// Observe streams session state: the current value first, then every change
// in order. The channel closes when ctx is done.
func (c *Client) Observe(ctx context.Context) <-chan *Identity {
	return c.store.Observe(ctx)
}

// Guard returns a navigation guard bound to this client and its configured
// routes, using the given navigator (nil falls back to the client's).
func (c *Client) Guard(navigator nav.Navigator) *nav.Guard {
	if navigator == nil {
		navigator = c.navigator
	}
	return nav.NewGuard(c, navigator, nav.Options{
		LoginPath:        c.config.Routes.Login,
		AccessDeniedPath: c.config.Routes.AccessDenied,
		ReturnURLParam:   c.config.Routes.ReturnURLParam,
	})
}
