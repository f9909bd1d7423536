package nav

import (
	"context"
	"net/url"
)

// Route is the navigation metadata the guard consumes. An empty Permission
// means any authenticated user may enter.
type Route struct {
	Path       string
	Permission string
}

// Session is the slice of the session service the guard depends on.
type Session interface {
	// Authenticated reports whether a credential is currently stored. No I/O.
	Authenticated() bool
	// Verify revalidates the stored credential against the backend. A false
	// result means the session has already been cleaned up locally.
	Verify(ctx context.Context) bool
	// HasPermission reports whether the current identity holds the key.
	HasPermission(key string) bool
}

// Options configures guard redirect targets. Zero values select the
// application defaults.
type Options struct {
	LoginPath        string
	AccessDeniedPath string
	ReturnURLParam   string
}

const (
	defaultLoginPath        = "/login"
	defaultAccessDeniedPath = "/access-denied"
	defaultReturnURLParam   = "returnUrl"
)

// Guard gates navigation into protected routes.
type Guard struct {
	session     Session
	navigator   Navigator
	loginPath   string
	deniedPath  string
	returnParam string
}

// NewGuard builds a guard over the given session service. A nil navigator
// disables redirects but keeps the allow/deny decision.
func NewGuard(session Session, navigator Navigator, opts Options) *Guard {
	g := &Guard{
		session:     session,
		navigator:   navigator,
		loginPath:   opts.LoginPath,
		deniedPath:  opts.AccessDeniedPath,
		returnParam: opts.ReturnURLParam,
	}
	if g.navigator == nil {
		g.navigator = NoOpNavigator{}
	}
	if g.loginPath == "" {
		g.loginPath = defaultLoginPath
	}
	if g.deniedPath == "" {
		g.deniedPath = defaultAccessDeniedPath
	}
	if g.returnParam == "" {
		g.returnParam = defaultReturnURLParam
	}
	return g
}

// Check evaluates one navigation attempt into route, where requested is the
// originally requested path (used as the post-login return target). It
// reports whether the navigation may proceed and performs the corresponding
// redirect when it may not:
//
//  1. no stored credential → login route with the return parameter;
//  2. credential fails verification → login route, no return parameter
//     (the session was invalid, not merely absent);
//  3. missing declared permission → access-denied route.
func (g *Guard) Check(ctx context.Context, route Route, requested string) bool {
	if !g.session.Authenticated() {
		g.navigator.Navigate(g.loginRedirect(requested))
		return false
	}

	if !g.session.Verify(ctx) {
		g.navigator.Navigate(g.loginPath)
		return false
	}

	if route.Permission != "" && !g.session.HasPermission(route.Permission) {
		g.navigator.Navigate(g.deniedPath)
		return false
	}

	return true
}

// CheckChain evaluates a nested route chain from root to leaf, applying
// [Guard.Check] to every element. A guard configured at a subtree root runs
// again for each nested route change, not only on first entry. An empty
// chain degenerates to a plain authentication check.
func (g *Guard) CheckChain(ctx context.Context, routes []Route, requested string) bool {
	if len(routes) == 0 {
		return g.Check(ctx, Route{}, requested)
	}
	for _, route := range routes {
		if !g.Check(ctx, route, requested) {
			return false
		}
	}
	return true
}

func (g *Guard) loginRedirect(requested string) string {
	if requested == "" {
		return g.loginPath
	}
	query := url.Values{}
	query.Set(g.returnParam, requested)
	return g.loginPath + "?" + query.Encode()
}
