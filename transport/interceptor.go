package transport

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Pantaleaogc/gvero-sdk/nav"
	"github.com/Pantaleaogc/gvero-sdk/notify"
	"github.com/Pantaleaogc/gvero-sdk/session"
)

// Notices are the transient messages shown on authorization failures.
type Notices struct {
	SessionExpired string
	Forbidden      string
	Unreachable    string
}

// DefaultNotices returns the stock English messages.
func DefaultNotices() Notices {
	return Notices{
		SessionExpired: "Your session has expired. Please sign in again.",
		Forbidden:      "You do not have permission to access this resource.",
		Unreachable:    "Could not reach the server. Check your connection.",
	}
}

// Options configures a [Transport].
type Options struct {
	// LoginPath is where a 401 forces navigation to. Defaults to "/login".
	LoginPath string
	// Notices overrides individual messages; empty fields keep the defaults.
	Notices Notices
}

// Transport is the credential-attaching, failure-reacting RoundTripper.
type Transport struct {
	base      http.RoundTripper
	store     *session.Store
	notifier  notify.Notifier
	navigator nav.Navigator
	loginPath string
	notices   Notices
}

// New wraps base. A nil base uses http.DefaultTransport; nil notifier and
// navigator default to no-ops.
func New(base http.RoundTripper, store *session.Store, notifier notify.Notifier, navigator nav.Navigator, opts Options) *Transport {
	t := &Transport{
		base:      base,
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		loginPath: opts.LoginPath,
		notices:   opts.Notices,
	}
	if t.base == nil {
		t.base = http.DefaultTransport
	}
	if t.notifier == nil {
		t.notifier = notify.NoOpNotifier{}
	}
	if t.navigator == nil {
		t.navigator = nav.NoOpNavigator{}
	}
	if t.loginPath == "" {
		t.loginPath = "/login"
	}
	defaults := DefaultNotices()
	if t.notices.SessionExpired == "" {
		t.notices.SessionExpired = defaults.SessionExpired
	}
	if t.notices.Forbidden == "" {
		t.notices.Forbidden = defaults.Forbidden
	}
	if t.notices.Unreachable == "" {
		t.notices.Unreachable = defaults.Unreachable
	}
	return t
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	if token := t.store.Token(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}
	if out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		t.emit(ctx, notify.LevelError, t.notices.Unreachable)
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if clearErr := t.store.Clear(ctx); clearErr != nil {
			log.Print("gvero: session clear after 401 failed")
		}
		t.emit(ctx, notify.LevelWarning, t.notices.SessionExpired)
		t.navigator.Navigate(t.loginPath)
	case http.StatusForbidden:
		t.emit(ctx, notify.LevelWarning, t.notices.Forbidden)
	}

	return resp, nil
}

func (t *Transport) emit(ctx context.Context, level notify.Level, message string) {
	t.notifier.Notify(ctx, notify.Notice{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	})
}
