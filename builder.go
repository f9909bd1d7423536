package gvero

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/Pantaleaogc/gvero-sdk/api"
	"github.com/Pantaleaogc/gvero-sdk/nav"
	"github.com/Pantaleaogc/gvero-sdk/notify"
	"github.com/Pantaleaogc/gvero-sdk/permission"
	"github.com/Pantaleaogc/gvero-sdk/session"
	"github.com/Pantaleaogc/gvero-sdk/storage"
	"github.com/Pantaleaogc/gvero-sdk/transport"
)

// Builder assembles a [Client]. A Builder is single-use: Build consumes it.
type Builder struct {
	config Config

	backend   storage.Backend
	redis     redis.UniversalClient
	base      *http.Client
	notifier  notify.Notifier
	navigator nav.Navigator

	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the auth endpoint root without replacing the rest of the
// configuration.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.Endpoint.BaseURL = baseURL
	return b
}

// WithStorage sets the durable backend the session store persists to.
func (b *Builder) WithStorage(backend storage.Backend) *Builder {
	b.backend = backend
	return b
}

// WithRedis builds the storage backend from an existing Redis client, using
// the configured key prefix. Ignored when WithStorage was also called.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient supplies the base http.Client for endpoint calls. Its
// transport is wrapped by the credential-attaching interceptor.
func (b *Builder) WithHTTPClient(httpc *http.Client) *Builder {
	b.base = httpc
	return b
}

// WithNotifier sets the sink for transient user notices. Defaults to a no-op.
func (b *Builder) WithNotifier(notifier notify.Notifier) *Builder {
	b.notifier = notifier
	return b
}

// WithNavigator sets the sink for forced navigations. Defaults to a no-op.
func (b *Builder) WithNavigator(navigator nav.Navigator) *Builder {
	b.navigator = navigator
	return b
}

// WithGrants replaces the role → permission-key table.
func (b *Builder) WithGrants(grants map[string][]string) *Builder {
	b.config.Permission.Grants = grants
	return b
}

// Build validates the configuration, performs the one startup read of durable
// storage, and returns the assembled Client. The context bounds that startup
// read only.
func (b *Builder) Build(ctx context.Context) (*Client, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	b.built = true

	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	backend := b.backend
	if backend == nil && b.redis != nil {
		backend = storage.NewRedisBackend(b.redis, b.config.Storage.RedisPrefix)
	}
	if backend == nil {
		return nil, ErrStorageRequired
	}

	store, err := session.Open(ctx, backend, session.Options{
		TokenKey:    b.config.Storage.TokenKey,
		IdentityKey: b.config.Storage.IdentityKey,
	})
	if err != nil {
		return nil, err
	}

	notifier := b.notifier
	if notifier == nil {
		notifier = notify.NoOpNotifier{}
	}
	navigator := b.navigator
	if navigator == nil {
		navigator = nav.NoOpNavigator{}
	}

	base := b.base
	if base == nil {
		base = &http.Client{}
	}
	interceptor := transport.New(base.Transport, store, notifier, navigator, transport.Options{
		LoginPath: b.config.Routes.Login,
		Notices: transport.Notices{
			SessionExpired: b.config.Notices.SessionExpired,
			Forbidden:      b.config.Notices.Forbidden,
			Unreachable:    b.config.Notices.Unreachable,
		},
	})
	httpc := &http.Client{
		Transport:     interceptor,
		Timeout:       b.config.Endpoint.RequestTimeout,
		Jar:           base.Jar,
		CheckRedirect: base.CheckRedirect,
	}

	endpoint := api.New(b.config.Endpoint.BaseURL, httpc, api.Options{
		LoginPath:  b.config.Endpoint.LoginPath,
		LogoutPath: b.config.Endpoint.LogoutPath,
		VerifyPath: b.config.Endpoint.VerifyPath,
	})

	return &Client{
		config:    b.config,
		store:     store,
		endpoint:  endpoint,
		table:     permission.NewTable(grantsOrDefault(b.config)),
		navigator: navigator,
	}, nil
}
