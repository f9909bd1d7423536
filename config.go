package gvero

import (
	"errors"
	"time"

	"github.com/Pantaleaogc/gvero-sdk/permission"
)

// Config defines the SDK's tunables. Configure it before Build; the built
// [Client] treats it as immutable.
type Config struct {
	Endpoint     EndpointConfig
	Storage      StorageConfig
	Routes       RouteConfig
	Notices      NoticeConfig
	Permission   PermissionConfig
	Verification VerificationConfig
}

/*
====================================
ENDPOINT CONFIG
====================================
*/

// EndpointConfig locates the remote auth endpoint.
type EndpointConfig struct {
	// BaseURL is the endpoint root, e.g. "https://api.gvero.com/api/v1".
	BaseURL string

	LoginPath  string
	LogoutPath string
	VerifyPath string

	// RequestTimeout bounds every endpoint call.
	RequestTimeout time.Duration
	// LogoutTimeout bounds the best-effort logout notification; local
	// cleanup proceeds when it expires.
	LogoutTimeout time.Duration
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig controls the durable key layout.
type StorageConfig struct {
	TokenKey    string
	IdentityKey string
	// RedisPrefix applies when the backend is built from a Redis client via
	// [Builder.WithRedis].
	RedisPrefix string
}

/*
====================================
ROUTE CONFIG
====================================
*/

// RouteConfig names the application routes forced navigations target.
type RouteConfig struct {
	Login          string
	AccessDenied   string
	ReturnURLParam string
}

/*
====================================
NOTICE CONFIG
====================================
*/

// NoticeConfig overrides the transient failure messages. Empty fields keep
// the defaults.
type NoticeConfig struct {
	SessionExpired string
	Forbidden      string
	Unreachable    string
}

/*
====================================
PERMISSION CONFIG
====================================
*/

// PermissionConfig carries the role → permission-key grants. A nil map
// selects [permission.DefaultRoles].
type PermissionConfig struct {
	Grants map[string][]string
}

/*
====================================
VERIFICATION CONFIG
====================================
*/

// VerificationConfig tunes Verify behavior.
type VerificationConfig struct {
	// LocalExpiryCheck, when enabled, treats a credential that parses as a
	// JWT with an expiry in the past as an invalid session without calling
	// the endpoint. Off by default: the credential is normally opaque and
	// only the backend judges it.
	LocalExpiryCheck bool
}

// DefaultConfig returns the configuration the gvero application ships with.
// Only Endpoint.BaseURL must be filled in.
func DefaultConfig() Config {
	return Config{
		Endpoint: EndpointConfig{
			LoginPath:      "/auth/login",
			LogoutPath:     "/auth/logout",
			VerifyPath:     "/auth/verify",
			RequestTimeout: 10 * time.Second,
			LogoutTimeout:  3 * time.Second,
		},
		Storage: StorageConfig{
			TokenKey:    "auth_token",
			IdentityKey: "current_user",
			RedisPrefix: "gv",
		},
		Routes: RouteConfig{
			Login:          "/login",
			AccessDenied:   "/access-denied",
			ReturnURLParam: "returnUrl",
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Permission.Grants != nil {
		grants := make(map[string][]string, len(cfg.Permission.Grants))
		for role, keys := range cfg.Permission.Grants {
			copied := make([]string, len(keys))
			copy(copied, keys)
			grants[role] = copied
		}
		out.Permission.Grants = grants
	}
	return out
}

func validateConfig(cfg Config) error {
	if cfg.Endpoint.BaseURL == "" {
		return errors.New("endpoint base URL required")
	}
	if cfg.Endpoint.RequestTimeout < 0 || cfg.Endpoint.LogoutTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if cfg.Routes.Login == "" {
		return errors.New("login route required")
	}
	if cfg.Routes.AccessDenied == "" {
		return errors.New("access-denied route required")
	}
	return nil
}

func grantsOrDefault(cfg Config) map[string][]string {
	if cfg.Permission.Grants != nil {
		return cfg.Permission.Grants
	}
	return permission.DefaultRoles()
}
