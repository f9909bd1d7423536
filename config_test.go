package gvero

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Endpoint.LoginPath != "/auth/login" || cfg.Endpoint.VerifyPath != "/auth/verify" {
		t.Fatalf("unexpected endpoint paths: %+v", cfg.Endpoint)
	}
	if cfg.Storage.TokenKey != "auth_token" || cfg.Storage.IdentityKey != "current_user" {
		t.Fatalf("unexpected storage keys: %+v", cfg.Storage)
	}
	if cfg.Routes.Login != "/login" || cfg.Routes.AccessDenied != "/access-denied" {
		t.Fatalf("unexpected routes: %+v", cfg.Routes)
	}
	if cfg.Routes.ReturnURLParam != "returnUrl" {
		t.Fatalf("unexpected return-url param %q", cfg.Routes.ReturnURLParam)
	}
	if cfg.Endpoint.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected request timeout %v", cfg.Endpoint.RequestTimeout)
	}
	if cfg.Verification.LocalExpiryCheck {
		t.Fatal("local expiry check must be off by default")
	}
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing base URL", func(cfg *Config) { cfg.Endpoint.BaseURL = "" }, "base URL"},
		{"negative timeout", func(cfg *Config) { cfg.Endpoint.RequestTimeout = -time.Second }, "negative"},
		{"missing login route", func(cfg *Config) { cfg.Routes.Login = "" }, "login route"},
		{"missing denied route", func(cfg *Config) { cfg.Routes.AccessDenied = "" }, "access-denied"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Endpoint.BaseURL = "http://localhost:9"
			tc.mutate(&cfg)
			err := validateConfig(cfg)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Endpoint.BaseURL = "http://localhost:9"
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestCloneConfigCopiesGrants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Permission.Grants = map[string][]string{"vendedor": {"view:sales"}}

	clone := cloneConfig(cfg)
	cfg.Permission.Grants["vendedor"][0] = "mutated"
	cfg.Permission.Grants["extra"] = []string{"x"}

	if clone.Permission.Grants["vendedor"][0] != "view:sales" {
		t.Fatal("clone shares grant slices with the source")
	}
	if _, ok := clone.Permission.Grants["extra"]; ok {
		t.Fatal("clone shares the grant map with the source")
	}
}
