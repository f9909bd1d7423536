package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisBackend(t *testing.T, prefix string) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisBackend(rdb, prefix), mr
}

func TestRedisBackendSetGetRoundTrip(t *testing.T) {
	backend, _ := newRedisBackend(t, "gv")
	ctx := context.Background()

	if err := backend.Set(ctx, "auth_token", "tok-1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := backend.Get(ctx, "auth_token")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if value != "tok-1" {
		t.Fatalf("expected tok-1, got %q", value)
	}
}

func TestRedisBackendGetMissingKey(t *testing.T) {
	backend, _ := newRedisBackend(t, "gv")

	value, ok, err := backend.Get(context.Background(), "auth_token")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}
	if value != "" {
		t.Fatalf("expected empty value, got %q", value)
	}
}

func TestRedisBackendPrefixIsApplied(t *testing.T) {
	backend, mr := newRedisBackend(t, "gv")
	ctx := context.Background()

	if err := backend.Set(ctx, "auth_token", "tok-1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := mr.Get("gv:auth_token"); err != nil {
		t.Fatalf("expected prefixed key gv:auth_token in redis: %v", err)
	}
}

func TestRedisBackendDeleteRemovesKeys(t *testing.T) {
	backend, _ := newRedisBackend(t, "")
	ctx := context.Background()

	if err := backend.Set(ctx, "auth_token", "tok-1"); err != nil {
		t.Fatalf("set token failed: %v", err)
	}
	if err := backend.Set(ctx, "current_user", "{}"); err != nil {
		t.Fatalf("set user failed: %v", err)
	}

	if err := backend.Delete(ctx, "auth_token", "current_user"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok, _ := backend.Get(ctx, "auth_token"); ok {
		t.Fatal("expected auth_token to be deleted")
	}
	if _, ok, _ := backend.Get(ctx, "current_user"); ok {
		t.Fatal("expected current_user to be deleted")
	}

	// Deleting missing keys must not error.
	if err := backend.Delete(ctx, "auth_token"); err != nil {
		t.Fatalf("delete of missing key failed: %v", err)
	}
}
