package storage

import "context"

// Backend is the durable key-value contract consumed by the session store.
//
// Get reports whether the key was present; absence is not an error. Delete
// removes the given keys in the order provided and is a no-op for keys that
// do not exist.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
