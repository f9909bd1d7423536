// Package storage provides the durable key-value backends behind the
// session store.
//
// # Backends
//
//   - [RedisBackend] — Redis-backed storage for shared-workstation and kiosk
//     deployments where the session must survive the local filesystem.
//   - [FileBackend] — a single JSON file written atomically (write-temp,
//     rename), the closest analog to browser local storage.
//   - [MemoryBackend] — process-local map, for tests and examples.
//
// # Architecture boundaries
//
// Backends are dumb string-to-string stores. They know nothing about tokens,
// identities, or serialization — key layout and corruption handling belong to
// the session package.
package storage
