package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/Pantaleaogc/gvero-sdk/storage"
)

// ErrIncompleteSession is returned when Set is called without both an
// identity and a credential.
var ErrIncompleteSession = errors.New("identity and credential must be set together")

const (
	// DefaultTokenKey is the storage key holding the raw credential.
	DefaultTokenKey = "auth_token"
	// DefaultIdentityKey is the storage key holding the serialized identity.
	DefaultIdentityKey = "current_user"
)

// Options configures a [Store]. Zero values select the default storage keys.
type Options struct {
	TokenKey    string
	IdentityKey string
}

// Store holds the current session and its durable representation.
//
// All reads of the in-memory state are O(1) and perform no I/O. Set and Clear
// are serialized: subscribers observe writes in exactly the order the calls
// were made.
type Store struct {
	backend     storage.Backend
	tokenKey    string
	identityKey string

	mu        sync.Mutex
	token     string
	identity  *Identity
	subs      map[uint64]*subscriber
	nextSubID uint64
}

// Open creates a store backed by the given storage and performs the one
// startup read. A credential without a parsable identity (or the reverse) is
// corruption: both keys are scrubbed and the store starts with no session.
// Corruption never fails Open; only backend unavailability does.
func Open(ctx context.Context, backend storage.Backend, opts Options) (*Store, error) {
	s := &Store{
		backend:     backend,
		tokenKey:    opts.TokenKey,
		identityKey: opts.IdentityKey,
		subs:        make(map[uint64]*subscriber),
	}
	if s.tokenKey == "" {
		s.tokenKey = DefaultTokenKey
	}
	if s.identityKey == "" {
		s.identityKey = DefaultIdentityKey
	}

	token, tokenOK, err := backend.Get(ctx, s.tokenKey)
	if err != nil {
		return nil, err
	}
	if token == "" {
		tokenOK = false
	}

	raw, identityOK, err := backend.Get(ctx, s.identityKey)
	if err != nil {
		return nil, err
	}

	switch {
	case tokenOK && identityOK:
		var identity Identity
		if unmarshalErr := json.Unmarshal([]byte(raw), &identity); unmarshalErr != nil {
			s.scrub(ctx)
		} else {
			s.token = token
			s.identity = &identity
		}
	case tokenOK || identityOK:
		s.scrub(ctx)
	}

	return s, nil
}

func (s *Store) scrub(ctx context.Context) {
	if err := s.backend.Delete(ctx, s.tokenKey, s.identityKey); err != nil {
		log.Print("gvero: session scrub after corrupt storage failed")
	}
}

// Current returns a copy of the current identity, or nil when no session is
// active. No I/O is performed.
func (s *Store) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.Clone()
}

// Token returns the current credential, or "" when no session is active.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Set persists the credential and identity — credential first, so an
// interruption between the two writes never leaves an identity without a
// credential — then publishes the new identity to all observers. The
// in-memory state is only updated once both writes succeed.
func (s *Store) Set(ctx context.Context, identity *Identity, token string) error {
	if identity == nil || token == "" {
		return ErrIncompleteSession
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Set(ctx, s.tokenKey, token); err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.identityKey, string(data)); err != nil {
		return err
	}

	s.token = token
	s.identity = identity.Clone()
	s.broadcastLocked(s.identity)
	return nil
}

// Clear removes both keys from durable storage and publishes nil. The
// in-memory session is dropped even when the backend delete fails, so a
// storage outage can never pin a stale identity on screen; the error is
// returned for the caller to log.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.backend.Delete(ctx, s.tokenKey, s.identityKey)

	s.token = ""
	s.identity = nil
	s.broadcastLocked(nil)
	return err
}
