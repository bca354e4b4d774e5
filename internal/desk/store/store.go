// Package store defines the client's local persisted state: the sealed
// credential with its cached profile, and the last-fetched resource lists
// kept for display while offline. It is the browser-storage analogue of the
// web client.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// SessionRecord is the single persisted session. SealedToken is the bearer
// token after cryptox sealing; the store never sees the plaintext.
type SessionRecord struct {
	SealedToken []byte
	ExpiresAt   time.Time
	Profile     domain.UserProfile
	UpdatedAt   time.Time
}

// CachedList is one cached resource payload, keyed by list name
// (e.g. "clubs", "events:student").
type CachedList struct {
	Key       string
	Payload   []byte
	FetchedAt time.Time
}

// Store is the persisted client state.
type Store interface {
	Sessions() Sessions
	Cache() Cache

	Ping(ctx context.Context) error
	Close() error
}

// Sessions holds at most one session record.
type Sessions interface {
	// Get returns the stored session or ErrNotFound.
	Get(ctx context.Context) (SessionRecord, error)

	// Put replaces the stored session.
	Put(ctx context.Context, rec SessionRecord) error

	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}

// Cache is the write-through resource cache.
type Cache interface {
	// Get returns the cached payload for key or ErrNotFound.
	Get(ctx context.Context, key string) (CachedList, error)

	// Put upserts the cached payload for key.
	Put(ctx context.Context, key string, payload []byte, fetchedAt time.Time) error

	// Purge removes every cached payload (called at logout).
	Purge(ctx context.Context) error
}
