package session

import (
	"context"
	"sync"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/store"
)

// memStore is an in-memory store.Store for tests.
type memStore struct {
	mu      sync.Mutex
	session *store.SessionRecord
	cache   map[string]store.CachedList
}

func newMemStore() *memStore {
	return &memStore{cache: make(map[string]store.CachedList)}
}

func (m *memStore) Sessions() store.Sessions   { return (*memSessions)(m) }
func (m *memStore) Cache() store.Cache         { return (*memCache)(m) }
func (m *memStore) Ping(context.Context) error { return nil }
func (m *memStore) Close() error               { return nil }

type memSessions memStore

func (m *memSessions) Get(context.Context) (store.SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return store.SessionRecord{}, store.ErrNotFound
	}
	return *m.session, nil
}

func (m *memSessions) Put(_ context.Context, rec store.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &rec
	return nil
}

func (m *memSessions) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

type memCache memStore

func (m *memCache) Get(_ context.Context, key string) (store.CachedList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.cache[key]
	if !ok {
		return store.CachedList{}, store.ErrNotFound
	}
	return rec, nil
}

func (m *memCache) Put(_ context.Context, key string, payload []byte, fetchedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[key] = store.CachedList{Key: key, Payload: payload, FetchedAt: fetchedAt}
	return nil
}

func (m *memCache) Purge(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]store.CachedList)
	return nil
}
