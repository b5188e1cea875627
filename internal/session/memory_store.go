package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	id        Identity
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-process session store.  It backs the
// application when no Redis server is reachable and is the store used in
// tests.  Sessions do not survive a restart, which only forces a re-login.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

// Save stores the identity with an absolute expiry.
func (s *MemoryStore) Save(_ context.Context, sid string, id Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = memoryEntry{id: id, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Lookup resolves a session id, lazily dropping it once expired.
func (s *MemoryStore) Lookup(_ context.Context, sid string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sid]
	if !ok {
		return Identity{}, ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, sid)
		return Identity{}, ErrNotFound
	}
	return e.id, nil
}

// Delete removes the session; unknown ids are a no-op.
func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
