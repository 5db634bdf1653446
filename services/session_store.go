package services

import (
	"sync"
	"time"

	"medassist-chatbot-backend/models"
)

// SessionStore persists the chat state between turns of one client. Reads
// and writes for a given id must be safe under concurrent requests.
type SessionStore interface {
	Get(id string) (models.ChatState, bool)
	Put(id string, state models.ChatState)
	Reset(id string)
}

type sessionEntry struct {
	state        models.ChatState
	lastActivity time.Time
}

// MemorySessionStore is an in-memory SessionStore guarded by a RWMutex.
// Entries idle longer than the TTL are swept by a janitor goroutine, which
// stands in for an explicit logout path.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	done     chan struct{}
}

// NewMemorySessionStore creates the store and starts its janitor. A zero
// or negative ttl disables expiry.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	store := &MemorySessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go store.janitor()
	}
	return store
}

func (s *MemorySessionStore) Get(id string) (models.ChatState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	if !ok {
		return models.StateInitial, false
	}
	return entry.state, true
}

func (s *MemorySessionStore) Put(id string, state models.ChatState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &sessionEntry{state: state, lastActivity: time.Now()}
}

func (s *MemorySessionStore) Reset(id string) {
	s.Put(id, models.StateInitial)
}

// Close stops the janitor.
func (s *MemorySessionStore) Close() {
	close(s.done)
}

// Len reports how many sessions are currently held.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemorySessionStore) janitor() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.done:
			return
		}
	}
}

func (s *MemorySessionStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.sessions {
		if now.Sub(entry.lastActivity) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
