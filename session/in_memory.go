package session

import "sync"

// Store provides sessions to front ends serving multiple concurrent
// conversations.
type Store interface {
	// Get returns the live session for id, creating it lazily.
	Get(id string) *Session
	// Reset reseeds the identified session; unknown ids are a no-op.
	Reset(id string)
}

// InMemoryStore is a volatile Store keeping sessions in a process-local map.
// It returns live sessions (the Session's own lock guards concurrent access)
// and is best suited for tests and single-process front ends.
type InMemoryStore struct {
	mu           sync.Mutex
	systemPrompt string
	sessions     map[string]*Session
}

// NewInMemoryStore constructs a store seeding new sessions with systemPrompt.
func NewInMemoryStore(systemPrompt string) *InMemoryStore {
	return &InMemoryStore{systemPrompt: systemPrompt, sessions: make(map[string]*Session)}
}

// Get implements Store.
func (s *InMemoryStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := New(id, s.systemPrompt)
	s.sessions[sess.ID] = sess
	return sess
}

// Reset implements Store.
func (s *InMemoryStore) Reset(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		sess.Reset()
	}
}
