package store

import (
	"sync"

	"flota_ot/internal/domain/entities"
)

// SessionStore is the in-memory session registry. The DynamoDB repository is
// the durable copy; this store is the hot path consulted on every request.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entities.Session)}
}

func (s *SessionStore) Set(session entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
}

func (s *SessionStore) Get(token string) (entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	return session, ok
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
