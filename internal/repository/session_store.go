package repository

import (
	"errors"
	"sync"

	"avika/internal/model"
)

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore holds live sessions. State is process-lifetime only; nothing
// survives a restart.
type SessionStore interface {
	Create(session *model.Session) error
	Get(id string) (*model.Session, error)
	Delete(id string) error
	Count() int
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewSessionStore returns an in-memory session store.
func NewSessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*model.Session),
	}
}

func (s *memorySessionStore) Create(session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return errors.New("session already exists")
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) Get(id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *memorySessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
