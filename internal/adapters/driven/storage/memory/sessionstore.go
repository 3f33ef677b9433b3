package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// Sessions are copied on the way in and out so callers never share
// parameters with the store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.FitSession
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.FitSession),
	}
}

// Save stores or updates a session.
func (s *SessionStore) Save(_ context.Context, session *domain.FitSession) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Duplicate()
	return nil
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.FitSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session.Duplicate(), nil
}

// Delete removes a session.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// List returns all sessions in no particular order.
func (s *SessionStore) List(_ context.Context) ([]*domain.FitSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.FitSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, session.Duplicate())
	}
	return result, nil
}
