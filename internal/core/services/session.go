package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driving"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages saved fit sessions.
type SessionService struct {
	store driven.SessionStore
	now   func() time.Time
}

// NewSessionService creates a new session service.
func NewSessionService(store driven.SessionStore) *SessionService {
	return &SessionService{store: store, now: time.Now}
}

// Create validates session, assigns a fresh ID and timestamps and stores it.
// The caller's value is not modified.
func (s *SessionService) Create(ctx context.Context, session *domain.FitSession) (*domain.FitSession, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if session == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	created := session.Duplicate()
	created.ID = uuid.New().String()
	now := s.now()
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := s.store.Save(ctx, created); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return created, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*domain.FitSession, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Find resolves ref as an ID first, then as a session name.
func (s *SessionService) Find(ctx context.Context, ref string) (*domain.FitSession, error) {
	session, err := s.Get(ctx, ref)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return session, err
	}

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, candidate := range all {
		if candidate.Name == ref {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("session %q: %w", ref, domain.ErrNotFound)
}

// List returns all sessions sorted by name, then creation time.
func (s *SessionService) List(ctx context.Context) ([]*domain.FitSession, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	sessions, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return sessions, nil
}

// Remove deletes a session.
func (s *SessionService) Remove(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}

// Report renders the session's models.
func (s *SessionService) Report(ctx context.Context, id string) (string, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return session.Report(), nil
}
