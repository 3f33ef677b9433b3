package driven

import (
	"context"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

// SessionStore persists fit sessions.
type SessionStore interface {
	// Save stores or updates a session.
	Save(ctx context.Context, session *domain.FitSession) error

	// Get retrieves a session by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.FitSession, error)

	// Delete removes a session.
	// Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns all stored sessions.
	List(ctx context.Context) ([]*domain.FitSession, error)
}
