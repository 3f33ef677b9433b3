package driving

import (
	"context"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

// SessionService manages saved fit sessions.
type SessionService interface {
	// Create validates and stores a new session, assigning its ID and timestamps.
	Create(ctx context.Context, session *domain.FitSession) (*domain.FitSession, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*domain.FitSession, error)

	// Find resolves a session by ID, falling back to an exact name match.
	Find(ctx context.Context, ref string) (*domain.FitSession, error)

	// List returns all sessions sorted by name.
	List(ctx context.Context) ([]*domain.FitSession, error)

	// Remove deletes a session.
	Remove(ctx context.Context, id string) error

	// Report renders the session's report blocks.
	Report(ctx context.Context, id string) (string, error)
}
