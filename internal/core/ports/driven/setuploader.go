package driven

import "github.com/custodia-labs/wppm-cli/internal/core/domain"

// SetupLoader reads and writes fit setup files.
type SetupLoader interface {
	// Load parses the setup file at path.
	Load(path string) (*domain.FitSession, error)

	// Save writes session to path in the format implied by its extension.
	Save(path string, session *domain.FitSession) error
}
