package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/setupdoc"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
)

// Ensure SetupLoader implements the interface.
var _ driven.SetupLoader = (*SetupLoader)(nil)

// SetupLoader reads and writes fit setup files. The format follows the file
// extension: ".json" is JSON, anything else TOML.
type SetupLoader struct{}

// NewSetupLoader creates a setup loader.
func NewSetupLoader() *SetupLoader {
	return &SetupLoader{}
}

// Load parses the setup file at path into a session. A document without a
// name is named after the file.
func (l *SetupLoader) Load(path string) (*domain.FitSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := setupdoc.Decode(setupdoc.FormatForPath(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	session, err := doc.ToSession()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if session.Name == "" {
		session.Name = baseName(path)
	}
	return session, nil
}

// Save writes session to path.
func (l *SetupLoader) Save(path string, session *domain.FitSession) error {
	data, err := setupdoc.Encode(setupdoc.FormatForPath(path), setupdoc.FromSession(session))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
