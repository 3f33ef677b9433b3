package mcp

import (
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Strain evaluates Warren plots.
	Strain driving.StrainService

	// Size evaluates size distributions.
	Size driving.SizeService

	// Session resolves saved sessions. Optional.
	Session driving.SessionService

	// Settings supplies the default Warren plot extent. Optional.
	Settings driving.SettingsService

	// Laue is the Laue group registry. A nil registry is replaced by the
	// built-in one.
	Laue *domain.LaueRegistry
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Strain == nil {
		return ErrMissingStrainService
	}
	if p.Size == nil {
		return ErrMissingSizeService
	}
	if p.Laue == nil {
		p.Laue = domain.NewLaueRegistry()
	}
	return nil
}
