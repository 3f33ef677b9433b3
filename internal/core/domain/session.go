package domain

import (
	"fmt"
	"strings"
	"time"
)

// FitSession is the model configuration of one fit: the radiation, one
// size model and one strain model.
type FitSession struct {
	// ID is the unique identifier for the session.
	ID string

	// Name is the human-readable name.
	Name string

	// Wavelengths is optional; nil when the radiation is not configured.
	Wavelengths *Wavelengths

	// Size is the crystallite-size distribution. Optional.
	Size *SizeDistribution

	// Strain is the strain model. Optional.
	Strain StrainModel

	// CreatedAt is when the session was created.
	CreatedAt time.Time

	// UpdatedAt is when the session was last saved.
	UpdatedAt time.Time
}

// Validate checks the configuration of every present model.
func (s *FitSession) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("session name is required: %w", ErrInvalidInput)
	}
	if s.Size != nil {
		if err := s.Size.Validate(); err != nil {
			return err
		}
	}
	if s.Wavelengths != nil {
		if s.Wavelengths.Principal == nil {
			return missing("principal wavelength")
		}
		if _, err := s.Wavelengths.PrincipalWeight(); err != nil {
			return err
		}
	}
	return nil
}

// Duplicate returns a deep copy with no shared parameters.
func (s *FitSession) Duplicate() *FitSession {
	cp := *s
	if s.Wavelengths != nil {
		cp.Wavelengths = s.Wavelengths.Duplicate()
	}
	if s.Size != nil {
		cp.Size = s.Size.Duplicate()
	}
	if s.Strain != nil {
		cp.Strain = s.Strain.Clone()
	}
	return &cp
}

// Parameters returns every parameter of the session's models.
func (s *FitSession) Parameters() []*Parameter {
	var out []*Parameter
	if s.Wavelengths != nil {
		out = append(out, s.Wavelengths.Parameters()...)
	}
	if s.Size != nil {
		out = append(out, s.Size.Parameters()...)
	}
	if s.Strain != nil {
		out = append(out, s.Strain.Parameters()...)
	}
	return out
}

// Report concatenates the report blocks of the present models.
func (s *FitSession) Report() string {
	var sb strings.Builder
	if s.Wavelengths != nil {
		sb.WriteString(s.Wavelengths.Report())
	}
	if s.Size != nil {
		sb.WriteString(s.Size.Report())
	}
	if s.Strain != nil {
		sb.WriteString(s.Strain.Report())
	}
	return sb.String()
}
