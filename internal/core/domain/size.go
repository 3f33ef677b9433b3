package domain

import (
	"fmt"
	"strconv"
)

// Shape is the assumed crystallite shape.
type Shape string

const (
	ShapeNone        Shape = "none"
	ShapeSphere      Shape = "sphere"
	ShapeCube        Shape = "cube"
	ShapeTetrahedron Shape = "tetrahedron"
	ShapeOctahedron  Shape = "octahedron"
	ShapeCylinder    Shape = "cylinder"
)

// Shapes returns all shapes in declaration order.
func Shapes() []Shape {
	return []Shape{ShapeNone, ShapeSphere, ShapeCube, ShapeTetrahedron, ShapeOctahedron, ShapeCylinder}
}

// ParseShape converts a string to a Shape.
func ParseShape(s string) (Shape, error) {
	for _, shape := range Shapes() {
		if string(shape) == s {
			return shape, nil
		}
	}
	return "", fmt.Errorf("shape %q: %w", s, ErrInvalidInput)
}

// Distribution is the crystallite-size distribution family.
type Distribution string

const (
	DistributionDelta     Distribution = "delta"
	DistributionLognormal Distribution = "lognormal"
	DistributionGamma     Distribution = "gamma"
	DistributionYork      Distribution = "york"
)

// Distributions returns all distribution families in declaration order.
func Distributions() []Distribution {
	return []Distribution{DistributionDelta, DistributionLognormal, DistributionGamma, DistributionYork}
}

// ParseDistribution converts a string to a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	for _, d := range Distributions() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("distribution %q: %w", s, ErrInvalidInput)
}

// Normalization selects how a delta distribution with SAXS is normalised.
type Normalization int

const (
	NormalizeToN Normalization = iota
	NormalizeToN2
)

// String returns the display label ("to N" or "to N²").
func (n Normalization) String() string {
	switch n {
	case NormalizeToN:
		return "to N"
	case NormalizeToN2:
		return "to N²"
	default:
		return "unknown"
	}
}

// ParseNormalization accepts the display label or the numeric code.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "to N", "N", "0":
		return NormalizeToN, nil
	case "to N²", "N2", "1":
		return NormalizeToN2, nil
	}
	return 0, fmt.Errorf("normalization %q: %w", s, ErrInvalidInput)
}

// SizeDistribution configures the crystallite-size distribution.
type SizeDistribution struct {
	Shape        Shape
	Distribution Distribution

	// Location is the distribution's location parameter (mu). Always required.
	Location *Parameter

	// Scale is the distribution's scale parameter (sigma).
	// May be nil only for the delta family.
	Scale *Parameter

	// AddSAXS adds the small-angle scattering contribution (delta only).
	AddSAXS bool

	// NormalizeTo selects the normalisation mode (delta only).
	NormalizeTo Normalization
}

// NewSizeDistribution creates a size distribution and validates it.
func NewSizeDistribution(shape Shape, dist Distribution, mu, sigma *Parameter) (*SizeDistribution, error) {
	s := &SizeDistribution{
		Shape:        shape,
		Distribution: dist,
		Location:     mu,
		Scale:        sigma,
		NormalizeTo:  NormalizeToN,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the required parameters for the family are present.
func (s *SizeDistribution) Validate() error {
	if s.Location == nil {
		return fmt.Errorf("size location (mu): %w", ErrMissingRequiredParameter)
	}
	if s.Scale == nil && s.Distribution != DistributionDelta {
		return fmt.Errorf("size scale (sigma) for %s: %w", s.Distribution, ErrMissingRequiredParameter)
	}
	return nil
}

// Duplicate returns a deep copy including cloned parameters.
func (s *SizeDistribution) Duplicate() *SizeDistribution {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Location = s.Location.Duplicate()
	cp.Scale = s.Scale.Duplicate()
	return &cp
}

// Parameters returns the present parameters.
func (s *SizeDistribution) Parameters() []*Parameter {
	return collect(nil, s.Location, s.Scale)
}

// Report renders the SIZE block.
func (s *SizeDistribution) Report() string {
	r := newReport("SIZE")
	r.line("Shape: " + string(s.Shape))
	r.line("Distribution: " + string(s.Distribution))
	r.param(s.Location)
	r.param(s.Scale)
	if s.Distribution == DistributionDelta {
		r.line("Add SAXS: " + strconv.FormatBool(s.AddSAXS))
		r.line("Normalize to: " + s.NormalizeTo.String())
	}
	return r.finish()
}
