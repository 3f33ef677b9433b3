package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LinkKind describes how a parameter's value is determined.
type LinkKind string

const (
	// LinkFree marks a parameter the optimiser may vary.
	LinkFree LinkKind = "free"
	// LinkDerived marks a parameter whose value mirrors another parameter.
	LinkDerived LinkKind = "derived"
)

// Link records whether a parameter is free or derived from another one.
// Derived links refer to their source by name only.
type Link struct {
	Kind LinkKind

	// Source is the name of the parameter this one mirrors.
	// Empty for free parameters.
	Source string
}

// Boundary constrains the values a parameter may take.
type Boundary struct {
	Min Optional[float64]
	Max Optional[float64]
}

// Contains reports whether v lies within the boundary.
func (b Boundary) Contains(v float64) bool {
	if lo, ok := b.Min.Get(); ok && v < lo {
		return false
	}
	if hi, ok := b.Max.Get(); ok && v > hi {
		return false
	}
	return true
}

// Parameter is a named scalar fit variable.
type Parameter struct {
	// Name identifies the parameter (e.g., "e1", "size_mu").
	Name string

	// Value is the current value.
	Value float64

	// Boundary optionally limits Value.
	Boundary Boundary

	// Fixed parameters are excluded from fitting.
	Fixed bool

	// Link says whether the value is free or derived from another parameter.
	Link Link
}

// NewParameter creates a free, unbounded parameter.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{
		Name:  name,
		Value: value,
		Link:  Link{Kind: LinkFree},
	}
}

// NewBoundedParameter creates a free parameter limited to [lo, hi].
func NewBoundedParameter(name string, value, lo, hi float64) *Parameter {
	p := NewParameter(name, value)
	p.Boundary = Boundary{Min: Some(lo), Max: Some(hi)}
	return p
}

// NewDerivedParameter creates a parameter whose value mirrors source.
func NewDerivedParameter(name string, source *Parameter) *Parameter {
	return &Parameter{
		Name:  name,
		Value: source.Value,
		Link:  Link{Kind: LinkDerived, Source: source.Name},
	}
}

// IsDerived reports whether the parameter mirrors another parameter.
func (p *Parameter) IsDerived() bool {
	return p.Link.Kind == LinkDerived
}

// DependencyName returns the name of the mirrored parameter, if any.
func (p *Parameter) DependencyName() (string, bool) {
	if !p.IsDerived() {
		return "", false
	}
	return p.Link.Source, true
}

// SetValue updates a free parameter's value.
func (p *Parameter) SetValue(v float64) error {
	if p.IsDerived() {
		return fmt.Errorf("%s: %w", p.Name, ErrDerivedParameter)
	}
	if !p.Boundary.Contains(v) {
		return fmt.Errorf("%s = %g: %w", p.Name, v, ErrOutOfBounds)
	}
	p.Value = v
	return nil
}

// Duplicate returns an independent copy. A nil receiver yields nil.
func (p *Parameter) Duplicate() *Parameter {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Report renders the parameter on a single line, e.g.
// "e1 0.0001, min 0, max 0.01" or "e2 0.0001 := e1".
func (p *Parameter) Report() string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString(" ")
	sb.WriteString(formatValue(p.Value))

	if p.Fixed {
		sb.WriteString(", fixed")
	}
	if lo, ok := p.Boundary.Min.Get(); ok {
		sb.WriteString(", min ")
		sb.WriteString(formatValue(lo))
	}
	if hi, ok := p.Boundary.Max.Get(); ok {
		sb.WriteString(", max ")
		sb.WriteString(formatValue(hi))
	}
	if src, ok := p.DependencyName(); ok {
		sb.WriteString(" := ")
		sb.WriteString(src)
	}
	return sb.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// collect appends the non-nil parameters to dst.
func collect(dst []*Parameter, params ...*Parameter) []*Parameter {
	for _, p := range params {
		if p != nil {
			dst = append(dst, p)
		}
	}
	return dst
}
