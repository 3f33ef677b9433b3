package domain

import (
	"fmt"
	"math"
)

// Default starting values used by DefaultInvariantModel.
const (
	DefaultCellDistortion = 1e-3
	DefaultInvariantCoeff = 1e-4
)

// quarticTerm is one monomial of the general quartic form:
// weight * e_n * h^ph * k^pk * l^pl.
type quarticTerm struct {
	weight     float64
	ph, pk, pl int
}

// quarticTerms is indexed by coefficient number - 1.
var quarticTerms = [CoefficientCount]quarticTerm{
	{1, 4, 0, 0}, // e1  h⁴
	{1, 0, 4, 0}, // e2  k⁴
	{1, 0, 0, 4}, // e3  l⁴
	{2, 2, 2, 0}, // e4  h²k²
	{2, 0, 2, 2}, // e5  k²l²
	{2, 2, 0, 2}, // e6  h²l²
	{4, 3, 1, 0}, // e7  h³k
	{4, 3, 0, 1}, // e8  h³l
	{4, 1, 3, 0}, // e9  k³h
	{4, 0, 3, 1}, // e10 k³l
	{4, 1, 0, 3}, // e11 l³h
	{4, 0, 1, 3}, // e12 l³k
	{4, 2, 1, 1}, // e13 h²kl
	{4, 1, 2, 1}, // e14 k²hl
	{4, 1, 1, 2}, // e15 l²hk
}

func (t quarticTerm) eval(r Reflection) float64 {
	return t.weight *
		math.Pow(float64(r.H), float64(t.ph)) *
		math.Pow(float64(r.K), float64(t.pk)) *
		math.Pow(float64(r.L), float64(t.pl))
}

// InvariantModel is the symmetry-constrained anisotropic strain model.
// The quartic invariant is evaluated over the active coefficients of its
// Laue class only.
type InvariantModel struct {
	// AA and BB are the cell-distortion coefficients.
	AA *Parameter
	BB *Parameter

	class        SymmetryClass
	coefficients [CoefficientCount]*Parameter
}

var _ StrainModel = (*InvariantModel)(nil)

// NewInvariantModel builds a model for the given Laue class id.
// coeffs is keyed by coefficient number (1..15). Entries outside the class's
// active set are dropped and never read. Derived coefficients of the cubic
// classes are always rebuilt from their primary; supplied values are dropped.
func NewInvariantModel(aa, bb *Parameter, laueID int, coeffs map[int]*Parameter) (*InvariantModel, error) {
	class, err := SymmetryClassByID(laueID)
	if err != nil {
		return nil, err
	}

	m := &InvariantModel{AA: aa, BB: bb, class: class}
	for n, p := range coeffs {
		if !class.Active.Has(n) {
			continue
		}
		if _, derived := class.DerivedSource(n); derived {
			continue
		}
		m.coefficients[n-1] = p
	}

	for _, d := range class.Derived {
		src := m.coefficients[d.Source-1]
		if src == nil {
			return nil, missing(fmt.Sprintf("%s (source of derived %s)", CoefficientName(d.Source), CoefficientName(d.Target)))
		}
		m.coefficients[d.Target-1] = NewDerivedParameter(CoefficientName(d.Target), src)
	}
	return m, nil
}

// DefaultInvariantModel builds a model with aa = bb = 1e-3 and every
// primary coefficient set to 1e-4.
func DefaultInvariantModel(laueID int) (*InvariantModel, error) {
	class, err := SymmetryClassByID(laueID)
	if err != nil {
		return nil, err
	}
	coeffs := make(map[int]*Parameter)
	for _, n := range class.Primary().Indices() {
		coeffs[n] = NewParameter(CoefficientName(n), DefaultInvariantCoeff)
	}
	return NewInvariantModel(
		NewParameter("aa", DefaultCellDistortion),
		NewParameter("bb", DefaultCellDistortion),
		laueID, coeffs)
}

// Kind returns StrainInvariant.
func (m *InvariantModel) Kind() StrainKind { return StrainInvariant }

// Class returns the symmetry class descriptor.
func (m *InvariantModel) Class() SymmetryClass { return m.class }

// LaueID returns the symmetry class id.
func (m *InvariantModel) LaueID() int { return m.class.ID }

// Validated reports whether the class's reduced form has been checked
// against reference formulas.
func (m *InvariantModel) Validated() bool { return m.class.Validated }

// Coefficient returns e<n>. An inactive coefficient yields ErrInactiveCoefficient;
// an active coefficient that was never set yields (nil, nil).
func (m *InvariantModel) Coefficient(n int) (*Parameter, error) {
	if !m.class.Active.Has(n) {
		return nil, fmt.Errorf("%s for laue class %d: %w", CoefficientName(n), m.class.ID, ErrInactiveCoefficient)
	}
	return m.coefficients[n-1], nil
}

// SetCoefficient replaces a primary coefficient.
func (m *InvariantModel) SetCoefficient(n int, p *Parameter) error {
	if !m.class.Active.Has(n) {
		return fmt.Errorf("%s for laue class %d: %w", CoefficientName(n), m.class.ID, ErrInactiveCoefficient)
	}
	if _, derived := m.class.DerivedSource(n); derived {
		return fmt.Errorf("%s: %w", CoefficientName(n), ErrDerivedParameter)
	}
	m.coefficients[n-1] = p
	m.ResolveDerived()
	return nil
}

// value returns the current value of e<n>, reading through derived links.
func (m *InvariantModel) value(n int) (float64, bool) {
	if src, ok := m.class.DerivedSource(n); ok {
		n = src
	}
	p := m.coefficients[n-1]
	if p == nil {
		return 0, false
	}
	return p.Value, true
}

// ResolveDerived copies each primary value into the parameters derived from it.
func (m *InvariantModel) ResolveDerived() {
	for _, d := range m.class.Derived {
		src, dst := m.coefficients[d.Source-1], m.coefficients[d.Target-1]
		if src == nil || dst == nil {
			continue
		}
		dst.Value = src.Value
		dst.Link = Link{Kind: LinkDerived, Source: src.Name}
	}
}

// Invariant evaluates the quartic strain invariant at (h, k, l).
// Only the class's active coefficients are read; unset ones contribute zero.
// e1 is required.
func (m *InvariantModel) Invariant(r Reflection) (float64, error) {
	if m.coefficients[0] == nil {
		return 0, missing("invariant e1")
	}

	var sum float64
	for _, n := range m.class.Active.Indices() {
		v, ok := m.value(n)
		if !ok {
			continue
		}
		sum += v * quarticTerms[n-1].eval(r)
	}
	return sum, nil
}

// Duplicate returns a deep copy. The class descriptor is copied by value
// and derived coefficients are re-resolved against the copied primaries.
// A nil model duplicates to nil.
func (m *InvariantModel) Duplicate() *InvariantModel {
	if m == nil {
		return nil
	}
	cp := &InvariantModel{
		AA:    m.AA.Duplicate(),
		BB:    m.BB.Duplicate(),
		class: m.class,
	}
	for i, p := range m.coefficients {
		cp.coefficients[i] = p.Duplicate()
	}
	cp.ResolveDerived()
	return cp
}

// Clone implements StrainModel. A nil model clones to a nil interface.
func (m *InvariantModel) Clone() StrainModel {
	if m == nil {
		return nil
	}
	return m.Duplicate()
}

// Parameters returns aa, bb and the set coefficients in index order.
func (m *InvariantModel) Parameters() []*Parameter {
	out := collect(nil, m.AA, m.BB)
	return collect(out, m.coefficients[:]...)
}

// Report renders the STRAIN - INVARIANT PAH block.
func (m *InvariantModel) Report() string {
	r := newReport("STRAIN - INVARIANT PAH")
	r.param(m.AA)
	r.param(m.BB)
	if m.class.Label != "" {
		r.line(fmt.Sprintf("Laue Group: %d, %s", m.class.ID, m.class.Label))
	} else {
		r.line(fmt.Sprintf("Laue Group: %d", m.class.ID))
	}
	for _, p := range m.coefficients {
		r.param(p)
	}
	return r.finish()
}
