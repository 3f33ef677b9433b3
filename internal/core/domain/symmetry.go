package domain

import (
	"fmt"
	"strings"
)

// CoefficientCount is the number of quartic strain coefficients e1..e15.
const CoefficientCount = 15

// CoefficientSet is a bit set over the coefficient indices 1..15.
type CoefficientSet uint16

// NewCoefficientSet returns the set of the given 1-based indices.
// Indices outside 1..15 are ignored.
func NewCoefficientSet(indices ...int) CoefficientSet {
	var s CoefficientSet
	for _, i := range indices {
		if i >= 1 && i <= CoefficientCount {
			s |= 1 << (i - 1)
		}
	}
	return s
}

// Has reports whether index i is in the set.
func (s CoefficientSet) Has(i int) bool {
	if i < 1 || i > CoefficientCount {
		return false
	}
	return s&(1<<(i-1)) != 0
}

// Without returns s minus o.
func (s CoefficientSet) Without(o CoefficientSet) CoefficientSet {
	return s &^ o
}

// Indices returns the members in ascending order.
func (s CoefficientSet) Indices() []int {
	var out []int
	for i := 1; i <= CoefficientCount; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// String renders the set as "e1,e3,e6".
func (s CoefficientSet) String() string {
	idx := s.Indices()
	names := make([]string, len(idx))
	for i, n := range idx {
		names[i] = CoefficientName(n)
	}
	return strings.Join(names, ",")
}

// CoefficientName returns "e<n>".
func CoefficientName(n int) string {
	return fmt.Sprintf("e%d", n)
}

// DerivedEquality states that coefficient Target always equals coefficient Source.
type DerivedEquality struct {
	Target int
	Source int
}

// SymmetryClass describes which strain coefficients a Laue class uses.
type SymmetryClass struct {
	ID    int
	Label string

	// Active holds every coefficient present for the class, derived ones included.
	Active CoefficientSet

	// Derived lists the equality constraints between active coefficients.
	Derived []DerivedEquality

	// Validated is false for classes whose reduced form has not been
	// checked against reference formulas.
	Validated bool
}

// Primary returns the active coefficients that are not derived.
func (c SymmetryClass) Primary() CoefficientSet {
	var derived CoefficientSet
	for _, d := range c.Derived {
		derived |= NewCoefficientSet(d.Target)
	}
	return c.Active.Without(derived)
}

// DerivedSource returns the source index of a derived coefficient.
func (c SymmetryClass) DerivedSource(target int) (int, bool) {
	for _, d := range c.Derived {
		if d.Target == target {
			return d.Source, true
		}
	}
	return 0, false
}

var laue = NewLaueRegistry()

var cubicDerived = []DerivedEquality{
	{Target: 2, Source: 1},
	{Target: 3, Source: 1},
	{Target: 5, Source: 4},
	{Target: 6, Source: 4},
}

// symmetryClasses is indexed by id-1. Never mutated.
var symmetryClasses = [...]SymmetryClass{
	{ID: 1, Active: NewCoefficientSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)},
	{ID: 2, Active: NewCoefficientSet(1, 2, 3, 4, 5, 6, 7, 9, 15)},
	{ID: 3, Active: NewCoefficientSet(1, 2, 3, 4, 5, 6, 7)},
	{ID: 4, Active: NewCoefficientSet(1, 3, 4, 6, 7)},
	{ID: 5, Active: NewCoefficientSet(1, 3, 4, 6)},
	{ID: 6, Active: NewCoefficientSet(1, 3, 4, 6, 7, 9, 15)},
	{ID: 7, Active: NewCoefficientSet(1, 3, 4, 6, 7, 9, 15)},
	{ID: 8, Active: NewCoefficientSet(1, 3, 4, 6, 7, 9, 15)},
	{ID: 9, Active: NewCoefficientSet(1, 3, 6, 13)},
	{ID: 10, Active: NewCoefficientSet(1, 3, 6, 13)},
	{ID: 11, Active: NewCoefficientSet(1, 3, 6)},
	{ID: 12, Active: NewCoefficientSet(1, 3, 6)},
	{ID: 13, Active: NewCoefficientSet(1, 2, 3, 4, 5, 6), Derived: cubicDerived, Validated: true},
	{ID: 14, Active: NewCoefficientSet(1, 2, 3, 4, 5, 6), Derived: cubicDerived, Validated: true},
}

// SymmetryClassByID returns the descriptor for a Laue class id.
func SymmetryClassByID(id int) (SymmetryClass, error) {
	if id < 1 || id > len(symmetryClasses) {
		return SymmetryClass{}, fmt.Errorf("laue id %d: %w", id, ErrUnknownSymmetryClass)
	}
	c := symmetryClasses[id-1]
	c.Label, _ = laue.Label(id)
	if c.Derived != nil {
		c.Derived = append([]DerivedEquality(nil), c.Derived...)
	}
	return c, nil
}

// SymmetryClassByLabel returns the descriptor for a Laue label.
func SymmetryClassByLabel(label string) (SymmetryClass, error) {
	id, err := laue.ID(label)
	if err != nil {
		return SymmetryClass{}, err
	}
	return SymmetryClassByID(id)
}
