package domain

import "fmt"

// LaueGroup pairs a Laue-group label with its numeric class id.
type LaueGroup struct {
	ID    int
	Label string
}

// LaueRegistry maps the 14 Laue-group labels to class ids 1-14.
// It is immutable once constructed and safe to share.
type LaueRegistry struct {
	groups  []LaueGroup
	byLabel map[string]int
}

// NewLaueRegistry builds the registry of the 14 Laue classes.
func NewLaueRegistry() *LaueRegistry {
	groups := []LaueGroup{
		{1, "-1"},
		{2, "2/m"},
		{3, "2/mmm"},
		{4, "4/m"},
		{5, "4/mmm"},
		{6, "-3R"},
		{7, "-31mR"},
		{8, "-3"},
		{9, "-3m1"},
		{10, "-31m"},
		{11, "6/m"},
		{12, "6/mmm"},
		{13, "m3"},
		{14, "m3m"},
	}
	byLabel := make(map[string]int, len(groups))
	for _, g := range groups {
		byLabel[g.Label] = g.ID
	}
	return &LaueRegistry{groups: groups, byLabel: byLabel}
}

// ID returns the class id for a label.
func (r *LaueRegistry) ID(label string) (int, error) {
	id, ok := r.byLabel[label]
	if !ok {
		return 0, fmt.Errorf("laue group %q: %w", label, ErrUnknownSymmetryClass)
	}
	return id, nil
}

// Label returns the label for a class id.
func (r *LaueRegistry) Label(id int) (string, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g.Label, nil
		}
	}
	return "", fmt.Errorf("laue id %d: %w", id, ErrUnknownSymmetryClass)
}

// Groups returns a copy of all entries ordered by id.
func (r *LaueRegistry) Groups() []LaueGroup {
	out := make([]LaueGroup, len(r.groups))
	copy(out, r.groups)
	return out
}
