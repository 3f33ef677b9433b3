package domain

// StrainKind identifies a strain model family.
type StrainKind string

const (
	StrainInvariant        StrainKind = "invariant"
	StrainKrivoglazWilkens StrainKind = "krivoglaz-wilkens"
	StrainWarren           StrainKind = "warren"
)

// ParseStrainKind converts a string to a StrainKind.
func ParseStrainKind(s string) (StrainKind, bool) {
	switch StrainKind(s) {
	case StrainInvariant, StrainKrivoglazWilkens, StrainWarren:
		return StrainKind(s), true
	}
	return "", false
}

// StrainModel is implemented by every strain model family.
type StrainModel interface {
	// Kind identifies the model family.
	Kind() StrainKind

	// Clone returns a deep copy with no shared parameters.
	Clone() StrainModel

	// Parameters returns the model's present parameters.
	Parameters() []*Parameter

	// Report renders the model's fixed-format report block.
	Report() string
}

// KrivoglazWilkensModel parameterises dislocation-density strain broadening.
// Every field is optional for configuration; evaluation needs all of them.
type KrivoglazWilkensModel struct {
	// Rho is the dislocation density.
	Rho *Parameter
	// Re is the effective outer cut-off radius.
	Re *Parameter
	Ae *Parameter
	Be *Parameter
	As *Parameter
	Bs *Parameter
	// Mix is the edge fraction of the edge/screw mixture.
	Mix *Parameter
	// B is the Burgers vector modulus.
	B *Parameter
}

var _ StrainModel = (*KrivoglazWilkensModel)(nil)

// KrivoglazWilkensValues is a snapshot of the eight model values.
type KrivoglazWilkensValues struct {
	Rho, Re, Ae, Be, As, Bs, Mix, B float64
}

// Kind returns StrainKrivoglazWilkens.
func (m *KrivoglazWilkensModel) Kind() StrainKind { return StrainKrivoglazWilkens }

// Values snapshots the current parameter values.
func (m *KrivoglazWilkensModel) Values() (KrivoglazWilkensValues, error) {
	fields := []struct {
		name string
		p    *Parameter
	}{
		{"rho", m.Rho}, {"Re", m.Re}, {"Ae", m.Ae}, {"Be", m.Be},
		{"As", m.As}, {"Bs", m.Bs}, {"mix", m.Mix}, {"b", m.B},
	}
	for _, f := range fields {
		if f.p == nil {
			return KrivoglazWilkensValues{}, missing("krivoglaz-wilkens " + f.name)
		}
	}
	return KrivoglazWilkensValues{
		Rho: m.Rho.Value, Re: m.Re.Value,
		Ae: m.Ae.Value, Be: m.Be.Value,
		As: m.As.Value, Bs: m.Bs.Value,
		Mix: m.Mix.Value, B: m.B.Value,
	}, nil
}

// Duplicate returns a deep copy. A nil model duplicates to nil.
func (m *KrivoglazWilkensModel) Duplicate() *KrivoglazWilkensModel {
	if m == nil {
		return nil
	}
	return &KrivoglazWilkensModel{
		Rho: m.Rho.Duplicate(),
		Re:  m.Re.Duplicate(),
		Ae:  m.Ae.Duplicate(),
		Be:  m.Be.Duplicate(),
		As:  m.As.Duplicate(),
		Bs:  m.Bs.Duplicate(),
		Mix: m.Mix.Duplicate(),
		B:   m.B.Duplicate(),
	}
}

// Clone implements StrainModel. A nil model clones to a nil interface.
func (m *KrivoglazWilkensModel) Clone() StrainModel {
	if m == nil {
		return nil
	}
	return m.Duplicate()
}

// Parameters returns the present parameters in field order.
func (m *KrivoglazWilkensModel) Parameters() []*Parameter {
	return collect(nil, m.Rho, m.Re, m.Ae, m.Be, m.As, m.Bs, m.Mix, m.B)
}

// Report renders the STRAIN - KRIVOGLAZ-WILKENS MODEL block.
func (m *KrivoglazWilkensModel) Report() string {
	r := newReport("STRAIN - KRIVOGLAZ-WILKENS MODEL")
	for _, p := range m.Parameters() {
		r.param(p)
	}
	return r.finish()
}

// WarrenModel holds the single average cell parameter of the Warren model.
// Curve generation for this family is not defined here.
type WarrenModel struct {
	AverageCellParameter *Parameter
}

var _ StrainModel = (*WarrenModel)(nil)

// Kind returns StrainWarren.
func (m *WarrenModel) Kind() StrainKind { return StrainWarren }

// Duplicate returns a deep copy. A nil model duplicates to nil.
func (m *WarrenModel) Duplicate() *WarrenModel {
	if m == nil {
		return nil
	}
	return &WarrenModel{AverageCellParameter: m.AverageCellParameter.Duplicate()}
}

// Clone implements StrainModel. A nil model clones to a nil interface.
func (m *WarrenModel) Clone() StrainModel {
	if m == nil {
		return nil
	}
	return m.Duplicate()
}

// Parameters returns the present parameters.
func (m *WarrenModel) Parameters() []*Parameter {
	return collect(nil, m.AverageCellParameter)
}

// Report renders the STRAIN - WARREN MODEL block.
func (m *WarrenModel) Report() string {
	r := newReport("STRAIN - WARREN MODEL")
	r.param(m.AverageCellParameter)
	return r.finish()
}
