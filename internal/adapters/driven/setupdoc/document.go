// Package setupdoc defines the file form of a fit setup and converts it to
// and from domain.FitSession. The same schema is read from TOML and JSON.
package setupdoc

// Parameter is a fit parameter as written in a setup file:
//
//	mu = { value = 2.5, min = 0.1, fixed = true }
type Parameter struct {
	Value float64  `toml:"value" json:"value"`
	Min   *float64 `toml:"min,omitempty" json:"min,omitempty"`
	Max   *float64 `toml:"max,omitempty" json:"max,omitempty"`
	Fixed bool     `toml:"fixed,omitempty" json:"fixed,omitempty"`
}

// Secondary is a weighted secondary wavelength.
type Secondary struct {
	Wavelength *Parameter `toml:"wavelength" json:"wavelength"`
	Weight     *Parameter `toml:"weight" json:"weight"`
}

// Wavelength is the [wavelength] table.
type Wavelength struct {
	Principal *Parameter  `toml:"principal" json:"principal"`
	Secondary []Secondary `toml:"secondary,omitempty" json:"secondary,omitempty"`
}

// Size is the [size] table.
type Size struct {
	Shape        string     `toml:"shape" json:"shape"`
	Distribution string     `toml:"distribution" json:"distribution"`
	Mu           *Parameter `toml:"mu" json:"mu"`
	Sigma        *Parameter `toml:"sigma,omitempty" json:"sigma,omitempty"`
	AddSAXS      bool       `toml:"add_saxs,omitempty" json:"add_saxs,omitempty"`
	NormalizeTo  string     `toml:"normalize_to,omitempty" json:"normalize_to,omitempty"`
}

// Strain is the [strain] table. Model selects which fields apply:
//
//   - "invariant": laue_group, aa, bb, coefficients
//   - "krivoglaz-wilkens": rho, re, ae, be, as, bs, mix, b
//   - "warren": average_cell_parameter
type Strain struct {
	Model string `toml:"model" json:"model"`

	LaueGroup    string                `toml:"laue_group,omitempty" json:"laue_group,omitempty"`
	AA           *Parameter            `toml:"aa,omitempty" json:"aa,omitempty"`
	BB           *Parameter            `toml:"bb,omitempty" json:"bb,omitempty"`
	Coefficients map[string]*Parameter `toml:"coefficients,omitempty" json:"coefficients,omitempty"`

	Rho *Parameter `toml:"rho,omitempty" json:"rho,omitempty"`
	Re  *Parameter `toml:"re,omitempty" json:"re,omitempty"`
	Ae  *Parameter `toml:"ae,omitempty" json:"ae,omitempty"`
	Be  *Parameter `toml:"be,omitempty" json:"be,omitempty"`
	As  *Parameter `toml:"as,omitempty" json:"as,omitempty"`
	Bs  *Parameter `toml:"bs,omitempty" json:"bs,omitempty"`
	Mix *Parameter `toml:"mix,omitempty" json:"mix,omitempty"`
	B   *Parameter `toml:"b,omitempty" json:"b,omitempty"`

	AverageCellParameter *Parameter `toml:"average_cell_parameter,omitempty" json:"average_cell_parameter,omitempty"`
}

// Document is a complete fit setup.
type Document struct {
	Name       string      `toml:"name" json:"name"`
	Wavelength *Wavelength `toml:"wavelength,omitempty" json:"wavelength,omitempty"`
	Size       *Size       `toml:"size,omitempty" json:"size,omitempty"`
	Strain     *Strain     `toml:"strain,omitempty" json:"strain,omitempty"`
}
