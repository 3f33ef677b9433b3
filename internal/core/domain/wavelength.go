package domain

import "fmt"

// WeightedWavelength is a secondary wavelength and its relative weight.
type WeightedWavelength struct {
	Wavelength *Parameter
	Weight     *Parameter
}

// Wavelengths describes the radiation used to record a pattern: a principal
// wavelength plus optional weighted secondary lines.
type Wavelengths struct {
	Principal *Parameter
	Secondary []WeightedWavelength
}

// IsSingle reports whether only the principal wavelength is used.
func (w *Wavelengths) IsSingle() bool {
	return len(w.Secondary) == 0
}

// PrincipalWeight returns 1 minus the sum of the secondary weights.
// It fails with ErrInvalidWeight when the secondary weights sum to 1 or more.
func (w *Wavelengths) PrincipalWeight() (float64, error) {
	if w.IsSingle() {
		return 1.0, nil
	}
	var total float64
	for i, s := range w.Secondary {
		if s.Weight == nil {
			return 0, missing(fmt.Sprintf("weight of secondary wavelength %d", i+1))
		}
		total += s.Weight.Value
	}
	if total >= 1.0 {
		return 0, fmt.Errorf("secondary weights sum to %g: %w", total, ErrInvalidWeight)
	}
	return 1.0 - total, nil
}

// Duplicate returns a deep copy.
func (w *Wavelengths) Duplicate() *Wavelengths {
	if w == nil {
		return nil
	}
	cp := &Wavelengths{Principal: w.Principal.Duplicate()}
	if len(w.Secondary) > 0 {
		cp.Secondary = make([]WeightedWavelength, len(w.Secondary))
		for i, s := range w.Secondary {
			cp.Secondary[i] = WeightedWavelength{
				Wavelength: s.Wavelength.Duplicate(),
				Weight:     s.Weight.Duplicate(),
			}
		}
	}
	return cp
}

// Parameters returns the principal wavelength followed by each secondary
// wavelength and its weight.
func (w *Wavelengths) Parameters() []*Parameter {
	out := collect(nil, w.Principal)
	for _, s := range w.Secondary {
		out = collect(out, s.Wavelength, s.Weight)
	}
	return out
}

// Report renders the DIFFRACTION PATTERN block.
func (w *Wavelengths) Report() string {
	r := newReport("DIFFRACTION PATTERN")
	if w.Principal == nil {
		return r.finish()
	}
	if w.IsSingle() {
		r.line("Wavelength: " + w.Principal.Report())
		return r.finish()
	}

	weight := "n/a"
	if pw, err := w.PrincipalWeight(); err == nil {
		weight = formatValue(pw)
	}
	r.line("Principal Wavelength: " + w.Principal.Report() + ", weight: " + weight)
	for _, s := range w.Secondary {
		if s.Wavelength == nil || s.Weight == nil {
			continue
		}
		r.line("Wavelength: " + s.Wavelength.Report() + ", weight: " + s.Weight.Report())
	}
	return r.finish()
}
