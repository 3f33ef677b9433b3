package setupdoc

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

var laue = domain.NewLaueRegistry()

// ToSession builds the domain session. Parameters are named after their keys.
func (d *Document) ToSession() (*domain.FitSession, error) {
	session := &domain.FitSession{Name: d.Name}

	if d.Wavelength != nil {
		w, err := d.Wavelength.toDomain()
		if err != nil {
			return nil, err
		}
		session.Wavelengths = w
	}
	if d.Size != nil {
		s, err := d.Size.toDomain()
		if err != nil {
			return nil, err
		}
		session.Size = s
	}
	if d.Strain != nil {
		m, err := d.Strain.toDomain()
		if err != nil {
			return nil, err
		}
		session.Strain = m
	}
	return session, nil
}

// FromSession builds the document form of s. Derived coefficients are omitted.
func FromSession(s *domain.FitSession) *Document {
	doc := &Document{Name: s.Name}
	if s.Wavelengths != nil {
		doc.Wavelength = fromWavelengths(s.Wavelengths)
	}
	if s.Size != nil {
		doc.Size = &Size{
			Shape:        string(s.Size.Shape),
			Distribution: string(s.Size.Distribution),
			Mu:           fromParameter(s.Size.Location),
			Sigma:        fromParameter(s.Size.Scale),
			AddSAXS:      s.Size.AddSAXS,
		}
		if s.Size.Distribution == domain.DistributionDelta {
			doc.Size.NormalizeTo = s.Size.NormalizeTo.String()
		}
	}
	if s.Strain != nil {
		doc.Strain = fromStrain(s.Strain)
	}
	return doc
}

func (p *Parameter) toDomain(name string) (*domain.Parameter, error) {
	if p == nil {
		return nil, nil
	}
	out := domain.NewParameter(name, p.Value)
	out.Fixed = p.Fixed
	if p.Min != nil {
		out.Boundary.Min = domain.Some(*p.Min)
	}
	if p.Max != nil {
		out.Boundary.Max = domain.Some(*p.Max)
	}
	if !out.Boundary.Contains(p.Value) {
		return nil, fmt.Errorf("%s = %g: %w", name, p.Value, domain.ErrOutOfBounds)
	}
	return out, nil
}

func fromParameter(p *domain.Parameter) *Parameter {
	if p == nil {
		return nil
	}
	out := &Parameter{Value: p.Value, Fixed: p.Fixed}
	if v, ok := p.Boundary.Min.Get(); ok {
		out.Min = &v
	}
	if v, ok := p.Boundary.Max.Get(); ok {
		out.Max = &v
	}
	return out
}

func (w *Wavelength) toDomain() (*domain.Wavelengths, error) {
	if w.Principal == nil {
		return nil, fmt.Errorf("wavelength.principal: %w", domain.ErrMissingRequiredParameter)
	}
	principal, err := w.Principal.toDomain("wavelength")
	if err != nil {
		return nil, err
	}
	out := &domain.Wavelengths{Principal: principal}
	for i, s := range w.Secondary {
		suffix := strconv.Itoa(i + 2)
		wl, err := s.Wavelength.toDomain("wavelength_" + suffix)
		if err != nil {
			return nil, err
		}
		weight, err := s.Weight.toDomain("weight_" + suffix)
		if err != nil {
			return nil, err
		}
		if wl == nil || weight == nil {
			return nil, fmt.Errorf("wavelength.secondary[%d]: %w", i, domain.ErrMissingRequiredParameter)
		}
		out.Secondary = append(out.Secondary, domain.WeightedWavelength{Wavelength: wl, Weight: weight})
	}
	if _, err := out.PrincipalWeight(); err != nil {
		return nil, err
	}
	return out, nil
}

func fromWavelengths(w *domain.Wavelengths) *Wavelength {
	out := &Wavelength{Principal: fromParameter(w.Principal)}
	for _, s := range w.Secondary {
		out.Secondary = append(out.Secondary, Secondary{
			Wavelength: fromParameter(s.Wavelength),
			Weight:     fromParameter(s.Weight),
		})
	}
	return out
}

func (s *Size) toDomain() (*domain.SizeDistribution, error) {
	shape, err := domain.ParseShape(orDefault(s.Shape, string(domain.ShapeSphere)))
	if err != nil {
		return nil, err
	}
	dist, err := domain.ParseDistribution(orDefault(s.Distribution, string(domain.DistributionLognormal)))
	if err != nil {
		return nil, err
	}
	mu, err := s.Mu.toDomain("mu")
	if err != nil {
		return nil, err
	}
	sigma, err := s.Sigma.toDomain("sigma")
	if err != nil {
		return nil, err
	}

	out, err := domain.NewSizeDistribution(shape, dist, mu, sigma)
	if err != nil {
		return nil, err
	}
	out.AddSAXS = s.AddSAXS
	if s.NormalizeTo != "" {
		if out.NormalizeTo, err = domain.ParseNormalization(s.NormalizeTo); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Strain) toDomain() (domain.StrainModel, error) {
	kind, ok := domain.ParseStrainKind(s.Model)
	if !ok {
		return nil, fmt.Errorf("strain model %q: %w", s.Model, domain.ErrInvalidInput)
	}

	switch kind {
	case domain.StrainKrivoglazWilkens:
		return s.krivoglazWilkens()
	case domain.StrainWarren:
		p, err := s.AverageCellParameter.toDomain("average_cell_parameter")
		if err != nil {
			return nil, err
		}
		return &domain.WarrenModel{AverageCellParameter: p}, nil
	default:
		return s.invariant()
	}
}

// ParseLaueGroup accepts a Laue label ("m3m") or a class id ("14").
func ParseLaueGroup(s string) (int, error) {
	if id, err := laue.ID(s); err == nil {
		return id, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("laue group %q: %w", s, domain.ErrUnknownSymmetryClass)
	}
	if _, err := laue.Label(id); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseCoefficientName converts "e7" to 7. Only the canonical names e1..e15
// are accepted.
func ParseCoefficientName(name string) (int, error) {
	for n := 1; n <= domain.CoefficientCount; n++ {
		if name == domain.CoefficientName(n) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("coefficient %q: %w", name, domain.ErrInvalidInput)
}

func (s *Strain) invariant() (domain.StrainModel, error) {
	if s.LaueGroup == "" {
		return nil, fmt.Errorf("strain.laue_group: %w", domain.ErrMissingRequiredParameter)
	}
	id, err := ParseLaueGroup(s.LaueGroup)
	if err != nil {
		return nil, err
	}
	if s.Coefficients == nil && s.AA == nil && s.BB == nil {
		return domain.DefaultInvariantModel(id)
	}

	class, err := domain.SymmetryClassByID(id)
	if err != nil {
		return nil, err
	}
	coeffs := make(map[int]*domain.Parameter, len(s.Coefficients))
	for name, p := range s.Coefficients {
		n, err := ParseCoefficientName(name)
		if err != nil {
			return nil, err
		}
		if !class.Active.Has(n) {
			return nil, fmt.Errorf("%s for laue group %s: %w", name, class.Label, domain.ErrInactiveCoefficient)
		}
		if src, derived := class.DerivedSource(n); derived {
			return nil, fmt.Errorf("%s follows %s for laue group %s: %w",
				name, domain.CoefficientName(src), class.Label, domain.ErrDerivedParameter)
		}
		if coeffs[n], err = p.toDomain(domain.CoefficientName(n)); err != nil {
			return nil, err
		}
	}

	aa, err := s.AA.toDomain("aa")
	if err != nil {
		return nil, err
	}
	if aa == nil {
		aa = domain.NewParameter("aa", domain.DefaultCellDistortion)
	}
	bb, err := s.BB.toDomain("bb")
	if err != nil {
		return nil, err
	}
	if bb == nil {
		bb = domain.NewParameter("bb", domain.DefaultCellDistortion)
	}
	return domain.NewInvariantModel(aa, bb, id, coeffs)
}

func (s *Strain) krivoglazWilkens() (domain.StrainModel, error) {
	m := &domain.KrivoglazWilkensModel{}
	fields := []struct {
		name string
		src  *Parameter
		dst  **domain.Parameter
	}{
		{"rho", s.Rho, &m.Rho}, {"Re", s.Re, &m.Re}, {"Ae", s.Ae, &m.Ae}, {"Be", s.Be, &m.Be},
		{"As", s.As, &m.As}, {"Bs", s.Bs, &m.Bs}, {"mix", s.Mix, &m.Mix}, {"b", s.B, &m.B},
	}
	for _, f := range fields {
		p, err := f.src.toDomain(f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = p
	}
	return m, nil
}

func fromStrain(m domain.StrainModel) *Strain {
	out := &Strain{Model: string(m.Kind())}
	switch v := m.(type) {
	case *domain.InvariantModel:
		class := v.Class()
		out.LaueGroup = class.Label
		out.AA = fromParameter(v.AA)
		out.BB = fromParameter(v.BB)
		out.Coefficients = make(map[string]*Parameter)
		for _, n := range class.Primary().Indices() {
			p, err := v.Coefficient(n)
			if err != nil || p == nil {
				continue
			}
			out.Coefficients[domain.CoefficientName(n)] = fromParameter(p)
		}
	case *domain.KrivoglazWilkensModel:
		out.Rho, out.Re = fromParameter(v.Rho), fromParameter(v.Re)
		out.Ae, out.Be = fromParameter(v.Ae), fromParameter(v.Be)
		out.As, out.Bs = fromParameter(v.As), fromParameter(v.Bs)
		out.Mix, out.B = fromParameter(v.Mix), fromParameter(v.B)
	case *domain.WarrenModel:
		out.AverageCellParameter = fromParameter(v.AverageCellParameter)
	}
	return out
}

// CoefficientKeys returns the coefficient names of s in index order.
func (s *Strain) CoefficientKeys() []string {
	keys := make([]string, 0, len(s.Coefficients))
	for k := range s.Coefficients {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := ParseCoefficientName(keys[i])
		b, _ := ParseCoefficientName(keys[j])
		return a < b
	})
	return keys
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
