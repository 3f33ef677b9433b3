// Package kernel implements the numeric kernels behind the size and strain
// services using gonum.
package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
)

// Ensure Kernel implements both kernel ports.
var (
	_ driven.SizeKernel   = (*Kernel)(nil)
	_ driven.StrainKernel = (*Kernel)(nil)
)

// ErrNegativeRadicand indicates a model whose parameters give a negative
// mean-square displacement.
var ErrNegativeRadicand = errors.New("negative mean-square displacement")

// DefaultQuadraturePoints is the Gauss-Legendre order of the Wilkens integral.
const DefaultQuadraturePoints = 64

// Kernel evaluates densities and displacements. It holds no mutable state
// and is safe for concurrent use.
type Kernel struct {
	quadPoints int
}

// New creates a kernel with DefaultQuadraturePoints.
func New() *Kernel {
	return &Kernel{quadPoints: DefaultQuadraturePoints}
}

// LognormalDensity returns the lognormal density at each x.
// The density is zero for x <= 0.
func (k *Kernel) LognormalDensity(mu, sigma float64, x []float64) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("lognormal sigma %g: %w", sigma, domain.ErrInvalidInput)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, fmt.Errorf("lognormal mu %g: %w", mu, domain.ErrInvalidInput)
	}

	dist := distuv.LogNormal{Mu: mu, Sigma: sigma}
	y := make([]float64, len(x))
	for i, xi := range x {
		if xi > 0 {
			y[i] = dist.Prob(xi)
		}
	}
	return y, checkFinite("lognormal density", y)
}

// InvariantDisplacement returns ⟨ΔL⟩ = sqrt((aa·L + bb·L²)·E) / (h²+k²+l²).
func (k *Kernel) InvariantDisplacement(l []float64, r domain.Reflection, aa, bb, invariant float64) ([]float64, error) {
	s := float64(r.SumSquares())
	if s == 0 {
		return nil, fmt.Errorf("reflection %s: %w", r, domain.ErrInvalidInput)
	}

	out := make([]float64, len(l))
	for i, li := range l {
		rad := (aa*li + bb*li*li) * invariant
		if rad < 0 {
			return nil, fmt.Errorf("invariant model at L=%g: %w", li, ErrNegativeRadicand)
		}
		out[i] = math.Sqrt(rad) / s
	}
	return out, checkFinite("invariant displacement", out)
}

// DislocationDisplacement returns the Krivoglaz-Wilkens
// ⟨ΔL⟩ = sqrt(ρ·C·b²·L²·f*(L/Re) / (4π)), where the contrast factor C mixes
// edge and screw contributions through H² = (h²k²+k²l²+l²h²)/(h²+k²+l²)².
func (k *Kernel) DislocationDisplacement(l []float64, r domain.Reflection, v domain.KrivoglazWilkensValues) ([]float64, error) {
	s := float64(r.SumSquares())
	if s == 0 {
		return nil, fmt.Errorf("reflection %s: %w", r, domain.ErrInvalidInput)
	}
	if !(v.Re > 0) {
		return nil, fmt.Errorf("krivoglaz-wilkens Re %g: %w", v.Re, domain.ErrInvalidInput)
	}

	h2, k2, l2 := float64(r.H*r.H), float64(r.K*r.K), float64(r.L*r.L)
	hh := (h2*k2 + k2*l2 + l2*h2) / (s * s)
	contrast := v.Mix*(v.Ae+v.Be*hh) + (1-v.Mix)*(v.As+v.Bs*hh)

	out := make([]float64, len(l))
	for i, li := range l {
		rad := v.Rho * contrast * v.B * v.B * li * li * k.Wilkens(li/v.Re) / (4 * math.Pi)
		if rad < 0 {
			return nil, fmt.Errorf("krivoglaz-wilkens model at L=%g: %w", li, ErrNegativeRadicand)
		}
		out[i] = math.Sqrt(rad)
	}
	return out, checkFinite("dislocation displacement", out)
}

// Wilkens evaluates the Wilkens function f*(η) for η = L/Re > 0.
func (k *Kernel) Wilkens(eta float64) float64 {
	if eta >= 1 {
		return 512/(90*math.Pi*eta) - (11.0/24+math.Log(2*eta)/4)/(eta*eta)
	}

	e2 := eta * eta
	integral := quad.Fixed(arcsinOverV, 0, eta, k.quadPoints, nil, 0)
	root := math.Sqrt(1 - e2)
	asin := math.Asin(eta)

	return -math.Log(eta) + 7.0/4 - math.Ln2 + 512/(90*math.Pi*eta) +
		(2/math.Pi)*(1-1/(4*e2))*integral -
		(1/math.Pi)*(769/(180*eta)+41*eta/90+2*e2*eta/90)*root -
		(1/math.Pi)*(11/(12*e2)+7.0/2+e2/3)*asin +
		e2/6
}

func arcsinOverV(v float64) float64 {
	if v == 0 {
		return 1
	}
	return math.Asin(v) / v
}

func checkFinite(what string, y []float64) error {
	if floats.HasNaN(y) {
		return fmt.Errorf("%s produced NaN: %w", what, domain.ErrInvalidDomain)
	}
	for _, v := range y {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%s overflowed: %w", what, domain.ErrInvalidDomain)
		}
	}
	return nil
}
