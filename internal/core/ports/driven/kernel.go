package driven

import "github.com/custodia-labs/wppm-cli/internal/core/domain"

// SizeKernel evaluates crystallite-size probability densities.
type SizeKernel interface {
	// LognormalDensity returns the lognormal density with location mu and
	// scale sigma at each diameter in x. len(result) == len(x).
	LognormalDensity(mu, sigma float64, x []float64) ([]float64, error)
}

// StrainKernel evaluates the mean displacement ⟨ΔL⟩ of lattice planes
// over a grid of correlation lengths.
type StrainKernel interface {
	// InvariantDisplacement evaluates the invariant strain model given the
	// cell-distortion coefficients and the quartic invariant at r.
	InvariantDisplacement(l []float64, r domain.Reflection, aa, bb, invariant float64) ([]float64, error)

	// DislocationDisplacement evaluates the Krivoglaz-Wilkens model.
	DislocationDisplacement(l []float64, r domain.Reflection, v domain.KrivoglazWilkensValues) ([]float64, error)
}
