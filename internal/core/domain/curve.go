package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sample counts and default domains of the evaluated curves.
const (
	// DiameterSamples is the number of samples of a size distribution.
	DiameterSamples = 1000

	// CorrelationLengthSamples is the number of samples of a Warren plot.
	CorrelationLengthSamples = 100

	// DefaultDiameterMax is the upper bound of the automatic size domain.
	DefaultDiameterMax = 1000.0

	// DensityThreshold is the density above which a diameter is kept by the
	// automatic size-domain search.
	DensityThreshold = 1e-5

	// DefaultCorrelationLengthMax is the default Warren plot extent.
	DefaultCorrelationLengthMax = 50.0
)

// Reflection holds the Miller indices (h, k, l) of a lattice plane.
type Reflection struct {
	H, K, L int
}

// String renders the reflection as "(h k l)".
func (r Reflection) String() string {
	return fmt.Sprintf("(%d %d %d)", r.H, r.K, r.L)
}

// SumSquares returns h² + k² + l².
func (r Reflection) SumSquares() int {
	return r.H*r.H + r.K*r.K + r.L*r.L
}

// ParseReflection parses "h,k,l" or "h k l".
func ParseReflection(s string) (Reflection, error) {
	fields := strings.FieldsFunc(s, func(c rune) bool {
		return c == ',' || c == ' ' || c == '(' || c == ')'
	})
	if len(fields) != 3 {
		return Reflection{}, fmt.Errorf("reflection %q: expected three indices: %w", s, ErrInvalidInput)
	}
	var idx [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Reflection{}, fmt.Errorf("reflection %q: %w", s, ErrInvalidInput)
		}
		idx[i] = v
	}
	return Reflection{H: idx[0], K: idx[1], L: idx[2]}, nil
}

// Curve is a sampled response over an ordered domain. X and Y have equal length.
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c.X)
}

// DistributionOptions selects the domain of a size distribution.
type DistributionOptions struct {
	// Auto searches the domain starting from [0, DefaultDiameterMax).
	Auto bool

	// Min and Max bound the domain when Auto is false.
	Min, Max float64
}

// DistributionResult is a size distribution curve and its effective domain.
type DistributionResult struct {
	Curve

	// Min and Max are the effective domain bounds.
	Min, Max float64

	// Degraded is set when a numeric failure stopped the evaluation early and
	// the last successfully computed curve and bounds were returned instead.
	Degraded bool

	// Cause is the failure behind Degraded.
	Cause error
}

// WarrenPlot is a mean displacement curve for one reflection.
type WarrenPlot struct {
	Reflection Reflection
	Curve
}

// DiameterGrid returns DiameterSamples evenly spaced diameters over [lo, hi).
func DiameterGrid(lo, hi float64) ([]float64, error) {
	step := (hi - lo) / DiameterSamples
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("diameter domain [%g, %g): %w", lo, hi, ErrInvalidDomain)
	}
	x := make([]float64, DiameterSamples)
	for i := range x {
		x[i] = lo + float64(i)*step
	}
	return x, nil
}

// CorrelationLengthGrid returns CorrelationLengthSamples evenly spaced
// lengths from lMax/100 to lMax inclusive.
func CorrelationLengthGrid(lMax float64) ([]float64, error) {
	step := lMax / CorrelationLengthSamples
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("correlation length max %g: %w", lMax, ErrInvalidDomain)
	}
	l := make([]float64, CorrelationLengthSamples)
	for i := range l {
		l[i] = float64(i+1) * step
	}
	l[len(l)-1] = lMax
	return l, nil
}
