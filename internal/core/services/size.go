package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wppm-cli/internal/logger"
)

// Ensure SizeService implements the interface.
var _ driving.SizeService = (*SizeService)(nil)

// SizeService samples crystallite-size distributions.
type SizeService struct {
	kernel driven.SizeKernel
}

// NewSizeService creates a new size service.
func NewSizeService(kernel driven.SizeKernel) *SizeService {
	return &SizeService{kernel: kernel}
}

// Distribution samples size over 1000 diameters.
//
// With opts.Auto the curve is first evaluated over [0, 1000), the domain is
// cut at the last diameter whose density exceeds 1e-5, and the curve is
// evaluated again over [0, cut). A failure after the first pass degrades to
// the first-pass curve.
func (s *SizeService) Distribution(
	ctx context.Context,
	size *domain.SizeDistribution,
	opts domain.DistributionOptions,
) (*domain.DistributionResult, error) {
	if size == nil {
		return nil, fmt.Errorf("size distribution is required: %w", domain.ErrInvalidInput)
	}
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Size Distribution")
	logger.Debug("family=%s shape=%s auto=%t", size.Distribution, size.Shape, opts.Auto)

	if !opts.Auto {
		curve, err := s.evaluate(size, opts.Min, opts.Max)
		if err != nil {
			return nil, err
		}
		return &domain.DistributionResult{Curve: curve, Min: opts.Min, Max: opts.Max}, nil
	}

	first, err := s.evaluate(size, 0, domain.DefaultDiameterMax)
	if err != nil {
		return nil, err
	}

	// Bounds as they stand when a later step fails.
	result := &domain.DistributionResult{Curve: first, Min: 0, Max: domain.DefaultDiameterMax}

	cut, ok := lastAbove(first, domain.DensityThreshold)
	if !ok {
		return degrade(result, fmt.Errorf("no density above %g in [0, %g): %w",
			domain.DensityThreshold, domain.DefaultDiameterMax, domain.ErrInvalidDomain)), nil
	}

	lo, hi := 0.0, cut
	// An empty refined domain is left as is and fails below.
	result.Min, result.Max = lo, hi
	logger.Debug("refined domain [%g, %g)", lo, hi)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	refined, err := s.evaluate(size, lo, hi)
	if err != nil {
		return degrade(result, err), nil
	}
	return &domain.DistributionResult{Curve: refined, Min: lo, Max: hi}, nil
}

// evaluate samples the density over [lo, hi). Families other than
// lognormal yield an all-zero curve.
func (s *SizeService) evaluate(size *domain.SizeDistribution, lo, hi float64) (domain.Curve, error) {
	x, err := domain.DiameterGrid(lo, hi)
	if err != nil {
		return domain.Curve{}, err
	}

	if size.Distribution != domain.DistributionLognormal {
		return domain.Curve{X: x, Y: make([]float64, len(x))}, nil
	}
	if s.kernel == nil {
		return domain.Curve{}, domain.ErrNotImplemented
	}

	y, err := s.kernel.LognormalDensity(size.Location.Value, size.Scale.Value, x)
	if err != nil {
		return domain.Curve{}, fmt.Errorf("lognormal density: %w", err)
	}
	if len(y) != len(x) {
		return domain.Curve{}, fmt.Errorf("lognormal density returned %d samples for %d diameters: %w",
			len(y), len(x), domain.ErrInvalidDomain)
	}
	return domain.Curve{X: x, Y: y}, nil
}

// lastAbove returns the diameter of the last sample whose density exceeds threshold.
func lastAbove(c domain.Curve, threshold float64) (float64, bool) {
	for i := len(c.Y) - 1; i >= 0; i-- {
		if c.Y[i] > threshold {
			return c.X[i], true
		}
	}
	return 0, false
}

func degrade(r *domain.DistributionResult, cause error) *domain.DistributionResult {
	logger.Warn("size distribution degraded to [%g, %g): %v", r.Min, r.Max, cause)
	r.Degraded = true
	r.Cause = cause
	return r
}
