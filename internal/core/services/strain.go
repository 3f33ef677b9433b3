package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wppm-cli/internal/logger"
)

// Ensure StrainService implements the interface.
var _ driving.StrainService = (*StrainService)(nil)

// DefaultWorkers bounds concurrent Warren plot evaluation when no limit is configured.
const DefaultWorkers = 4

// StrainService evaluates Warren plots.
type StrainService struct {
	kernel  driven.StrainKernel
	workers int
}

// NewStrainService creates a new strain service. workers < 1 selects DefaultWorkers.
func NewStrainService(kernel driven.StrainKernel, workers int) *StrainService {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &StrainService{kernel: kernel, workers: workers}
}

// WarrenPlot evaluates ⟨ΔL⟩ for r over 100 correlation lengths up to lMax.
func (s *StrainService) WarrenPlot(
	ctx context.Context,
	model domain.StrainModel,
	r domain.Reflection,
	lMax float64,
) (*domain.WarrenPlot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("strain model is required: %w", domain.ErrInvalidInput)
	}
	if s.kernel == nil {
		return nil, domain.ErrNotImplemented
	}

	l, err := domain.CorrelationLengthGrid(lMax)
	if err != nil {
		return nil, err
	}

	var dl []float64
	switch m := model.(type) {
	case *domain.InvariantModel:
		dl, err = s.invariant(m, r, l)
	case *domain.KrivoglazWilkensModel:
		var v domain.KrivoglazWilkensValues
		if v, err = m.Values(); err == nil {
			dl, err = s.kernel.DislocationDisplacement(l, r, v)
		}
	default:
		return nil, fmt.Errorf("warren plot for %s model: %w", model.Kind(), domain.ErrUnsupportedModel)
	}
	if err != nil {
		return nil, fmt.Errorf("warren plot %s: %w", r, err)
	}
	if len(dl) != len(l) {
		return nil, fmt.Errorf("warren plot %s: kernel returned %d samples for %d lengths: %w",
			r, len(dl), len(l), domain.ErrInvalidDomain)
	}

	return &domain.WarrenPlot{Reflection: r, Curve: domain.Curve{X: l, Y: dl}}, nil
}

func (s *StrainService) invariant(m *domain.InvariantModel, r domain.Reflection, l []float64) ([]float64, error) {
	if m.AA == nil {
		return nil, fmt.Errorf("invariant aa: %w", domain.ErrMissingRequiredParameter)
	}
	if m.BB == nil {
		return nil, fmt.Errorf("invariant bb: %w", domain.ErrMissingRequiredParameter)
	}
	if !m.Validated() {
		logger.Debug("laue class %d has not been validated against reference formulas", m.LaueID())
	}
	inv, err := m.Invariant(r)
	if err != nil {
		return nil, err
	}
	return s.kernel.InvariantDisplacement(l, r, m.AA.Value, m.BB.Value, inv)
}

// WarrenPlots evaluates each reflection on its own clone of model, at most
// s.workers at a time. The first failure cancels the remaining evaluations.
func (s *StrainService) WarrenPlots(
	ctx context.Context,
	model domain.StrainModel,
	rs []domain.Reflection,
	lMax float64,
) ([]domain.WarrenPlot, error) {
	if model == nil {
		return nil, fmt.Errorf("strain model is required: %w", domain.ErrInvalidInput)
	}
	if len(rs) == 0 {
		return nil, fmt.Errorf("at least one reflection is required: %w", domain.ErrInvalidInput)
	}

	defer logger.Timed(fmt.Sprintf("warren plots (%d reflections, %d workers)", len(rs), s.workers))()

	plots := make([]domain.WarrenPlot, len(rs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, r := range rs {
		clone := model.Clone()
		g.Go(func() error {
			p, err := s.WarrenPlot(gctx, clone, r, lMax)
			if err != nil {
				return err
			}
			plots[i] = *p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plots, nil
}
