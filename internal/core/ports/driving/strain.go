package driving

import (
	"context"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

// StrainService evaluates Warren plots for strain models.
type StrainService interface {
	// WarrenPlot evaluates the mean displacement curve for one reflection
	// over 100 correlation lengths up to lMax.
	WarrenPlot(ctx context.Context, model domain.StrainModel, r domain.Reflection, lMax float64) (*domain.WarrenPlot, error)

	// WarrenPlots evaluates several reflections concurrently, each on its own
	// clone of model. Results follow the order of rs.
	WarrenPlots(ctx context.Context, model domain.StrainModel, rs []domain.Reflection, lMax float64) ([]domain.WarrenPlot, error)
}
