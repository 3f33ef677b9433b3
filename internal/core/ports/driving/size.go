package driving

import (
	"context"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

// SizeService evaluates crystallite-size distributions.
type SizeService interface {
	// Distribution samples the size distribution over the domain chosen by opts.
	// Configuration errors are returned; numeric failures during the automatic
	// domain search are reported through DistributionResult.Degraded.
	Distribution(ctx context.Context, size *domain.SizeDistribution, opts domain.DistributionOptions) (*domain.DistributionResult, error)
}
