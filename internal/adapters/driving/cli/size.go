package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

var (
	sizeSource setupSource
	sizeShape  string
	sizeDist   string
	sizeMu     float64
	sizeSigma  float64
	sizeMin    float64
	sizeMax    float64
	sizeRows   int
	sizeJSON   bool
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Evaluate a crystallite-size distribution",
	Long: `Samples the size distribution over 1000 diameters.

Without --min/--max the domain is found automatically: the density is first
evaluated over [0, 1000) and the domain is cut after the last diameter whose
density exceeds 1e-5. If a numeric failure stops the search, the last good
curve is shown with a warning.

The distribution comes from a setup file, a session, or --mu/--sigma.`,
	Args: cobra.NoArgs,
	RunE: runSize,
}

func init() {
	sizeSource.register(sizeCmd)
	sizeCmd.Flags().StringVar(&sizeShape, "shape", string(domain.ShapeSphere), "crystallite shape")
	sizeCmd.Flags().StringVar(&sizeDist, "dist", string(domain.DistributionLognormal), "distribution family")
	sizeCmd.Flags().Float64Var(&sizeMu, "mu", 0, "location parameter")
	sizeCmd.Flags().Float64Var(&sizeSigma, "sigma", 0, "scale parameter")
	sizeCmd.Flags().Float64Var(&sizeMin, "min", 0, "lower diameter bound (disables the automatic domain)")
	sizeCmd.Flags().Float64Var(&sizeMax, "max", domain.DefaultDiameterMax, "upper diameter bound (disables the automatic domain)")
	sizeCmd.Flags().IntVarP(&sizeRows, "rows", "n", 10, "rows to print (0 = all)")
	sizeCmd.Flags().BoolVar(&sizeJSON, "json", false, "output the full curve as JSON")
	rootCmd.AddCommand(sizeCmd)
}

type distributionView struct {
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Degraded bool      `json:"degraded"`
	Cause    string    `json:"cause,omitempty"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
}

func runSize(cmd *cobra.Command, _ []string) error {
	if sizeService == nil {
		return errors.New("size service not configured")
	}

	size, err := sizeDistribution(cmd)
	if err != nil {
		return err
	}
	opts := domain.DistributionOptions{Auto: true}
	if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
		opts = domain.DistributionOptions{Min: sizeMin, Max: sizeMax}
	}

	result, err := sizeService.Distribution(cmd.Context(), size, opts)
	if err != nil {
		return fmt.Errorf("size distribution failed: %w", err)
	}

	if sizeJSON {
		view := distributionView{
			Min: result.Min, Max: result.Max, Degraded: result.Degraded,
			X: result.X, Y: result.Y,
		}
		if result.Cause != nil {
			view.Cause = result.Cause.Error()
		}
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal distribution: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s %s distribution\n", size.Shape, size.Distribution)
	cmd.Printf("Domain: [%s, %s)\n", formatFloat(result.Min), formatFloat(result.Max))
	if result.Degraded {
		cmd.Printf("warning: automatic domain search stopped early: %v\n", result.Cause)
	}
	cmd.Println(renderTable([]string{"D", "DENSITY"}, curveRows(result.Curve, sizeRows)))
	return nil
}

func sizeDistribution(cmd *cobra.Command) (*domain.SizeDistribution, error) {
	if sizeSource.setup != "" || sizeSource.session != "" {
		session, err := sizeSource.load(cmd.Context())
		if err != nil {
			return nil, err
		}
		if session.Size == nil {
			return nil, fmt.Errorf("setup has no size distribution: %w", domain.ErrMissingRequiredParameter)
		}
		return session.Size, nil
	}

	if !cmd.Flags().Changed("mu") {
		return nil, errors.New("--mu is required without --setup or --session")
	}
	shape, err := domain.ParseShape(sizeShape)
	if err != nil {
		return nil, err
	}
	dist, err := domain.ParseDistribution(sizeDist)
	if err != nil {
		return nil, err
	}
	var sigma *domain.Parameter
	if cmd.Flags().Changed("sigma") {
		sigma = domain.NewParameter("sigma", sizeSigma)
	}
	return domain.NewSizeDistribution(shape, dist, domain.NewParameter("mu", sizeMu), sigma)
}
