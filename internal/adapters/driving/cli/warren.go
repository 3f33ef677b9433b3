package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

var (
	warrenSource setupSource
	warrenLMax   float64
	warrenRows   int
	warrenJSON   bool
)

var warrenCmd = &cobra.Command{
	Use:   "warren <h,k,l>...",
	Short: "Evaluate Warren plots of the strain model",
	Long: `Evaluates the mean-square displacement over 100 correlation lengths
up to --lmax for each reflection. Reflections are evaluated concurrently.

Examples:
  wppm warren --setup ceria.toml 1,1,1 2,0,0 2,2,0
  wppm warren --session ceria --lmax 80 --json 1,1,1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWarren,
}

func init() {
	warrenSource.register(warrenCmd)
	warrenCmd.Flags().Float64Var(&warrenLMax, "lmax", 0, "largest correlation length (0 = strain.lmax setting)")
	warrenCmd.Flags().IntVarP(&warrenRows, "rows", "n", 10, "rows to print per reflection (0 = all)")
	warrenCmd.Flags().BoolVar(&warrenJSON, "json", false, "output the full curves as JSON")
	rootCmd.AddCommand(warrenCmd)
}

type warrenView struct {
	Reflection string    `json:"reflection"`
	L          []float64 `json:"l"`
	Value      []float64 `json:"value"`
}

func runWarren(cmd *cobra.Command, args []string) error {
	if strainService == nil {
		return errors.New("strain service not configured")
	}
	reflections, err := parseReflections(args)
	if err != nil {
		return err
	}
	session, err := warrenSource.load(cmd.Context())
	if err != nil {
		return err
	}
	if session.Strain == nil {
		return fmt.Errorf("setup has no strain model: %w", domain.ErrMissingRequiredParameter)
	}

	plots, err := strainService.WarrenPlots(cmd.Context(), session.Strain, reflections, lMaxOrDefault(warrenLMax))
	if err != nil {
		return fmt.Errorf("warren plot failed: %w", err)
	}

	if warrenJSON {
		views := make([]warrenView, 0, len(plots))
		for _, p := range plots {
			views = append(views, warrenView{Reflection: p.Reflection.String(), L: p.X, Value: p.Y})
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal warren plots: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, p := range plots {
		cmd.Println(p.Reflection.String())
		cmd.Println(renderTable([]string{"L", "DISPLACEMENT"}, curveRows(p.Curve, warrenRows)))
	}
	return nil
}
