package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/setupdoc"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

var (
	invariantSource setupSource
	invariantLaue   string
	invariantCoeffs []string
	invariantJSON   bool
)

var invariantCmd = &cobra.Command{
	Use:   "invariant <h,k,l>...",
	Short: "Evaluate the quartic strain invariant",
	Long: `Evaluates the symmetry-reduced quartic strain invariant at each reflection.

The model comes from a setup file or session, or from --laue with optional
--coeff overrides. Coefficients not given keep the default of 1e-4.

Examples:
  wppm invariant --laue m3m --coeff e1=2e-4 1,1,1 2,0,0
  wppm invariant --setup ceria.toml 1,1,1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInvariant,
}

func init() {
	invariantSource.register(invariantCmd)
	invariantCmd.Flags().StringVarP(&invariantLaue, "laue", "l", "", "Laue group label or id")
	invariantCmd.Flags().StringArrayVarP(&invariantCoeffs, "coeff", "c", nil, "coefficient value as eN=value (repeatable)")
	invariantCmd.Flags().BoolVar(&invariantJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(invariantCmd)
}

type invariantValue struct {
	Reflection string  `json:"reflection"`
	Value      float64 `json:"value"`
}

func runInvariant(cmd *cobra.Command, args []string) error {
	reflections, err := parseReflections(args)
	if err != nil {
		return err
	}
	model, err := invariantModel(cmd)
	if err != nil {
		return err
	}

	values := make([]invariantValue, 0, len(reflections))
	for _, r := range reflections {
		v, err := model.Invariant(r)
		if err != nil {
			return fmt.Errorf("invariant %s: %w", r, err)
		}
		values = append(values, invariantValue{Reflection: r.String(), Value: v})
	}

	if invariantJSON {
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal invariants: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	class := model.Class()
	cmd.Printf("Laue group %d (%s)\n", class.ID, class.Label)
	if !class.Validated {
		cmd.Println("note: reduced form not validated for this group")
	}
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v.Reflection, formatFloat(v.Value)})
	}
	cmd.Println(renderTable([]string{"HKL", "INVARIANT"}, rows))
	return nil
}

func invariantModel(cmd *cobra.Command) (*domain.InvariantModel, error) {
	if invariantLaue == "" {
		if len(invariantCoeffs) > 0 {
			return nil, errors.New("--coeff requires --laue")
		}
		session, err := invariantSource.load(cmd.Context())
		if err != nil {
			return nil, err
		}
		model, ok := session.Strain.(*domain.InvariantModel)
		if !ok {
			return nil, fmt.Errorf("setup has no invariant strain model: %w", domain.ErrUnsupportedModel)
		}
		return model, nil
	}

	id, err := setupdoc.ParseLaueGroup(invariantLaue)
	if err != nil {
		return nil, err
	}
	model, err := domain.DefaultInvariantModel(id)
	if err != nil {
		return nil, err
	}
	for _, c := range invariantCoeffs {
		name, raw, ok := strings.Cut(c, "=")
		if !ok {
			return nil, fmt.Errorf("coefficient %q: expected eN=value: %w", c, domain.ErrInvalidInput)
		}
		n, err := setupdoc.ParseCoefficientName(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %w", c, domain.ErrInvalidInput)
		}
		if err := model.SetCoefficient(n, domain.NewParameter(domain.CoefficientName(n), v)); err != nil {
			return nil, err
		}
	}
	return model, nil
}
