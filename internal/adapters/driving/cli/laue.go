package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/setupdoc"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

var laueJSON bool

var laueCmd = &cobra.Command{
	Use:   "laue [label|id]",
	Short: "List Laue groups and their strain coefficients",
	Long: `Lists the 14 Laue groups with the quartic strain coefficients each one uses.

Derived coefficients of the cubic groups are shown as target=source.
Groups marked unvalidated have not been checked against reference formulas.
Pass a label such as m3m or an id from 1 to 14 to show a single group.
Labels starting with a dash go after --, as in: wppm laue -- -3m1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaue,
}

func init() {
	laueCmd.Flags().BoolVar(&laueJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(laueCmd)
}

// laueView is the JSON form of a Laue group.
type laueView struct {
	ID           int               `json:"id"`
	Label        string            `json:"label"`
	Coefficients []string          `json:"coefficients"`
	Derived      map[string]string `json:"derived,omitempty"`
	Validated    bool              `json:"validated"`
}

func laueViews() ([]laueView, error) {
	groups := laueRegistry.Groups()
	views := make([]laueView, 0, len(groups))
	for _, g := range groups {
		class, err := domain.SymmetryClassByID(g.ID)
		if err != nil {
			return nil, err
		}
		v := laueView{ID: g.ID, Label: g.Label, Validated: class.Validated}
		for _, n := range class.Active.Indices() {
			v.Coefficients = append(v.Coefficients, domain.CoefficientName(n))
		}
		if len(class.Derived) > 0 {
			v.Derived = make(map[string]string, len(class.Derived))
			for _, d := range class.Derived {
				v.Derived[domain.CoefficientName(d.Target)] = domain.CoefficientName(d.Source)
			}
		}
		views = append(views, v)
	}
	return views, nil
}

func runLaue(cmd *cobra.Command, args []string) error {
	views, err := laueViews()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		id, err := setupdoc.ParseLaueGroup(args[0])
		if err != nil {
			return err
		}
		views = views[id-1 : id]
	}

	if laueJSON {
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal laue groups: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		var derived []string
		for _, n := range v.Coefficients {
			if src, ok := v.Derived[n]; ok {
				derived = append(derived, n+"="+src)
			}
		}
		validated := "yes"
		if !v.Validated {
			validated = "no"
		}
		rows = append(rows, []string{
			fmt.Sprint(v.ID), v.Label, strings.Join(v.Coefficients, " "), strings.Join(derived, " "), validated,
		})
	}
	cmd.Println(renderTable([]string{"ID", "LAUE", "COEFFICIENTS", "DERIVED", "VALIDATED"}, rows))
	return nil
}
