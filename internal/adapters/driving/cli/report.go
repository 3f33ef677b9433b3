package cli

import (
	"github.com/spf13/cobra"
)

var reportSource setupSource

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the parameter report of a setup",
	Long: `Prints the fixed-format report blocks of a setup file or saved session:
DIFFRACTION PATTERN, SIZE and the strain block, each present only when the
setup configures it.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportSource.register(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	session, err := reportSource.load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Print(session.Report())
	return nil
}
