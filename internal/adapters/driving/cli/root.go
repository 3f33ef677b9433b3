// Package cli implements the wppm command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wppm-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

// Services wired by Configure.
var (
	sizeService     driving.SizeService
	strainService   driving.StrainService
	sessionService  driving.SessionService
	settingsService driving.SettingsService
	setupLoader     driven.SetupLoader
	laueRegistry    = domain.NewLaueRegistry()
)

// Services holds the dependencies of the command tree.
type Services struct {
	Size     driving.SizeService
	Strain   driving.StrainService
	Session  driving.SessionService
	Settings driving.SettingsService
	Setups   driven.SetupLoader
}

// Configure installs the services used by every command.
func Configure(s Services) {
	sizeService = s.Size
	strainService = s.Strain
	sessionService = s.Session
	settingsService = s.Settings
	setupLoader = s.Setups
}

// SetVersion sets the version reported by "wppm version".
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "wppm",
	Short: "Whole powder pattern modelling toolkit",
	Long: `wppm evaluates the microstructure models used in whole powder pattern
modelling: crystallite-size distributions and anisotropic strain models.

Fit setups are described in TOML or JSON files and can be saved as sessions.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

var errNoSetup = errors.New("a setup file (--setup) or saved session (--session) is required")

// setupSource selects where a command reads its fit setup from.
type setupSource struct {
	setup   string
	session string
}

func (s *setupSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.setup, "setup", "f", "", "setup file (TOML or JSON)")
	cmd.Flags().StringVarP(&s.session, "session", "s", "", "saved session ID or name")
}

func (s *setupSource) load(ctx context.Context) (*domain.FitSession, error) {
	switch {
	case s.setup != "" && s.session != "":
		return nil, errors.New("--setup and --session are mutually exclusive")
	case s.setup != "":
		if setupLoader == nil {
			return nil, errors.New("setup loader not configured")
		}
		return setupLoader.Load(s.setup)
	case s.session != "":
		if sessionService == nil {
			return nil, errors.New("session service not configured")
		}
		session, err := sessionService.Find(ctx, s.session)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", s.session, err)
		}
		return session, nil
	}
	return nil, errNoSetup
}

// lMaxOrDefault returns lMax when positive, otherwise the configured default.
func lMaxOrDefault(lMax float64) float64 {
	if lMax > 0 {
		return lMax
	}
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			return s.Strain.LMax
		}
	}
	return domain.DefaultCorrelationLengthMax
}

func parseReflections(args []string) ([]domain.Reflection, error) {
	out := make([]domain.Reflection, 0, len(args))
	for _, arg := range args {
		r, err := domain.ParseReflection(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
