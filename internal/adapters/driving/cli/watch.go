package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/logger"
)

var (
	watchReflections []string
	watchDebounce    time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <setup-file>",
	Short: "Re-evaluate a setup file whenever it changes",
	Long: `Watches a setup file and prints its report each time it is saved.
With --reflection, the Warren plots of those reflections are printed too.

Invalid edits are reported and the previous output stays valid; the watch
continues until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringArrayVarP(&watchReflections, "reflection", "r", nil, "reflection h,k,l to plot (repeatable)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "quiet period before re-evaluating")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if setupLoader == nil {
		return errors.New("setup loader not configured")
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	reflections, err := parseReflections(watchReflections)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	ctx := cmd.Context()
	evaluateSetup(ctx, cmd, path, reflections)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSetupChange(event, path) {
				continue
			}
			logger.Debug("setup changed: %s", event)
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			evaluateSetup(ctx, cmd, path, reflections)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// isSetupChange reports whether event modifies the file at path.
func isSetupChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// evaluateSetup loads the setup and prints its report and Warren plots.
// Failures are printed rather than returned so the watch keeps running.
func evaluateSetup(ctx context.Context, cmd *cobra.Command, path string, reflections []domain.Reflection) {
	cmd.Printf("--- %s (%s)\n", filepath.Base(path), time.Now().Format(time.TimeOnly))

	session, err := setupLoader.Load(path)
	if err != nil {
		cmd.Printf("error: %v\n", err)
		return
	}
	cmd.Print(session.Report())

	if len(reflections) == 0 || session.Strain == nil || strainService == nil {
		return
	}
	plots, err := strainService.WarrenPlots(ctx, session.Strain, reflections, lMaxOrDefault(0))
	if err != nil {
		cmd.Printf("error: %v\n", err)
		return
	}
	for _, p := range plots {
		cmd.Println(p.Reflection.String())
		cmd.Println(renderTable([]string{"L", "DISPLACEMENT"}, curveRows(p.Curve, 5)))
	}
}
