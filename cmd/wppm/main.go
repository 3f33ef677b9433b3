// Command wppm is the whole powder pattern modelling CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/kernel"
	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wppm-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wppm-cli/internal/core/services"
	"github.com/custodia-labs/wppm-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		// cobra has already printed the error.
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// WPPM_HOME overrides ~/.wppm.
	home := os.Getenv("WPPM_HOME")

	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(home)
	if err != nil {
		logger.Warn("config file unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	sessionStore, closeStore := openSessionStore(settings.Storage, home)
	defer closeStore()

	k := kernel.New()
	cli.SetVersion(version)
	cli.Configure(cli.Services{
		Size:     services.NewSizeService(k),
		Strain:   services.NewStrainService(k, settings.Strain.Workers),
		Session:  services.NewSessionService(sessionStore),
		Settings: settingsService,
		Setups:   file.NewSetupLoader(),
	})
	return cli.Execute(ctx)
}

// openSessionStore opens the configured backend. A SQLite store that cannot
// be opened falls back to memory so the stateless commands keep working.
func openSessionStore(cfg domain.StorageSettings, home string) (driven.SessionStore, func()) {
	if cfg.Backend == domain.StorageMemory {
		return memory.NewSessionStore(), func() {}
	}

	dir := cfg.Dir
	if dir == "" && home != "" {
		dir = filepath.Join(home, "data")
	}
	store, err := sqlite.NewStore(dir)
	if err != nil {
		logger.Warn("session database unavailable, sessions will not persist: %v", err)
		return memory.NewSessionStore(), func() {}
	}
	return store.SessionStore(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing session database: %v", err)
		}
	}
}
