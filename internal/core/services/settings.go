package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStrainLMax     = "strain.lmax"
	keyStrainWorkers  = "strain.workers"
	keyStorageBackend = "storage.backend"
	keyStorageDir     = "storage.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling gaps with defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Strain: domain.StrainSettings{
			LMax:    s.getFloat(keyStrainLMax, defaults.Strain.LMax),
			Workers: s.getInt(keyStrainWorkers, defaults.Strain.Workers),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			Dir:     s.configStore.GetString(keyStorageDir),
		},
	}
	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyStrainLMax, settings.Strain.LMax); err != nil {
		return fmt.Errorf("save strain lmax: %w", err)
	}
	if err := s.configStore.Set(keyStrainWorkers, settings.Strain.Workers); err != nil {
		return fmt.Errorf("save strain workers: %w", err)
	}
	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStorageDir, settings.Storage.Dir); err != nil {
		return fmt.Errorf("save storage dir: %w", err)
	}
	return nil
}

// Set parses value for key and saves the resulting settings.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyStrainLMax:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, domain.ErrInvalidInput)
		}
		settings.Strain.LMax = v
	case keyStrainWorkers:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, domain.ErrInvalidInput)
		}
		settings.Strain.Workers = v
	case keyStorageBackend:
		settings.Storage.Backend = domain.StorageBackend(value)
	case keyStorageDir:
		settings.Storage.Dir = value
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	return s.Save(settings)
}

// Keys lists the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{keyStrainLMax, keyStrainWorkers, keyStorageBackend, keyStorageDir}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(keyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
