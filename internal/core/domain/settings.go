package domain

import "fmt"

// StorageBackend selects where fit sessions are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists sessions in ~/.wppm/wppm.db.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps sessions for the lifetime of the process.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageSQLite || b == StorageMemory
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// StrainSettings holds Warren plot evaluation defaults.
type StrainSettings struct {
	// LMax is the default correlation-length extent.
	LMax float64

	// Workers bounds concurrent multi-reflection evaluation.
	Workers int
}

// StorageSettings holds session persistence configuration.
type StorageSettings struct {
	Backend StorageBackend

	// Dir is the data directory. Empty means ~/.wppm.
	Dir string
}

// AppSettings is the application configuration.
type AppSettings struct {
	Strain  StrainSettings
	Storage StorageSettings
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Strain: StrainSettings{
			LMax:    DefaultCorrelationLengthMax,
			Workers: 4,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}

// Validate checks value ranges.
func (s AppSettings) Validate() error {
	if !(s.Strain.LMax > 0) {
		return fmt.Errorf("strain.lmax must be positive, got %g: %w", s.Strain.LMax, ErrInvalidInput)
	}
	if s.Strain.Workers < 1 {
		return fmt.Errorf("strain.workers must be at least 1, got %d: %w", s.Strain.Workers, ErrInvalidInput)
	}
	if !s.Storage.Backend.IsValid() {
		return fmt.Errorf("storage.backend %q: %w", s.Storage.Backend, ErrInvalidInput)
	}
	return nil
}
