package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("strain.lmax", int64(80))
	_ = store.Set("strain.workers", int64(2))
	_ = store.Set("storage.backend", "memory")
	_ = store.Set("storage.dir", "/data/wppm")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, 80.0, settings.Strain.LMax)
	assert.Equal(t, 2, settings.Strain.Workers)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
	assert.Equal(t, "/data/wppm", settings.Storage.Dir)
}

func TestSettingsService_Get_InvalidBackendFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "postgres")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageSQLite, settings.Storage.Backend)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set("strain.lmax", "25.5"))
	require.NoError(t, service.Set("strain.workers", "6"))
	require.NoError(t, service.Set("storage.backend", "memory"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 25.5, settings.Strain.LMax)
	assert.Equal(t, 6, settings.Strain.Workers)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
	assert.Equal(t, 25.5, store.GetFloat("strain.lmax"))
}

func TestSettingsService_Set_Rejects(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	tests := []struct{ key, value string }{
		{"strain.lmax", "abc"},
		{"strain.lmax", "-4"},
		{"strain.workers", "1.5"},
		{"strain.workers", "0"},
		{"storage.backend", "postgres"},
		{"size.samples", "2000"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, service.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(nil)
	assert.Equal(t, []string{"strain.lmax", "strain.workers", "storage.backend", "storage.dir"}, service.Keys())

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.ErrorIs(t, service.Save(settings), domain.ErrNotImplemented)
}
