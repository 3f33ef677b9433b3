package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

func TestOpenSessionStore_Memory(t *testing.T) {
	store, closeStore := openSessionStore(domain.StorageSettings{Backend: domain.StorageMemory}, "")
	defer closeStore()
	assert.IsType(t, &memory.SessionStore{}, store)
}

func TestOpenSessionStore_SQLiteUnderHome(t *testing.T) {
	home := t.TempDir()
	store, closeStore := openSessionStore(domain.StorageSettings{Backend: domain.StorageSQLite}, home)
	defer closeStore()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.FitSession{ID: "a", Name: "a"}))
	_, err := os.Stat(filepath.Join(home, "data", "sessions.db"))
	assert.NoError(t, err)
}

func TestOpenSessionStore_ExplicitDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	_, closeStore := openSessionStore(domain.StorageSettings{Backend: domain.StorageSQLite, Dir: dir}, "")
	defer closeStore()

	_, err := os.Stat(filepath.Join(dir, "sessions.db"))
	assert.NoError(t, err)
}
