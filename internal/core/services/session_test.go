package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

func newSession(t *testing.T, name string) *domain.FitSession {
	t.Helper()
	strain, err := domain.DefaultInvariantModel(13)
	require.NoError(t, err)
	return &domain.FitSession{
		Name:        name,
		Wavelengths: &domain.Wavelengths{Principal: domain.NewParameter("wavelength", 0.0826)},
		Size:        lognormalSize(t, 2.5, 0.3),
		Strain:      strain,
	}
}

func TestSessionService_Create(t *testing.T) {
	service := NewSessionService(memory.NewSessionStore())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }
	ctx := context.Background()

	input := newSession(t, "ceria")
	created, err := service.Create(ctx, input)
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, fixed, created.CreatedAt)
	assert.Equal(t, fixed, created.UpdatedAt)
	assert.Empty(t, input.ID)

	got, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ceria", got.Name)
	assert.Equal(t, created.Report(), got.Report())
}

func TestSessionService_Create_Invalid(t *testing.T) {
	service := NewSessionService(memory.NewSessionStore())
	ctx := context.Background()

	_, err := service.Create(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Create(ctx, newSession(t, ""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := newSession(t, "bad")
	bad.Wavelengths.Secondary = []domain.WeightedWavelength{{
		Wavelength: domain.NewParameter("wavelength_2", 0.1),
		Weight:     domain.NewParameter("weight_2", 1.0),
	}}
	_, err = service.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)
}

func TestSessionService_ListSortedByName(t *testing.T) {
	service := NewSessionService(memory.NewSessionStore())
	ctx := context.Background()
	for _, name := range []string{"zirconia", "ceria", "magnetite"} {
		_, err := service.Create(ctx, newSession(t, name))
		require.NoError(t, err)
	}

	all, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ceria", all[0].Name)
	assert.Equal(t, "magnetite", all[1].Name)
	assert.Equal(t, "zirconia", all[2].Name)
}

func TestSessionService_Find(t *testing.T) {
	service := NewSessionService(memory.NewSessionStore())
	ctx := context.Background()
	created, err := service.Create(ctx, newSession(t, "ceria"))
	require.NoError(t, err)

	byID, err := service.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	byName, err := service.Find(ctx, "ceria")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = service.Find(ctx, "nickel")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionService_RemoveAndReport(t *testing.T) {
	service := NewSessionService(memory.NewSessionStore())
	ctx := context.Background()
	created, err := service.Create(ctx, newSession(t, "ceria"))
	require.NoError(t, err)

	report, err := service.Report(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report, "DIFFRACTION PATTERN\n"))
	assert.Contains(t, report, "Laue Group: 13, m3")

	require.NoError(t, service.Remove(ctx, created.ID))
	_, err = service.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, service.Remove(ctx, created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, service.Remove(ctx, ""), domain.ErrInvalidInput)
}

func TestSessionService_NilStore(t *testing.T) {
	service := NewSessionService(nil)
	ctx := context.Background()

	_, err := service.Create(ctx, newSession(t, "x"))
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = service.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = service.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, service.Remove(ctx, "x"), domain.ErrNotImplemented)
}
