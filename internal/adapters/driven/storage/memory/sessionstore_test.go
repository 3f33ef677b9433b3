package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

func testSession(id, name string) *domain.FitSession {
	size, _ := domain.NewSizeDistribution(domain.ShapeSphere, domain.DistributionLognormal,
		domain.NewParameter("mu", 2.5), domain.NewParameter("sigma", 0.3))
	return &domain.FitSession{ID: id, Name: name, Size: size}
}

func TestSessionStore_SaveGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1", "ceria")))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "ceria", got.Name)
	assert.Equal(t, 2.5, got.Size.Location.Value)
}

func TestSessionStore_IsolatesCallers(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	s := testSession("s1", "ceria")
	require.NoError(t, store.Save(ctx, s))

	s.Size.Location.Value = 99
	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Size.Location.Value)

	got.Size.Location.Value = 77
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2.5, again.Size.Location.Value)
}

func TestSessionStore_Errors(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(ctx, testSession("", "x")), domain.ErrInvalidInput)

	_, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "nope"), domain.ErrNotFound)
}

func TestSessionStore_DeleteAndList(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSession("a", "alpha")))
	require.NoError(t, store.Save(ctx, testSession("b", "beta")))

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.Delete(ctx, "a"))
	all, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestSessionStore_Concurrent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = store.Save(ctx, testSession(id, id))
			_, _ = store.Get(ctx, id)
			_, _ = store.List(ctx)
		}(id)
	}
	wg.Wait()

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
