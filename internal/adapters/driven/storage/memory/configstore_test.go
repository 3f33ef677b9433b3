package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
	assert.NoError(t, store.Save())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("storage.dir", "/tmp/wppm"))
	require.NoError(t, store.Set("strain.workers", 8))
	require.NoError(t, store.Set("strain.lmax", 75.5))
	require.NoError(t, store.Set("strain.lmax_int", int64(40)))
	require.NoError(t, store.Set("flag", true))
	require.NoError(t, store.Set("labels", []any{"m3m", 3, "-1"}))

	assert.Equal(t, "/tmp/wppm", store.GetString("storage.dir"))
	assert.Equal(t, 8, store.GetInt("strain.workers"))
	assert.Equal(t, 75, store.GetInt("strain.lmax"))
	assert.Equal(t, 75.5, store.GetFloat("strain.lmax"))
	assert.Equal(t, 8.0, store.GetFloat("strain.workers"))
	assert.Equal(t, 40.0, store.GetFloat("strain.lmax_int"))
	assert.True(t, store.GetBool("flag"))
	assert.Equal(t, []string{"m3m", "-1"}, store.GetStringSlice("labels"))
}

func TestConfigStore_MissingOrMistyped(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("strain.lmax", "fifty"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("strain.lmax"))
	assert.Zero(t, store.GetFloat("strain.lmax"))
	assert.False(t, store.GetBool("strain.lmax"))
	assert.Nil(t, store.GetStringSlice("strain.lmax"))
}

func TestConfigStore_Concurrent(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = store.Set(key, i)
			_ = store.GetInt(key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 19, store.GetInt("k19"))
}
