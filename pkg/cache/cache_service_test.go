package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
		N    int    `json:"n"`
	}

	require.NoError(t, c.Set(ctx, "k", payload{Name: "x", N: 3}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "x", N: 3}, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()
	var out string
	err := c.Get(context.Background(), "absent", &out)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var out string
	assert.ErrorIs(t, c.Get(ctx, "k", &out), ErrMiss)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var out string
	assert.ErrorIs(t, c.Get(ctx, "k", &out), ErrMiss)
}

func TestMemoryCacheInvalidatePattern(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "post:1", "a", time.Minute))
	require.NoError(t, c.Set(ctx, "post:2", "b", time.Minute))
	require.NoError(t, c.Set(ctx, "feed", "c", time.Minute))

	require.NoError(t, c.InvalidatePattern(ctx, "post:*"))

	var out string
	assert.ErrorIs(t, c.Get(ctx, "post:1", &out), ErrMiss)
	assert.ErrorIs(t, c.Get(ctx, "post:2", &out), ErrMiss)
	assert.NoError(t, c.Get(ctx, "feed", &out))
}
