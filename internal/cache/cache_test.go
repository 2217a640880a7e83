package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	key := Key("user-123", "bio")
	assert.Equal(t, "recommendations:bio:user-123", key)
	assert.NotEqual(t, key, Key("user-123", "resume"))
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest []string
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), ErrMiss)
	c.Set(ctx, "k", []string{"v"})
	c.Invalidate(ctx, "k")
	assert.NoError(t, c.Close())
}

func TestBypassedCacheAlwaysMisses(t *testing.T) {
	// No Redis listening here; New degrades to a connectionless cache.
	c := New("127.0.0.1:1", "", time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", map[string]string{"a": "b"})

	var dest map[string]string
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), ErrMiss)
	assert.NoError(t, c.Close())
}
