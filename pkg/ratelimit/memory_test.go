package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Burst(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	m := NewMemoryLimiter(1, 3)
	m.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, err := m.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "call %d within burst", i)
	}
	ok, err := m.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok, "burst exhausted")

	ok, _ = m.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other key has its own bucket")

	now = now.Add(time.Second)
	ok, _ = m.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "one token refilled")
}

func TestMemoryLimiter_Prune(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	m := NewMemoryLimiter(10, 10)
	m.now = func() time.Time { return now }
	m.lastPrune.Store(now.UnixNano())

	_, _ = m.Allow(ctx, "a")
	_, _ = m.Allow(ctx, "b")
	assert.Equal(t, 2, m.Len())

	now = now.Add(2 * time.Minute)
	_, _ = m.Allow(ctx, "b")

	now = now.Add(2 * time.Minute)
	_, _ = m.Allow(ctx, "c")
	// a 已超过 idleTTL，b 仍在
	assert.Equal(t, 2, m.Len())
	_, stillThere := m.visitors.Get("a")
	assert.False(t, stillThere)
}
