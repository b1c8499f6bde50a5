package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordimint/mint-engine/internal/ratelimit"
)

func TestWait_BurstDoesNotBlock(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, 3)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWait_CancelledContext(t *testing.T) {
	limiter := ratelimit.NewLimiter(0.001, 1)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, limiter.Wait(ctx))

	// The bucket is empty; a cancelled wait must not spin forever.
	cancel()
	assert.Error(t, limiter.Wait(ctx))
}

func TestNewLimiter_DefaultsOnZeroValues(t *testing.T) {
	limiter := ratelimit.NewLimiter(0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx))
}
