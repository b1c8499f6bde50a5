package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

const (
	defaultRPS   = 4
	defaultBurst = 8
)

// Limiter throttles calls to an external provider
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Wait blocks until a request token is available or the context is done
	Wait(ctx context.Context) error
}

// limiter is a local token-bucket limiter
type limiter struct {
	bucket *rate.Limiter
}

// NewLimiter creates a token-bucket limiter allowing rps requests per second
// with the given burst. Non-positive values fall back to defaults suitable
// for a public indexer API.
func NewLimiter(rps float64, burst int) Limiter {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = defaultBurst
	}

	return &limiter{
		bucket: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Wait blocks until a request token is available or the context is done
func (l *limiter) Wait(ctx context.Context) error {
	if err := l.bucket.Wait(ctx); err != nil {
		return fmt.Errorf("failed to acquire rate limit token: %w", err)
	}
	return nil
}
