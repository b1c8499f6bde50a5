package sweeper

import (
	"context"
)

// Sweeper is a periodic background loop of the sale engine. The payment
// sweeper polls pending orders against the mempool indexer, the progression
// sweeper drives cooldown-based batch advancement and the expiry sweeper
// fails orders whose payment window has passed.
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop, blocking until the context is canceled
	// or Stop is called
	Start(ctx context.Context) error

	// Stop shuts the loop down, waiting for an in-flight sweep to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
