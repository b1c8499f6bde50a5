package messaging

import (
	"context"

	"github.com/ordimint/mint-engine/internal/domain"
)

// Publisher defines the interface for publishing sale events to the message
// broker consumed by the UI layer. Publishing is best-effort; the sale engine
// never fails an operation because an event could not be delivered.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a sale event to the message broker
	PublishEvent(ctx context.Context, event *domain.SaleEvent) error
	// Close closes the connection
	Close()
}
