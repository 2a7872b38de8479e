package messaging

import (
	"context"
)

// Broker is the interface for message brokers used to fan out domain events.
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}
