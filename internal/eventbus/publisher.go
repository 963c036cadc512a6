// Package eventbus provides the notification publisher. Notifications are
// fire-and-forget: the notification service consumes them off NATS
// JetStream, and delivery failure never affects the publishing operation.
package eventbus

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

// NewPublisher creates a NATS JetStream publisher for notification events.
func NewPublisher(natsURL string, logger watermill.LoggerAdapter) (message.Publisher, error) {
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
	}

	jsConfig := nats.JetStreamConfig{
		Disabled:      false,
		AutoProvision: true,
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:               natsURL,
			NatsOptions:       options,
			Marshaler:         &nats.GobMarshaler{},
			JetStream:         jsConfig,
			SubjectCalculator: nats.DefaultSubjectCalculator,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return publisher, nil
}
