package eventservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// FieldStatus reports whether a field reference resolves.
type FieldStatus struct {
	Exists  bool
	Enabled bool
}

// FieldLookup resolves field references at event creation time. It is the
// only capability consumed from the field service.
type FieldLookup interface {
	FieldExists(ctx context.Context, fieldID int64) (FieldStatus, error)
}

// Publisher sends fire-and-forget notification events. The signature matches
// watermill's message.Publisher so any of its pub/subs can back it.
type Publisher interface {
	Publish(topic string, messages ...*message.Message) error
}

// RatingSource supplies the derived rating aggregate for an event.
type RatingSource interface {
	AggregateForEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (float64, int, error)
}
