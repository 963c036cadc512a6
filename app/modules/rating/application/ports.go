package ratingservice

import (
	"context"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// EventSource answers whether an event exists. Implemented by the event
// module's repository.
type EventSource interface {
	EventExists(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (bool, error)
}

// ParticipationSource reports a player's standing in an event. Implemented
// by the event module's participant repository.
type ParticipationSource interface {
	HasAcceptedParticipant(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, playerID sharedtypes.UserID) (bool, error)
}
