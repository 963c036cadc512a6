// Package eventsource adapts the event module's repositories to the rating
// engine's read-only ports.
package eventsource

import (
	"context"
	"errors"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	ratingservice "github.com/sports-arena/event-service/app/modules/rating/application"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// Adapter answers event and participation lookups for the rating module.
type Adapter struct {
	events       eventdb.EventRepository
	participants eventdb.ParticipantRepository
}

// New creates the adapter over the event module's repositories.
func New(events eventdb.EventRepository, participants eventdb.ParticipantRepository) *Adapter {
	return &Adapter{events: events, participants: participants}
}

// EventExists reports whether the event exists.
func (a *Adapter) EventExists(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (bool, error) {
	_, err := a.events.GetByID(ctx, db, eventID)
	if err != nil {
		if errors.Is(err, eventdb.ErrEventNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// HasAcceptedParticipant reports whether the player holds an ACCEPTED row in
// the event.
func (a *Adapter) HasAcceptedParticipant(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, playerID sharedtypes.UserID) (bool, error) {
	participant, err := a.participants.FindActiveByPlayer(ctx, db, eventID, playerID)
	if err != nil {
		return false, err
	}
	return participant != nil && participant.Status == sharedtypes.ParticipantStatusAccepted, nil
}

var (
	_ ratingservice.EventSource         = (*Adapter)(nil)
	_ ratingservice.ParticipationSource = (*Adapter)(nil)
)
