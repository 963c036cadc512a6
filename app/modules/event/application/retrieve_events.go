package eventservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
)

// GetEvent returns one event with its participant list and rating aggregate.
func (s *EventService) GetEvent(ctx context.Context, eventID sharedtypes.EventID) (info *sharedtypes.EventInfo, err error) {
	ctx, finish := s.instrument(ctx, "GetEvent")
	defer func() { finish(err) }()

	event, err := s.events.GetByID(ctx, nil, eventID)
	if err != nil {
		if errors.Is(err, eventdb.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return s.buildEventInfo(ctx, nil, event)
}

// ListAvailableEvents returns public PLANNED events scheduled in the future.
func (s *EventService) ListAvailableEvents(ctx context.Context) (infos []sharedtypes.EventInfo, err error) {
	ctx, finish := s.instrument(ctx, "ListAvailableEvents")
	defer func() { finish(err) }()

	events, err := s.events.ListAvailable(ctx, nil, time.Now())
	if err != nil {
		return nil, err
	}
	return s.buildEventInfos(ctx, nil, events)
}

// SearchEvents returns public PLANNED events matching the query across
// title, description, location and sport type.
func (s *EventService) SearchEvents(ctx context.Context, query string) (infos []sharedtypes.EventInfo, err error) {
	ctx, finish := s.instrument(ctx, "SearchEvents")
	defer func() { finish(err) }()

	events, err := s.events.Search(ctx, nil, query)
	if err != nil {
		return nil, err
	}
	return s.buildEventInfos(ctx, nil, events)
}

// ListMyEvents returns the events the caller organizes.
func (s *EventService) ListMyEvents(ctx context.Context, caller sharedtypes.Identity) (infos []sharedtypes.EventInfo, err error) {
	ctx, finish := s.instrument(ctx, "ListMyEvents")
	defer func() { finish(err) }()

	events, err := s.events.ListByOrganizer(ctx, nil, caller.UserID)
	if err != nil {
		return nil, err
	}
	return s.buildEventInfos(ctx, nil, events)
}

// ListMyParticipations returns the events where the caller holds an ACCEPTED
// row.
func (s *EventService) ListMyParticipations(ctx context.Context, caller sharedtypes.Identity) (infos []sharedtypes.EventInfo, err error) {
	ctx, finish := s.instrument(ctx, "ListMyParticipations")
	defer func() { finish(err) }()

	participations, err := s.participants.ListByPlayer(ctx, nil, caller.UserID)
	if err != nil {
		return nil, err
	}

	var eventIDs []sharedtypes.EventID
	for i := range participations {
		if participations[i].Status == sharedtypes.ParticipantStatusAccepted {
			eventIDs = append(eventIDs, participations[i].EventID)
		}
	}

	events, err := s.events.ListByIDs(ctx, nil, eventIDs)
	if err != nil {
		return nil, err
	}
	return s.buildEventInfos(ctx, nil, events)
}
