package eventservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// JoinEvent is the self-service join of a public event. The event row is
// locked for the duration of the transaction so the capacity check and the
// insert act as one atomic unit: two concurrent joins on the last open seat
// resolve to one success and one ErrEventFull.
func (s *EventService) JoinEvent(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID) (info *sharedtypes.ParticipantInfo, err error) {
	ctx, finish := s.instrument(ctx, "JoinEvent")
	defer func() { finish(err) }()

	type joinResult struct {
		participant *eventdb.Participant
		event       *eventdb.Event
	}

	result, err := runInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (joinResult, error) {
		event, err := s.events.GetByIDForUpdate(ctx, db, eventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrEventNotFound) {
				return joinResult{}, ErrEventNotFound
			}
			return joinResult{}, fmt.Errorf("failed to load event: %w", err)
		}
		if !event.IsPublic {
			return joinResult{}, ErrEventPrivate
		}
		if event.Status != sharedtypes.EventStatusPlanned {
			return joinResult{}, ErrEventNotJoinable
		}

		existing, err := s.participants.FindActiveByPlayer(ctx, db, eventID, caller.UserID)
		if err != nil {
			return joinResult{}, err
		}
		if existing != nil {
			return joinResult{}, ErrAlreadyParticipating
		}

		accepted, err := s.participants.CountAccepted(ctx, db, eventID)
		if err != nil {
			return joinResult{}, err
		}
		if accepted >= event.MaxParticipants {
			return joinResult{}, ErrEventFull
		}

		playerID := caller.UserID
		participant := &eventdb.Participant{
			EventID:     eventID,
			PlayerID:    &playerID,
			PlayerEmail: caller.Email,
			Status:      sharedtypes.ParticipantStatusAccepted,
		}
		if err := s.participants.Insert(ctx, db, participant); err != nil {
			return joinResult{}, err
		}
		return joinResult{participant: participant, event: event}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publishNotification(TopicPlayerAccepted, PlayerAcceptedPayload{
		EventID:     eventID,
		EventTitle:  result.event.Title,
		OrganizerID: result.event.OrganizerID,
		PlayerID:    caller.UserID,
		PlayerEmail: caller.Email,
	})

	s.logger.InfoContext(ctx, "Player joined event",
		slog.Int64("event_id", int64(eventID)),
		slog.String("player_id", string(caller.UserID)),
	)

	participantInfo := result.participant.Info()
	return &participantInfo, nil
}
