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

// RespondToInvitation resolves the caller's INVITED or PENDING row and
// applies their decision. An email invitation carries no player identity;
// the row is matched by the caller's email and the real identity is bound on
// this first response. The ACCEPT path re-checks capacity under the event
// row lock.
func (s *EventService) RespondToInvitation(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, decision sharedtypes.Decision) (info *sharedtypes.ParticipantInfo, err error) {
	ctx, finish := s.instrument(ctx, "RespondToInvitation")
	defer func() { finish(err) }()

	if decision != sharedtypes.DecisionAccept && decision != sharedtypes.DecisionReject {
		return nil, ErrInvalidDecision
	}

	type respondResult struct {
		participant *eventdb.Participant
		event       *eventdb.Event
	}

	result, err := runInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (respondResult, error) {
		event, err := s.events.GetByIDForUpdate(ctx, db, eventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrEventNotFound) {
				return respondResult{}, ErrEventNotFound
			}
			return respondResult{}, fmt.Errorf("failed to load event: %w", err)
		}

		participant, err := s.participants.FindActiveByPlayer(ctx, db, eventID, caller.UserID)
		if err != nil {
			return respondResult{}, err
		}
		if participant == nil {
			// Unclaimed email invitation.
			participant, err = s.participants.FindActiveByEmail(ctx, db, eventID, caller.Email)
			if err != nil {
				return respondResult{}, err
			}
		}
		if participant == nil {
			return respondResult{}, ErrInvitationNotFound
		}
		if participant.Status != sharedtypes.ParticipantStatusInvited &&
			participant.Status != sharedtypes.ParticipantStatusPending {
			return respondResult{}, ErrInvitationNotPending
		}

		if decision == sharedtypes.DecisionAccept {
			accepted, err := s.participants.CountAccepted(ctx, db, eventID)
			if err != nil {
				return respondResult{}, err
			}
			if accepted >= event.MaxParticipants {
				return respondResult{}, ErrEventFull
			}
			participant.Status = sharedtypes.ParticipantStatusAccepted
		} else {
			participant.Status = sharedtypes.ParticipantStatusRejected
		}

		if participant.PlayerID == nil {
			playerID := caller.UserID
			participant.PlayerID = &playerID
		}

		if err := s.participants.Update(ctx, db, participant); err != nil {
			return respondResult{}, err
		}
		return respondResult{participant: participant, event: event}, nil
	})
	if err != nil {
		return nil, err
	}

	if result.participant.Status == sharedtypes.ParticipantStatusAccepted {
		s.publishNotification(TopicPlayerAccepted, PlayerAcceptedPayload{
			EventID:     eventID,
			EventTitle:  result.event.Title,
			OrganizerID: result.event.OrganizerID,
			PlayerID:    caller.UserID,
			PlayerEmail: caller.Email,
		})
	}

	s.logger.InfoContext(ctx, "Invitation response recorded",
		slog.Int64("event_id", int64(eventID)),
		slog.String("player_id", string(caller.UserID)),
		slog.String("decision", string(decision)),
	)

	participantInfo := result.participant.Info()
	return &participantInfo, nil
}
