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

// RemovePlayer marks a participant REMOVED. Only the organizer may remove.
// REMOVED is terminal: the row is retained for audit and a later invitation
// or join creates a fresh row.
func (s *EventService) RemovePlayer(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, participantID sharedtypes.ParticipantID) (err error) {
	ctx, finish := s.instrument(ctx, "RemovePlayer")
	defer func() { finish(err) }()

	_, err = runInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (struct{}, error) {
		event, err := s.events.GetByID(ctx, db, eventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrEventNotFound) {
				return struct{}{}, ErrEventNotFound
			}
			return struct{}{}, fmt.Errorf("failed to load event: %w", err)
		}
		if event.OrganizerID != caller.UserID {
			return struct{}{}, ErrNotOrganizer
		}

		participant, err := s.participants.GetByID(ctx, db, participantID)
		if err != nil {
			if errors.Is(err, eventdb.ErrParticipantNotFound) {
				return struct{}{}, ErrParticipantNotFound
			}
			return struct{}{}, fmt.Errorf("failed to load participant: %w", err)
		}
		if participant.EventID != eventID {
			return struct{}{}, ErrParticipantMismatch
		}

		participant.Status = sharedtypes.ParticipantStatusRemoved
		if err := s.participants.Update(ctx, db, participant); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Participant removed",
		slog.Int64("event_id", int64(eventID)),
		slog.Int64("participant_id", int64(participantID)),
	)
	return nil
}
