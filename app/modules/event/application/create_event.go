package eventservice

import (
	"context"
	"fmt"
	"log/slog"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// CreateEvent persists a new PLANNED event, enrolls the organizer as an
// ACCEPTED participant and processes the optional invite list, all in one
// transaction. A field reference is validated against the field service
// before anything is written.
func (s *EventService) CreateEvent(ctx context.Context, caller sharedtypes.Identity, req CreateEventRequest) (info *sharedtypes.EventInfo, err error) {
	ctx, finish := s.instrument(ctx, "CreateEvent")
	defer func() { finish(err) }()

	if req.MinParticipants < 1 || req.MaxParticipants < req.MinParticipants {
		return nil, ErrInvalidCapacity
	}

	if req.FieldID != nil {
		status, lookupErr := s.fields.FieldExists(ctx, *req.FieldID)
		if lookupErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrFieldLookupFailed, lookupErr)
		}
		if !status.Exists || !status.Enabled {
			return nil, ErrFieldUnavailable
		}
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	event, err := runInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (*eventdb.Event, error) {
		event := &eventdb.Event{
			OrganizerID:     caller.UserID,
			Title:           req.Title,
			Description:     req.Description,
			EventDate:       req.EventDate,
			Duration:        req.Duration,
			MaxParticipants: req.MaxParticipants,
			MinParticipants: req.MinParticipants,
			SportType:       req.SportType,
			FieldID:         req.FieldID,
			Status:          sharedtypes.EventStatusPlanned,
			Location:        req.Location,
			Requirements:    req.Requirements,
			IsPublic:        isPublic,
		}
		if err := s.events.Create(ctx, db, event); err != nil {
			return nil, err
		}

		organizerID := caller.UserID
		organizer := &eventdb.Participant{
			EventID:     event.ID,
			PlayerID:    &organizerID,
			PlayerEmail: caller.Email,
			Status:      sharedtypes.ParticipantStatusAccepted,
		}
		if err := s.participants.Insert(ctx, db, organizer); err != nil {
			return nil, err
		}

		if _, err := s.invitePlayersTx(ctx, db, event, req.InvitedPlayerEmails); err != nil {
			return nil, err
		}

		return event, nil
	})
	if err != nil {
		return nil, err
	}

	if event.FieldID != nil {
		s.publishNotification(TopicFieldReserved, FieldReservedPayload{
			EventID:   event.ID,
			FieldID:   *event.FieldID,
			EventDate: event.EventDate,
			Duration:  event.Duration,
		})
	}

	s.logger.InfoContext(ctx, "Event created",
		slog.Int64("event_id", int64(event.ID)),
		slog.String("organizer_id", string(caller.UserID)),
		slog.String("sport_type", event.SportType),
	)

	return s.buildEventInfo(ctx, nil, event)
}
