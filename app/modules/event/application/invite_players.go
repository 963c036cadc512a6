package eventservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// InvitePlayers records an INVITED row per email. Only the organizer may
// invite. Inviting an email that already has an active row is a no-op, so
// the operation is idempotent.
func (s *EventService) InvitePlayers(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, emails []string) (infos []sharedtypes.ParticipantInfo, err error) {
	ctx, finish := s.instrument(ctx, "InvitePlayers")
	defer func() { finish(err) }()

	created, err := runInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) ([]eventdb.Participant, error) {
		event, err := s.events.GetByID(ctx, db, eventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrEventNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, fmt.Errorf("failed to load event: %w", err)
		}
		if event.OrganizerID != caller.UserID {
			return nil, ErrNotOrganizer
		}
		return s.invitePlayersTx(ctx, db, event, emails)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Players invited",
		slog.Int64("event_id", int64(eventID)),
		slog.Int("invited", len(created)),
		slog.Int("requested", len(emails)),
	)

	infos = make([]sharedtypes.ParticipantInfo, 0, len(created))
	for i := range created {
		infos = append(infos, created[i].Info())
	}
	return infos, nil
}

// invitePlayersTx inserts an INVITED row for every email that has no active
// row on the event yet. The player identity is unknown at invite time, so
// the row carries a NULL player_id until the invitee responds.
func (s *EventService) invitePlayersTx(ctx context.Context, db bun.IDB, event *eventdb.Event, emails []string) ([]eventdb.Participant, error) {
	var created []eventdb.Participant
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		existing, err := s.participants.FindActiveByEmail(ctx, db, event.ID, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		participant := &eventdb.Participant{
			EventID:     event.ID,
			PlayerEmail: email,
			Status:      sharedtypes.ParticipantStatusInvited,
		}
		if err := s.participants.Insert(ctx, db, participant); err != nil {
			return nil, err
		}
		created = append(created, *participant)
	}
	return created, nil
}
