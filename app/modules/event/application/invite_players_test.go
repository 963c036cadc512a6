package eventservice

import (
	"context"
	"testing"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitePlayers(t *testing.T) {
	organizer := sharedtypes.Identity{UserID: "user-1", Email: "organizer@example.com"}
	stranger := sharedtypes.Identity{UserID: "user-2", Email: "stranger@example.com"}

	seedEvent := func(events *FakeEventRepo) *eventdb.Event {
		return events.Seed(&eventdb.Event{
			OrganizerID:     organizer.UserID,
			Title:           "Sunday Football",
			Status:          sharedtypes.EventStatusPlanned,
			MaxParticipants: 10,
			MinParticipants: 2,
			IsPublic:        true,
		})
	}

	t.Run("only the organizer may invite", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events)
		svc := newTestService(events, NewFakeParticipantRepo(), nil, nil, nil)

		_, err := svc.InvitePlayers(context.Background(), stranger, event.ID, []string{"a@example.com"})
		assert.ErrorIs(t, err, ErrNotOrganizer)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := newTestService(NewFakeEventRepo(), NewFakeParticipantRepo(), nil, nil, nil)

		_, err := svc.InvitePlayers(context.Background(), organizer, 42, []string{"a@example.com"})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("creates invited rows without identity", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events)
		participants := NewFakeParticipantRepo()
		svc := newTestService(events, participants, nil, nil, nil)

		infos, err := svc.InvitePlayers(context.Background(), organizer, event.ID, []string{"a@example.com", "b@example.com"})
		require.NoError(t, err)
		require.Len(t, infos, 2)
		for _, info := range infos {
			assert.Equal(t, sharedtypes.ParticipantStatusInvited, info.Status)
			assert.Nil(t, info.PlayerID)
		}
	})

	t.Run("inviting an already invited email is a no-op", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events)
		participants := NewFakeParticipantRepo()
		participants.Seed(&eventdb.Participant{
			EventID:     event.ID,
			PlayerEmail: "a@example.com",
			Status:      sharedtypes.ParticipantStatusInvited,
		})
		svc := newTestService(events, participants, nil, nil, nil)

		infos, err := svc.InvitePlayers(context.Background(), organizer, event.ID, []string{"A@Example.com"})
		require.NoError(t, err)
		assert.Empty(t, infos, "case-insensitive email match suppresses the duplicate")
		assert.Len(t, participants.Rows(), 1)
	})

	t.Run("removed rows do not block a fresh invitation", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events)
		participants := NewFakeParticipantRepo()
		participants.Seed(&eventdb.Participant{
			EventID:     event.ID,
			PlayerEmail: "a@example.com",
			Status:      sharedtypes.ParticipantStatusRemoved,
		})
		svc := newTestService(events, participants, nil, nil, nil)

		infos, err := svc.InvitePlayers(context.Background(), organizer, event.ID, []string{"a@example.com"})
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, sharedtypes.ParticipantStatusInvited, infos[0].Status)
	})

	t.Run("blank emails are skipped", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events)
		participants := NewFakeParticipantRepo()
		svc := newTestService(events, participants, nil, nil, nil)

		infos, err := svc.InvitePlayers(context.Background(), organizer, event.ID, []string{"", "   ", "a@example.com"})
		require.NoError(t, err)
		assert.Len(t, infos, 1)
	})
}
