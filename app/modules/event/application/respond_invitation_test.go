package eventservice

import (
	"context"
	"testing"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondToInvitation(t *testing.T) {
	caller := sharedtypes.Identity{UserID: "user-2", Email: "invitee@example.com"}

	seedEvent := func(events *FakeEventRepo, maxParticipants int) *eventdb.Event {
		return events.Seed(&eventdb.Event{
			OrganizerID:     "user-1",
			Title:           "Sunday Football",
			Status:          sharedtypes.EventStatusPlanned,
			MaxParticipants: maxParticipants,
			MinParticipants: 1,
			IsPublic:        true,
		})
	}

	t.Run("invalid decision", func(t *testing.T) {
		svc := newTestService(NewFakeEventRepo(), NewFakeParticipantRepo(), nil, nil, nil)

		_, err := svc.RespondToInvitation(context.Background(), caller, 1, "MAYBE")
		assert.ErrorIs(t, err, ErrInvalidDecision)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := newTestService(NewFakeEventRepo(), NewFakeParticipantRepo(), nil, nil, nil)

		_, err := svc.RespondToInvitation(context.Background(), caller, 42, sharedtypes.DecisionAccept)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("no invitation for the caller", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events, 10)
		svc := newTestService(events, NewFakeParticipantRepo(), nil, nil, nil)

		_, err := svc.RespondToInvitation(context.Background(), caller, event.ID, sharedtypes.DecisionAccept)
		assert.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("accepting an email invitation binds the identity", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events, 10)
		participants := NewFakeParticipantRepo()
		participants.Seed(&eventdb.Participant{
			EventID:     event.ID,
			PlayerEmail: "Invitee@Example.com",
			Status:      sharedtypes.ParticipantStatusInvited,
		})
		publisher := NewFakePublisher()
		svc := newTestService(events, participants, nil, nil, publisher)

		info, err := svc.RespondToInvitation(context.Background(), caller, event.ID, sharedtypes.DecisionAccept)
		require.NoError(t, err)

		assert.Equal(t, sharedtypes.ParticipantStatusAccepted, info.Status)
		require.NotNil(t, info.PlayerID, "identity bound on first response")
		assert.Equal(t, caller.UserID, *info.PlayerID)
		assert.Equal(t, []string{TopicPlayerAccepted}, publisher.Topics())
	})

	t.Run("rejecting records the decision without a notification", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events, 10)
		participants := NewFakeParticipantRepo()
		participants.Seed(&eventdb.Participant{
			EventID:     event.ID,
			PlayerEmail: caller.Email,
			Status:      sharedtypes.ParticipantStatusInvited,
		})
		publisher := NewFakePublisher()
		svc := newTestService(events, participants, nil, nil, publisher)

		info, err := svc.RespondToInvitation(context.Background(), caller, event.ID, sharedtypes.DecisionReject)
		require.NoError(t, err)
		assert.Equal(t, sharedtypes.ParticipantStatusRejected, info.Status)
		assert.Empty(t, publisher.Topics())
	})

	t.Run("accepting a full event fails, rejecting still works", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events, 1)
		participants := NewFakeParticipantRepo()
		otherID := sharedtypes.UserID("user-3")
		participants.Seed(&eventdb.Participant{
			EventID:     event.ID,
			PlayerID:    &otherID,
			PlayerEmail: "other@example.com",
			Status:      sharedtypes.ParticipantStatusAccepted,
		})
		participants.Seed(&eventdb.Participant{
			EventID:     event.ID,
			PlayerEmail: caller.Email,
			Status:      sharedtypes.ParticipantStatusInvited,
		})
		svc := newTestService(events, participants, nil, nil, nil)

		_, err := svc.RespondToInvitation(context.Background(), caller, event.ID, sharedtypes.DecisionAccept)
		assert.ErrorIs(t, err, ErrEventFull)

		info, err := svc.RespondToInvitation(context.Background(), caller, event.ID, sharedtypes.DecisionReject)
		require.NoError(t, err)
		assert.Equal(t, sharedtypes.ParticipantStatusRejected, info.Status)
	})

	t.Run("a settled row cannot be responded to again", func(t *testing.T) {
		for _, status := range []sharedtypes.ParticipantStatus{
			sharedtypes.ParticipantStatusAccepted,
			sharedtypes.ParticipantStatusRejected,
		} {
			t.Run(string(status), func(t *testing.T) {
				events := NewFakeEventRepo()
				event := seedEvent(events, 10)
				participants := NewFakeParticipantRepo()
				playerID := caller.UserID
				participants.Seed(&eventdb.Participant{
					EventID:     event.ID,
					PlayerID:    &playerID,
					PlayerEmail: caller.Email,
					Status:      status,
				})
				svc := newTestService(events, participants, nil, nil, nil)

				_, err := svc.RespondToInvitation(context.Background(), caller, event.ID, sharedtypes.DecisionAccept)
				assert.ErrorIs(t, err, ErrInvitationNotPending)
			})
		}
	})

	t.Run("a pending request can be accepted", func(t *testing.T) {
		events := NewFakeEventRepo()
		event := seedEvent(events, 10)
		participants := NewFakeParticipantRepo()
		playerID := caller.UserID
		participants.Seed(&eventdb.Participant{
			EventID:     event.ID,
			PlayerID:    &playerID,
			PlayerEmail: caller.Email,
			Status:      sharedtypes.ParticipantStatusPending,
		})
		svc := newTestService(events, participants, nil, nil, nil)

		info, err := svc.RespondToInvitation(context.Background(), caller, event.ID, sharedtypes.DecisionAccept)
		require.NoError(t, err)
		assert.Equal(t, sharedtypes.ParticipantStatusAccepted, info.Status)
	})
}
