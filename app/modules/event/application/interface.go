package eventservice

import (
	"context"
	"time"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
)

// CreateEventRequest carries the organizer's input for a new event.
type CreateEventRequest struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	EventDate           time.Time `json:"eventDate"`
	Duration            int       `json:"duration"`
	MaxParticipants     int       `json:"maxParticipants"`
	MinParticipants     int       `json:"minParticipants"`
	SportType           string    `json:"sportType"`
	FieldID             *int64    `json:"fieldId,omitempty"`
	Location            string    `json:"location"`
	Requirements        string    `json:"requirements,omitempty"`
	IsPublic            *bool     `json:"isPublic,omitempty"`
	InvitedPlayerEmails []string  `json:"invitedPlayerEmails,omitempty"`
}

// Service is the participation engine: event creation, invitations, joins,
// responses, removals and the read operations built on top of them.
type Service interface {
	CreateEvent(ctx context.Context, caller sharedtypes.Identity, req CreateEventRequest) (*sharedtypes.EventInfo, error)
	GetEvent(ctx context.Context, eventID sharedtypes.EventID) (*sharedtypes.EventInfo, error)
	ListAvailableEvents(ctx context.Context) ([]sharedtypes.EventInfo, error)
	SearchEvents(ctx context.Context, query string) ([]sharedtypes.EventInfo, error)
	ListMyEvents(ctx context.Context, caller sharedtypes.Identity) ([]sharedtypes.EventInfo, error)
	ListMyParticipations(ctx context.Context, caller sharedtypes.Identity) ([]sharedtypes.EventInfo, error)

	InvitePlayers(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, emails []string) ([]sharedtypes.ParticipantInfo, error)
	JoinEvent(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID) (*sharedtypes.ParticipantInfo, error)
	RespondToInvitation(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, decision sharedtypes.Decision) (*sharedtypes.ParticipantInfo, error)
	RemovePlayer(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, participantID sharedtypes.ParticipantID) error
}
