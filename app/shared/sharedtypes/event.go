package sharedtypes

import "time"

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventStatusPlanned   EventStatus = "PLANNED"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// ParticipantStatus represents a player's standing within an event.
type ParticipantStatus string

const (
	ParticipantStatusInvited  ParticipantStatus = "INVITED"
	ParticipantStatusPending  ParticipantStatus = "PENDING"
	ParticipantStatusAccepted ParticipantStatus = "ACCEPTED"
	ParticipantStatusRejected ParticipantStatus = "REJECTED"
	ParticipantStatusRemoved  ParticipantStatus = "REMOVED"
)

// Decision is a player's answer to an invitation.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionReject Decision = "REJECT"
)

// EventInfo is the read model returned by event operations. The derived
// fields (CurrentParticipants, AverageRating, RatingCount) are computed on
// read, never stored.
type EventInfo struct {
	ID                  EventID           `json:"id"`
	OrganizerID         UserID            `json:"organizerId"`
	Title               string            `json:"title"`
	Description         string            `json:"description,omitempty"`
	EventDate           time.Time         `json:"eventDate"`
	Duration            int               `json:"duration"`
	MaxParticipants     int               `json:"maxParticipants"`
	MinParticipants     int               `json:"minParticipants"`
	CurrentParticipants int               `json:"currentParticipants"`
	SportType           string            `json:"sportType"`
	FieldID             *int64            `json:"fieldId,omitempty"`
	Status              EventStatus       `json:"status"`
	Location            string            `json:"location"`
	Requirements        string            `json:"requirements,omitempty"`
	IsPublic            bool              `json:"isPublic"`
	AverageRating       float64           `json:"averageRating"`
	RatingCount         int               `json:"ratingCount"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
	Participants        []ParticipantInfo `json:"participants,omitempty"`
}

// ParticipantInfo is the read model for one membership record. PlayerID is
// nil for email invitations that no authenticated player has claimed yet.
type ParticipantInfo struct {
	ID          ParticipantID     `json:"id"`
	EventID     EventID           `json:"eventId"`
	PlayerID    *UserID           `json:"playerId,omitempty"`
	PlayerEmail string            `json:"playerEmail"`
	Status      ParticipantStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
