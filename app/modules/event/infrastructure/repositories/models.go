package eventdb

import (
	"time"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// Event holds event metadata. Status drives the lifecycle; rows are never
// hard-deleted.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID              sharedtypes.EventID     `bun:"id,pk,autoincrement"`
	OrganizerID     sharedtypes.UserID      `bun:"organizer_id,notnull"`
	Title           string                  `bun:"title,notnull"`
	Description     string                  `bun:"description,nullzero"`
	EventDate       time.Time               `bun:"event_date,notnull"`
	Duration        int                     `bun:"duration,notnull"`
	MaxParticipants int                     `bun:"max_participants,notnull"`
	MinParticipants int                     `bun:"min_participants,notnull"`
	SportType       string                  `bun:"sport_type,notnull"`
	FieldID         *int64                  `bun:"field_id,nullzero"`
	Status          sharedtypes.EventStatus `bun:"status,notnull"`
	Location        string                  `bun:"location,notnull"`
	Requirements    string                  `bun:"requirements,nullzero"`
	IsPublic        bool                    `bun:"is_public,notnull,default:true"`
	CreatedAt       time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time               `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Participant is one player's membership record in one event.
//
// PlayerID is NULL for email invitations until the invitee authenticates and
// responds, at which point the real identity is bound to the row. This
// replaces the synthetic "INVITED_<email>" identifier scheme and cannot
// collide with a genuine identity.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:p"`

	ID          sharedtypes.ParticipantID     `bun:"id,pk,autoincrement"`
	EventID     sharedtypes.EventID           `bun:"event_id,notnull"`
	PlayerID    *sharedtypes.UserID           `bun:"player_id,nullzero"`
	PlayerEmail string                        `bun:"player_email,notnull"`
	Status      sharedtypes.ParticipantStatus `bun:"status,notnull"`
	CreatedAt   time.Time                     `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time                     `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Info converts the row to its read model.
func (p *Participant) Info() sharedtypes.ParticipantInfo {
	return sharedtypes.ParticipantInfo{
		ID:          p.ID,
		EventID:     p.EventID,
		PlayerID:    p.PlayerID,
		PlayerEmail: p.PlayerEmail,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
