package eventdb

import (
	"context"
	"time"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// EventRepository defines the contract for event persistence. Every method
// accepts a bun.IDB so services can run them inside a transaction; a nil
// handle falls back to the repository's own connection.
//
// Error semantics:
//   - ErrEventNotFound: event row does not exist (GetByID, GetByIDForUpdate)
//   - other errors: infrastructure failures, wrapped
type EventRepository interface {
	// Create persists a new event and fills in its generated ID.
	Create(ctx context.Context, db bun.IDB, event *Event) error

	// GetByID retrieves an event.
	GetByID(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*Event, error)

	// GetByIDForUpdate retrieves an event and takes a row-level lock on it.
	// Capacity-sensitive transitions lock the event row first so concurrent
	// acceptances of the last seat serialize.
	GetByIDForUpdate(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*Event, error)

	// ListAvailable returns public PLANNED events scheduled after now.
	ListAvailable(ctx context.Context, db bun.IDB, now time.Time) ([]Event, error)

	// Search returns public PLANNED events matching the query across title,
	// description, location and sport type (case-insensitive substring).
	Search(ctx context.Context, db bun.IDB, query string) ([]Event, error)

	// ListByOrganizer returns the events created by the given organizer.
	ListByOrganizer(ctx context.Context, db bun.IDB, organizerID sharedtypes.UserID) ([]Event, error)

	// ListByIDs returns the events with the given IDs, newest first.
	ListByIDs(ctx context.Context, db bun.IDB, eventIDs []sharedtypes.EventID) ([]Event, error)
}

// ParticipantRepository defines the contract for participant persistence.
//
// "Active" means any status except REMOVED: removed rows are retained for
// audit but do not block a fresh invitation or join.
type ParticipantRepository interface {
	// Insert persists a new participant row and fills in its generated ID.
	Insert(ctx context.Context, db bun.IDB, participant *Participant) error

	// Update persists status and identity changes to an existing row.
	Update(ctx context.Context, db bun.IDB, participant *Participant) error

	// GetByID retrieves a participant row by its ID.
	GetByID(ctx context.Context, db bun.IDB, participantID sharedtypes.ParticipantID) (*Participant, error)

	// FindActiveByPlayer returns the caller's active row for the event, or
	// nil when none exists.
	FindActiveByPlayer(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, playerID sharedtypes.UserID) (*Participant, error)

	// FindActiveByEmail returns the active row whose email matches
	// case-insensitively, or nil when none exists.
	FindActiveByEmail(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, email string) (*Participant, error)

	// ListByEvent returns all rows for an event in creation order.
	ListByEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]Participant, error)

	// ListByPlayer returns all rows bound to the given player identity.
	ListByPlayer(ctx context.Context, db bun.IDB, playerID sharedtypes.UserID) ([]Participant, error)

	// CountAccepted returns the number of ACCEPTED rows for an event. Only
	// ACCEPTED rows count toward capacity.
	CountAccepted(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (int, error)
}
