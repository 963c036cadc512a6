package eventdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// EventImpl implements EventRepository using Bun ORM.
type EventImpl struct {
	db bun.IDB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db bun.IDB) EventRepository {
	return &EventImpl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *EventImpl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create persists a new event.
func (r *EventImpl) Create(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if _, err := db.NewInsert().Model(event).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID.
func (r *EventImpl) GetByID(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*Event, error) {
	db = r.resolveDB(db)
	event := new(Event)
	err := db.NewSelect().
		Model(event).
		Where("e.id = ?", eventID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// GetByIDForUpdate retrieves an event and locks its row for the duration of
// the surrounding transaction.
func (r *EventImpl) GetByIDForUpdate(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*Event, error) {
	db = r.resolveDB(db)
	event := new(Event)
	err := db.NewSelect().
		Model(event).
		Where("e.id = ?", eventID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	return event, nil
}

// ListAvailable returns public PLANNED events scheduled after now.
func (r *EventImpl) ListAvailable(ctx context.Context, db bun.IDB, now time.Time) ([]Event, error) {
	db = r.resolveDB(db)
	var events []Event
	err := db.NewSelect().
		Model(&events).
		Where("e.is_public = TRUE").
		Where("e.status = ?", sharedtypes.EventStatusPlanned).
		Where("e.event_date > ?", now).
		Order("e.event_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available events: %w", err)
	}
	return events, nil
}

// Search returns public PLANNED events matching the query.
func (r *EventImpl) Search(ctx context.Context, db bun.IDB, query string) ([]Event, error) {
	db = r.resolveDB(db)
	pattern := "%" + query + "%"
	var events []Event
	err := db.NewSelect().
		Model(&events).
		Where("e.is_public = TRUE").
		Where("e.status = ?", sharedtypes.EventStatusPlanned).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("e.title ILIKE ?", pattern).
				WhereOr("e.description ILIKE ?", pattern).
				WhereOr("e.location ILIKE ?", pattern).
				WhereOr("e.sport_type ILIKE ?", pattern)
		}).
		Order("e.event_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	return events, nil
}

// ListByOrganizer returns events created by the given organizer.
func (r *EventImpl) ListByOrganizer(ctx context.Context, db bun.IDB, organizerID sharedtypes.UserID) ([]Event, error) {
	db = r.resolveDB(db)
	var events []Event
	err := db.NewSelect().
		Model(&events).
		Where("e.organizer_id = ?", organizerID).
		Order("e.event_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by organizer: %w", err)
	}
	return events, nil
}

// ListByIDs returns events with the given IDs.
func (r *EventImpl) ListByIDs(ctx context.Context, db bun.IDB, eventIDs []sharedtypes.EventID) ([]Event, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var events []Event
	err := db.NewSelect().
		Model(&events).
		Where("e.id IN (?)", bun.In(eventIDs)).
		Order("e.event_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by IDs: %w", err)
	}
	return events, nil
}
