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

// ParticipantImpl implements ParticipantRepository using Bun ORM.
type ParticipantImpl struct {
	db bun.IDB
}

// NewParticipantRepository creates a new participant repository.
func NewParticipantRepository(db bun.IDB) ParticipantRepository {
	return &ParticipantImpl{db: db}
}

func (r *ParticipantImpl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Insert persists a new participant row.
func (r *ParticipantImpl) Insert(ctx context.Context, db bun.IDB, participant *Participant) error {
	db = r.resolveDB(db)
	now := time.Now()
	participant.CreatedAt = now
	participant.UpdatedAt = now
	if _, err := db.NewInsert().Model(participant).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// Update persists changes to an existing participant row.
func (r *ParticipantImpl) Update(ctx context.Context, db bun.IDB, participant *Participant) error {
	db = r.resolveDB(db)
	participant.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(participant).
		Column("player_id", "status", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

// GetByID retrieves a participant row by ID.
func (r *ParticipantImpl) GetByID(ctx context.Context, db bun.IDB, participantID sharedtypes.ParticipantID) (*Participant, error) {
	db = r.resolveDB(db)
	participant := new(Participant)
	err := db.NewSelect().
		Model(participant).
		Where("p.id = ?", participantID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return participant, nil
}

// FindActiveByPlayer returns the player's non-REMOVED row for the event, or
// nil when none exists.
func (r *ParticipantImpl) FindActiveByPlayer(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, playerID sharedtypes.UserID) (*Participant, error) {
	db = r.resolveDB(db)
	participant := new(Participant)
	err := db.NewSelect().
		Model(participant).
		Where("p.event_id = ?", eventID).
		Where("p.player_id = ?", playerID).
		Where("p.status != ?", sharedtypes.ParticipantStatusRemoved).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find participant by player: %w", err)
	}
	return participant, nil
}

// FindActiveByEmail returns the non-REMOVED row whose email matches
// case-insensitively, or nil when none exists.
func (r *ParticipantImpl) FindActiveByEmail(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, email string) (*Participant, error) {
	db = r.resolveDB(db)
	participant := new(Participant)
	err := db.NewSelect().
		Model(participant).
		Where("p.event_id = ?", eventID).
		Where("LOWER(p.player_email) = LOWER(?)", email).
		Where("p.status != ?", sharedtypes.ParticipantStatusRemoved).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find participant by email: %w", err)
	}
	return participant, nil
}

// ListByEvent returns all rows for an event in creation order.
func (r *ParticipantImpl) ListByEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]Participant, error) {
	db = r.resolveDB(db)
	var participants []Participant
	err := db.NewSelect().
		Model(&participants).
		Where("p.event_id = ?", eventID).
		Order("p.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// ListByPlayer returns all rows bound to the given player identity.
func (r *ParticipantImpl) ListByPlayer(ctx context.Context, db bun.IDB, playerID sharedtypes.UserID) ([]Participant, error) {
	db = r.resolveDB(db)
	var participants []Participant
	err := db.NewSelect().
		Model(&participants).
		Where("p.player_id = ?", playerID).
		Order("p.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants by player: %w", err)
	}
	return participants, nil
}

// CountAccepted returns the number of ACCEPTED rows for an event.
func (r *ParticipantImpl) CountAccepted(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*Participant)(nil)).
		Where("p.event_id = ?", eventID).
		Where("p.status = ?", sharedtypes.ParticipantStatusAccepted).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count accepted participants: %w", err)
	}
	return count, nil
}
