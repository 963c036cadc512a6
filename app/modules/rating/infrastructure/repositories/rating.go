package ratingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a rating is not found.
var ErrNotFound = errors.New("rating not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new rating repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Insert persists a new rating.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, rating *Rating) error {
	db = r.resolveDB(db)
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	if _, err := db.NewInsert().Model(rating).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert rating: %w", err)
	}
	return nil
}

// FindByEventAndRater returns the rater's rating for the event, or nil.
func (r *Impl) FindByEventAndRater(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, raterID sharedtypes.UserID) (*Rating, error) {
	db = r.resolveDB(db)
	rating := new(Rating)
	err := db.NewSelect().
		Model(rating).
		Where("rt.event_id = ?", eventID).
		Where("rt.rater_id = ?", raterID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	return rating, nil
}

// ListByEvent returns all ratings for the event in creation order.
func (r *Impl) ListByEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]Rating, error) {
	db = r.resolveDB(db)
	var ratings []Rating
	err := db.NewSelect().
		Model(&ratings).
		Where("rt.event_id = ?", eventID).
		Order("rt.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

// AggregateForEvent returns the mean and count of ratings for the event.
func (r *Impl) AggregateForEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (float64, int, error) {
	db = r.resolveDB(db)
	var agg struct {
		Average sql.NullFloat64 `bun:"average"`
		Count   int             `bun:"count"`
	}
	err := db.NewSelect().
		Model((*Rating)(nil)).
		ColumnExpr("AVG(rt.rating) AS average").
		ColumnExpr("COUNT(*) AS count").
		Where("rt.event_id = ?", eventID).
		Scan(ctx, &agg)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	if !agg.Average.Valid {
		return 0, agg.Count, nil
	}
	return agg.Average.Float64, agg.Count, nil
}
