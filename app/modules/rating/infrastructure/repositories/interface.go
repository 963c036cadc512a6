package ratingdb

import (
	"context"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// Repository defines the contract for rating persistence. Every method
// accepts a bun.IDB so services can run them inside a transaction; a nil
// handle falls back to the repository's own connection.
type Repository interface {
	// Insert persists a new rating and fills in its generated ID.
	Insert(ctx context.Context, db bun.IDB, rating *Rating) error

	// FindByEventAndRater returns the rater's rating for the event, or nil
	// when none exists.
	FindByEventAndRater(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, raterID sharedtypes.UserID) (*Rating, error)

	// ListByEvent returns all ratings for the event in creation order.
	ListByEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]Rating, error)

	// AggregateForEvent returns the arithmetic mean and count of ratings for
	// the event. Mean is 0 when no ratings exist.
	AggregateForEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (float64, int, error)
}
