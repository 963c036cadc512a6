package ratingservice

import (
	"context"
	"log/slog"

	ratingdb "github.com/sports-arena/event-service/app/modules/rating/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// RateEvent records the caller's rating for an event they participated in.
// A player may rate an event at most once; the aggregate is derived on read
// and therefore consistent immediately after the insert commits.
func (s *RatingService) RateEvent(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, value int, comment string) (info *sharedtypes.RatingInfo, err error) {
	ctx, finish := s.instrument(ctx, "RateEvent")
	defer func() { finish(err) }()

	if value < 1 || value > 5 {
		return nil, ErrRatingOutOfRange
	}

	rating, err := runInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (*ratingdb.Rating, error) {
		exists, err := s.events.EventExists(ctx, db, eventID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrEventNotFound
		}

		participated, err := s.participants.HasAcceptedParticipant(ctx, db, eventID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !participated {
			return nil, ErrNotParticipant
		}

		existing, err := s.ratings.FindByEventAndRater(ctx, db, eventID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAlreadyRated
		}

		rating := &ratingdb.Rating{
			EventID:    eventID,
			RaterID:    caller.UserID,
			RaterEmail: caller.Email,
			Rating:     value,
			Comment:    comment,
		}
		if err := s.ratings.Insert(ctx, db, rating); err != nil {
			return nil, err
		}
		return rating, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Event rated",
		slog.Int64("event_id", int64(eventID)),
		slog.String("rater_id", string(caller.UserID)),
		slog.Int("rating", value),
	)

	ratingInfo := rating.Info()
	return &ratingInfo, nil
}

// ListEventRatings returns all ratings for the event in creation order.
func (s *RatingService) ListEventRatings(ctx context.Context, eventID sharedtypes.EventID) (infos []sharedtypes.RatingInfo, err error) {
	ctx, finish := s.instrument(ctx, "ListEventRatings")
	defer func() { finish(err) }()

	ratings, err := s.ratings.ListByEvent(ctx, nil, eventID)
	if err != nil {
		return nil, err
	}

	infos = make([]sharedtypes.RatingInfo, 0, len(ratings))
	for i := range ratings {
		infos = append(infos, ratings[i].Info())
	}
	return infos, nil
}
