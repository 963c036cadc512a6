package ratingservice

import (
	"context"
	"time"

	ratingdb "github.com/sports-arena/event-service/app/modules/rating/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Rating Repo
// ------------------------

type FakeRatingRepo struct {
	trace  []string
	rows   []ratingdb.Rating
	nextID sharedtypes.RatingID

	InsertFunc              func(ctx context.Context, db bun.IDB, rating *ratingdb.Rating) error
	FindByEventAndRaterFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, raterID sharedtypes.UserID) (*ratingdb.Rating, error)
}

func NewFakeRatingRepo() *FakeRatingRepo {
	return &FakeRatingRepo{trace: []string{}}
}

func (f *FakeRatingRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// Seed stores a rating, assigning an ID when none is set.
func (f *FakeRatingRepo) Seed(rating *ratingdb.Rating) *ratingdb.Rating {
	if rating.ID == 0 {
		f.nextID++
		rating.ID = f.nextID
	}
	f.rows = append(f.rows, *rating)
	return rating
}

// Rows returns a copy of all stored rows.
func (f *FakeRatingRepo) Rows() []ratingdb.Rating {
	out := make([]ratingdb.Rating, len(f.rows))
	copy(out, f.rows)
	return out
}

func (f *FakeRatingRepo) Insert(ctx context.Context, db bun.IDB, rating *ratingdb.Rating) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, rating)
	}
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	f.Seed(rating)
	return nil
}

func (f *FakeRatingRepo) FindByEventAndRater(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, raterID sharedtypes.UserID) (*ratingdb.Rating, error) {
	f.record("FindByEventAndRater")
	if f.FindByEventAndRaterFunc != nil {
		return f.FindByEventAndRaterFunc(ctx, db, eventID, raterID)
	}
	for i := range f.rows {
		if f.rows[i].EventID == eventID && f.rows[i].RaterID == raterID {
			out := f.rows[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (f *FakeRatingRepo) ListByEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]ratingdb.Rating, error) {
	f.record("ListByEvent")
	var out []ratingdb.Rating
	for i := range f.rows {
		if f.rows[i].EventID == eventID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *FakeRatingRepo) AggregateForEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (float64, int, error) {
	f.record("AggregateForEvent")
	sum, count := 0, 0
	for i := range f.rows {
		if f.rows[i].EventID == eventID {
			sum += f.rows[i].Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *FakeRatingRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ ratingdb.Repository = (*FakeRatingRepo)(nil)

// ------------------------
// Fake Event/Participation Sources
// ------------------------

type FakeEventSource struct {
	Exists bool

	EventExistsFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (bool, error)
}

func (f *FakeEventSource) EventExists(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (bool, error) {
	if f.EventExistsFunc != nil {
		return f.EventExistsFunc(ctx, db, eventID)
	}
	return f.Exists, nil
}

var _ EventSource = (*FakeEventSource)(nil)

type FakeParticipationSource struct {
	Accepted bool

	HasAcceptedParticipantFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, playerID sharedtypes.UserID) (bool, error)
}

func (f *FakeParticipationSource) HasAcceptedParticipant(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, playerID sharedtypes.UserID) (bool, error) {
	if f.HasAcceptedParticipantFunc != nil {
		return f.HasAcceptedParticipantFunc(ctx, db, eventID, playerID)
	}
	return f.Accepted, nil
}

var _ ParticipationSource = (*FakeParticipationSource)(nil)

// newTestService wires a service over the fakes with no real database.
func newTestService(ratings *FakeRatingRepo, events *FakeEventSource, participants *FakeParticipationSource) *RatingService {
	if events == nil {
		events = &FakeEventSource{Exists: true}
	}
	if participants == nil {
		participants = &FakeParticipationSource{Accepted: true}
	}
	return NewRatingService(ratings, events, participants, nil, nil, nil, nil)
}
