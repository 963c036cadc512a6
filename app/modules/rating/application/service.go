package ratingservice

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	ratingdb "github.com/sports-arena/event-service/app/modules/rating/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/sports-arena/event-service/internal/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Service is the rating engine: one rating per participant per event, with
// the aggregate derived on read.
type Service interface {
	RateEvent(ctx context.Context, caller sharedtypes.Identity, eventID sharedtypes.EventID, value int, comment string) (*sharedtypes.RatingInfo, error)
	ListEventRatings(ctx context.Context, eventID sharedtypes.EventID) ([]sharedtypes.RatingInfo, error)
}

// RatingService implements the Service interface.
type RatingService struct {
	ratings      ratingdb.Repository
	events       EventSource
	participants ParticipationSource
	logger       *slog.Logger
	metrics      *observability.OperationMetrics
	tracer       trace.Tracer
	db           *bun.DB
}

// NewRatingService creates a new RatingService. Metrics and tracer may be
// nil.
func NewRatingService(
	ratings ratingdb.Repository,
	events EventSource,
	participants ParticipationSource,
	logger *slog.Logger,
	metrics *observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RatingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RatingService{
		ratings:      ratings,
		events:       events,
		participants: participants,
		logger:       logger,
		metrics:      metrics,
		tracer:       tracer,
		db:           db,
	}
}

func (s *RatingService) instrument(ctx context.Context, operation string) (context.Context, func(error)) {
	start := time.Now()
	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operation, trace.WithAttributes(
			attribute.String("operation", operation),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	s.metrics.RecordAttempt(operation)
	return ctx, func(err error) {
		s.metrics.RecordDuration(operation, time.Since(start))
		if err != nil {
			s.metrics.RecordFailure(operation)
			span.RecordError(err)
			s.logger.WarnContext(ctx, "Operation failed",
				slog.String("operation", operation),
				slog.Any("error", err),
			)
		}
		span.End()
	}
}

func runInTx[T any](ctx context.Context, db *bun.DB, fn func(ctx context.Context, db bun.IDB) (T, error)) (T, error) {
	if db == nil {
		return fn(ctx, nil)
	}
	var out T
	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		out, txErr = fn(ctx, tx)
		return txErr
	})
	return out, err
}

var _ Service = (*RatingService)(nil)
