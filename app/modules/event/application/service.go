package eventservice

import (
	"context"
	"database/sql"
	"log/slog"
	"math"
	"time"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/sports-arena/event-service/internal/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventService implements the Service interface.
type EventService struct {
	events       eventdb.EventRepository
	participants eventdb.ParticipantRepository
	ratings      RatingSource
	fields       FieldLookup
	publisher    Publisher
	logger       *slog.Logger
	metrics      *observability.OperationMetrics
	tracer       trace.Tracer
	db           *bun.DB
}

// NewEventService creates a new EventService. Publisher, metrics and tracer
// may be nil; the service degrades gracefully without them.
func NewEventService(
	events eventdb.EventRepository,
	participants eventdb.ParticipantRepository,
	ratings RatingSource,
	fields FieldLookup,
	publisher Publisher,
	logger *slog.Logger,
	metrics *observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{
		events:       events,
		participants: participants,
		ratings:      ratings,
		fields:       fields,
		publisher:    publisher,
		logger:       logger,
		metrics:      metrics,
		tracer:       tracer,
		db:           db,
	}
}

// instrument starts a span, counts the attempt, and returns a finish func to
// be called with the operation's outcome.
func (s *EventService) instrument(ctx context.Context, operation string) (context.Context, func(error)) {
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

// runInTx ensures fn runs within a single database transaction. A nil db
// (unit tests with fakes) runs fn directly.
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

// buildEventInfo assembles the read model: stored attributes plus the derived
// participant count and rating aggregate.
func (s *EventService) buildEventInfo(ctx context.Context, db bun.IDB, event *eventdb.Event) (*sharedtypes.EventInfo, error) {
	participants, err := s.participants.ListByEvent(ctx, db, event.ID)
	if err != nil {
		return nil, err
	}

	accepted := 0
	infos := make([]sharedtypes.ParticipantInfo, 0, len(participants))
	for i := range participants {
		p := &participants[i]
		if p.Status == sharedtypes.ParticipantStatusAccepted {
			accepted++
		}
		infos = append(infos, p.Info())
	}

	average, count, err := s.ratings.AggregateForEvent(ctx, db, event.ID)
	if err != nil {
		return nil, err
	}

	return &sharedtypes.EventInfo{
		ID:                  event.ID,
		OrganizerID:         event.OrganizerID,
		Title:               event.Title,
		Description:         event.Description,
		EventDate:           event.EventDate,
		Duration:            event.Duration,
		MaxParticipants:     event.MaxParticipants,
		MinParticipants:     event.MinParticipants,
		CurrentParticipants: accepted,
		SportType:           event.SportType,
		FieldID:             event.FieldID,
		Status:              event.Status,
		Location:            event.Location,
		Requirements:        event.Requirements,
		IsPublic:            event.IsPublic,
		AverageRating:       math.Round(average*100) / 100,
		RatingCount:         count,
		CreatedAt:           event.CreatedAt,
		UpdatedAt:           event.UpdatedAt,
		Participants:        infos,
	}, nil
}

// buildEventInfos maps a slice of rows to read models.
func (s *EventService) buildEventInfos(ctx context.Context, db bun.IDB, events []eventdb.Event) ([]sharedtypes.EventInfo, error) {
	infos := make([]sharedtypes.EventInfo, 0, len(events))
	for i := range events {
		info, err := s.buildEventInfo(ctx, db, &events[i])
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

var _ Service = (*EventService)(nil)
