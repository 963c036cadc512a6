// Package app wires configuration, storage, messaging and the HTTP surface
// into a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	eventservice "github.com/sports-arena/event-service/app/modules/event/application"
	eventhandlers "github.com/sports-arena/event-service/app/modules/event/infrastructure/handlers"
	eventrouter "github.com/sports-arena/event-service/app/modules/event/infrastructure/router"
	ratingservice "github.com/sports-arena/event-service/app/modules/rating/application"
	"github.com/sports-arena/event-service/app/modules/rating/infrastructure/eventsource"
	ratinghandlers "github.com/sports-arena/event-service/app/modules/rating/infrastructure/handlers"
	"github.com/sports-arena/event-service/config"
	"github.com/sports-arena/event-service/db/bundb"
	"github.com/sports-arena/event-service/internal/eventbus"
	"github.com/sports-arena/event-service/internal/fieldclient"
	"github.com/sports-arena/event-service/internal/observability"
	"github.com/sports-arena/event-service/pkg/jwt"
	"go.opentelemetry.io/otel"
)

// App bundles the wired components of the event service.
type App struct {
	Cfg           *config.Config
	Logger        *slog.Logger
	EventService  eventservice.Service
	RatingService ratingservice.Service
	db            *bundb.DBService
	publisher     message.Publisher
	httpServer    *http.Server
}

// NewApp initializes the application with the necessary services and
// configuration. A missing NATS URL disables notification publishing; the
// service itself stays fully functional.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg.Observability.Environment)

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	var publisher message.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = eventbus.NewPublisher(cfg.NATS.URL, watermill.NewSlogLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
		}
	} else {
		logger.Warn("NATS URL not configured, notifications disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	tracer := otel.Tracer("event-service")

	fieldLookup := fieldclient.New(cfg.FieldService.URL, cfg.FieldService.RequestsPerSecond, logger)

	eventSvc := eventservice.NewEventService(
		dbService.EventDB,
		dbService.ParticipantDB,
		dbService.RatingDB,
		fieldLookup,
		publisher,
		logger,
		observability.NewOperationMetrics(registry, "event"),
		tracer,
		dbService.GetDB(),
	)

	eventLink := eventsource.New(dbService.EventDB, dbService.ParticipantDB)
	ratingSvc := ratingservice.NewRatingService(
		dbService.RatingDB,
		eventLink,
		eventLink,
		logger,
		observability.NewOperationMetrics(registry, "rating"),
		tracer,
		dbService.GetDB(),
	)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Group(func(r chi.Router) {
		r.Use(jwt.Middleware(jwtService))
		r.Mount("/events", eventrouter.Routes(
			eventhandlers.NewHandlers(eventSvc, logger),
			ratinghandlers.NewHandlers(ratingSvc, logger),
		))
	})

	return &App{
		Cfg:           cfg,
		Logger:        logger,
		EventService:  eventSvc,
		RatingService: ratingSvc,
		db:            dbService,
		publisher:     publisher,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("HTTP server listening", slog.String("addr", app.Cfg.HTTP.Addr))
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return nil
}

// Close releases the app's external connections.
func (app *App) Close() {
	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.Logger.Warn("Failed to close publisher", slog.Any("error", err))
		}
	}
	if db := app.db.GetDB(); db != nil {
		if err := db.Close(); err != nil {
			app.Logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}
}

// DB returns the database service.
func (app *App) DB() *bundb.DBService {
	return app.db
}

// Publisher returns the notification publisher, nil when NATS is disabled.
func (app *App) Publisher() message.Publisher {
	return app.publisher
}
