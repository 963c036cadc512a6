package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the application logger. Production environments get JSON
// output; anything else gets the friendlier text handler.
func NewLogger(environment string) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With(slog.String("service", "event-service"))
}
