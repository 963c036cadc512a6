// Package fieldclient is the HTTP adapter for the field service. The core
// consumes a single capability from it: whether a field exists and is
// enabled.
package fieldclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	eventservice "github.com/sports-arena/event-service/app/modules/event/application"
	"golang.org/x/time/rate"
)

const defaultTimeout = 5 * time.Second

// Client queries the field service over HTTP. Outbound calls are
// rate-limited so a burst of event creations cannot overwhelm the
// collaborator.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates a field service client. requestsPerSecond <= 0 disables the
// limiter.
func New(baseURL string, requestsPerSecond float64, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(limit, 10),
		logger:  logger,
	}
}

type fieldResponse struct {
	ID      int64 `json:"id"`
	Enabled bool  `json:"enabled"`
}

// FieldExists reports whether the field exists and is enabled. A 404 from
// the field service means the field does not exist and is not an error;
// anything else unexpected is.
func (c *Client) FieldExists(ctx context.Context, fieldID int64) (eventservice.FieldStatus, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return eventservice.FieldStatus{}, fmt.Errorf("field lookup rate limit: %w", err)
	}

	url := fmt.Sprintf("%s/fields/%d", c.baseURL, fieldID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return eventservice.FieldStatus{}, fmt.Errorf("failed to build field request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eventservice.FieldStatus{}, fmt.Errorf("field service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return eventservice.FieldStatus{Exists: false}, nil
	case resp.StatusCode != http.StatusOK:
		return eventservice.FieldStatus{}, fmt.Errorf("field service returned status %d", resp.StatusCode)
	}

	var field fieldResponse
	if err := json.NewDecoder(resp.Body).Decode(&field); err != nil {
		return eventservice.FieldStatus{}, fmt.Errorf("failed to decode field response: %w", err)
	}

	c.logger.Debug("Field resolved",
		slog.Int64("field_id", fieldID),
		slog.Bool("enabled", field.Enabled),
	)
	return eventservice.FieldStatus{Exists: true, Enabled: field.Enabled}, nil
}

var _ eventservice.FieldLookup = (*Client)(nil)
