// Package ratinghandlers exposes the rating engine over HTTP.
package ratinghandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	ratingservice "github.com/sports-arena/event-service/app/modules/rating/application"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
)

// Handlers holds the HTTP handlers for the rating module.
type Handlers struct {
	service ratingservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the rating HTTP handlers.
func NewHandlers(service ratingservice.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{service: service, logger: logger}
}

// RateEvent handles POST /events/{eventID}/ratings.
func (h *Handlers) RateEvent(w http.ResponseWriter, r *http.Request) {
	identity, ok := sharedtypes.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := h.service.RateEvent(r.Context(), identity, eventID, req.Rating, req.Comment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, info)
}

// ListEventRatings handles GET /events/{eventID}/ratings.
func (h *Handlers) ListEventRatings(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	infos, err := h.service.ListEventRatings(r.Context(), eventID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, infos)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", slog.Any("error", err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Request failed", slog.Any("error", err))
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ratingservice.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ratingservice.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, ratingservice.ErrAlreadyRated):
		return http.StatusConflict
	case errors.Is(err, ratingservice.ErrRatingOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func eventIDParam(w http.ResponseWriter, r *http.Request) (sharedtypes.EventID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid event ID", http.StatusBadRequest)
		return 0, false
	}
	return sharedtypes.EventID(id), true
}
