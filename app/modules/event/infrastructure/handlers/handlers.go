// Package eventhandlers exposes the participation engine over HTTP. Handlers
// are thin: decode, delegate to the service, map domain errors to status
// codes.
package eventhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	eventservice "github.com/sports-arena/event-service/app/modules/event/application"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
)

// Handlers holds the HTTP handlers for the event module.
type Handlers struct {
	service eventservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the event HTTP handlers.
func NewHandlers(service eventservice.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{service: service, logger: logger}
}

// CreateEvent handles POST /events.
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req eventservice.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := h.service.CreateEvent(r.Context(), caller, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, info)
}

// GetEvent handles GET /events/{eventID}.
func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	info, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, info)
}

// ListAvailableEvents handles GET /events/available.
func (h *Handlers) ListAvailableEvents(w http.ResponseWriter, r *http.Request) {
	infos, err := h.service.ListAvailableEvents(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, infos)
}

// SearchEvents handles GET /events/search?q=...
func (h *Handlers) SearchEvents(w http.ResponseWriter, r *http.Request) {
	infos, err := h.service.SearchEvents(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, infos)
}

// ListMyEvents handles GET /events/mine.
func (h *Handlers) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	infos, err := h.service.ListMyEvents(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, infos)
}

// ListMyParticipations handles GET /events/participations.
func (h *Handlers) ListMyParticipations(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	infos, err := h.service.ListMyParticipations(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, infos)
}

// InvitePlayers handles POST /events/{eventID}/invite.
func (h *Handlers) InvitePlayers(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Emails []string `json:"emails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	invited, err := h.service.InvitePlayers(r.Context(), caller, eventID, req.Emails)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, invited)
}

// JoinEvent handles POST /events/{eventID}/join.
func (h *Handlers) JoinEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	participant, err := h.service.JoinEvent(r.Context(), caller, eventID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, participant)
}

// RespondToInvitation handles POST /events/{eventID}/respond.
func (h *Handlers) RespondToInvitation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Decision sharedtypes.Decision `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	participant, err := h.service.RespondToInvitation(r.Context(), caller, eventID, req.Decision)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, participant)
}

// RemovePlayer handles DELETE /events/{eventID}/participants/{participantID}.
func (h *Handlers) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	participantID, err := strconv.ParseInt(chi.URLParam(r, "participantID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid participant ID", http.StatusBadRequest)
		return
	}

	if err := h.service.RemovePlayer(r.Context(), caller, eventID, sharedtypes.ParticipantID(participantID)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
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

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, eventservice.ErrEventNotFound),
		errors.Is(err, eventservice.ErrParticipantNotFound),
		errors.Is(err, eventservice.ErrInvitationNotFound):
		return http.StatusNotFound
	case errors.Is(err, eventservice.ErrNotOrganizer),
		errors.Is(err, eventservice.ErrEventPrivate):
		return http.StatusForbidden
	case errors.Is(err, eventservice.ErrEventNotJoinable),
		errors.Is(err, eventservice.ErrInvitationNotPending),
		errors.Is(err, eventservice.ErrAlreadyParticipating),
		errors.Is(err, eventservice.ErrEventFull):
		return http.StatusConflict
	case errors.Is(err, eventservice.ErrInvalidCapacity),
		errors.Is(err, eventservice.ErrInvalidDecision),
		errors.Is(err, eventservice.ErrParticipantMismatch):
		return http.StatusBadRequest
	case errors.Is(err, eventservice.ErrFieldUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, eventservice.ErrFieldLookupFailed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func callerIdentity(w http.ResponseWriter, r *http.Request) (sharedtypes.Identity, bool) {
	identity, ok := sharedtypes.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return sharedtypes.Identity{}, false
	}
	return identity, true
}

func eventIDParam(w http.ResponseWriter, r *http.Request) (sharedtypes.EventID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid event ID", http.StatusBadRequest)
		return 0, false
	}
	return sharedtypes.EventID(id), true
}
