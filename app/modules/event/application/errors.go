package eventservice

import "errors"

// Domain errors for the event service. Transport layers map these to their
// own status vocabulary with errors.Is; the service never encodes transport
// concerns.
var (
	// ErrEventNotFound indicates the event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrParticipantNotFound indicates the participant row does not exist.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrInvitationNotFound indicates the caller has no row to respond to.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrNotOrganizer indicates the caller is not the event's organizer.
	ErrNotOrganizer = errors.New("caller is not the event organizer")

	// ErrEventPrivate indicates a self-join attempt on a private event.
	ErrEventPrivate = errors.New("event is private, an invitation is required")

	// ErrEventNotJoinable indicates the event is no longer in the PLANNED state.
	ErrEventNotJoinable = errors.New("event is not open for joining")

	// ErrInvitationNotPending indicates the caller's row is in a state that
	// cannot be responded to (already accepted, rejected, ...).
	ErrInvitationNotPending = errors.New("invitation cannot be responded to in its current state")

	// ErrAlreadyParticipating indicates the caller already has an active row
	// for the event.
	ErrAlreadyParticipating = errors.New("player already participates in this event")

	// ErrEventFull indicates the ACCEPTED participant count reached the
	// event's capacity.
	ErrEventFull = errors.New("event is full")

	// ErrInvalidCapacity indicates maxParticipants < minParticipants or a
	// bound below 1.
	ErrInvalidCapacity = errors.New("participant bounds must satisfy max >= min >= 1")

	// ErrInvalidDecision indicates a response other than ACCEPT or REJECT.
	ErrInvalidDecision = errors.New(`decision must be "ACCEPT" or "REJECT"`)

	// ErrFieldUnavailable indicates the referenced field does not exist or
	// is disabled.
	ErrFieldUnavailable = errors.New("field not found or not available")

	// ErrFieldLookupFailed indicates the field service could not be reached;
	// the caller may retry.
	ErrFieldLookupFailed = errors.New("field lookup unavailable")

	// ErrParticipantMismatch indicates the participant belongs to a
	// different event.
	ErrParticipantMismatch = errors.New("participant does not belong to this event")
)
