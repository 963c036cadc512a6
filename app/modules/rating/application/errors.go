package ratingservice

import "errors"

// Domain errors for the rating service.
var (
	// ErrEventNotFound indicates the event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrNotParticipant indicates the caller has no ACCEPTED participation
	// in the event.
	ErrNotParticipant = errors.New("caller did not participate in this event")

	// ErrAlreadyRated indicates the caller already rated this event.
	ErrAlreadyRated = errors.New("event already rated by this player")

	// ErrRatingOutOfRange indicates a value outside [1,5].
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)
