package eventdb

import "errors"

// ErrEventNotFound is returned when an event does not exist.
var ErrEventNotFound = errors.New("event not found")

// ErrParticipantNotFound is returned when a participant row does not exist.
var ErrParticipantNotFound = errors.New("participant not found")
