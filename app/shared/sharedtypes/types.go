package sharedtypes

// UserID is the opaque identifier issued by the identity provider.
type UserID string

// EventID identifies an event.
type EventID int64

// ParticipantID identifies one player's membership record in one event.
type ParticipantID int64

// RatingID identifies a rating.
type RatingID int64

// Identity carries the authenticated caller as supplied by the identity
// provider. The service trusts it opaquely; it never issues identities.
type Identity struct {
	UserID UserID
	Email  string
}
