package sharedtypes

import "time"

// RatingInfo is the read model for one event rating.
type RatingInfo struct {
	ID         RatingID  `json:"id"`
	EventID    EventID   `json:"eventId"`
	RaterID    UserID    `json:"raterId"`
	RaterEmail string    `json:"raterEmail"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
