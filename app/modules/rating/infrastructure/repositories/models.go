package ratingdb

import (
	"time"

	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// Rating is one participant's rating of one event. At most one row exists
// per (event, rater).
type Rating struct {
	bun.BaseModel `bun:"table:event_ratings,alias:rt"`

	ID         sharedtypes.RatingID `bun:"id,pk,autoincrement"`
	EventID    sharedtypes.EventID  `bun:"event_id,notnull"`
	RaterID    sharedtypes.UserID   `bun:"rater_id,notnull"`
	RaterEmail string               `bun:"rater_email,notnull"`
	Rating     int                  `bun:"rating,notnull"`
	Comment    string               `bun:"comment,nullzero"`
	CreatedAt  time.Time            `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time            `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Info converts the row to its read model.
func (r *Rating) Info() sharedtypes.RatingInfo {
	return sharedtypes.RatingInfo{
		ID:         r.ID,
		EventID:    r.EventID,
		RaterID:    r.RaterID,
		RaterEmail: r.RaterEmail,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
