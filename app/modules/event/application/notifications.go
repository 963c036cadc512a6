package eventservice

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
)

// Notification topics consumed by the notification service.
const (
	TopicPlayerAccepted = "notification.player.accepted"
	TopicFieldReserved  = "notification.field.reserved"
)

// PlayerAcceptedPayload announces that a player now counts toward an event's
// capacity.
type PlayerAcceptedPayload struct {
	EventID     sharedtypes.EventID `json:"event_id"`
	EventTitle  string              `json:"event_title"`
	OrganizerID sharedtypes.UserID  `json:"organizer_id"`
	PlayerID    sharedtypes.UserID  `json:"player_id"`
	PlayerEmail string              `json:"player_email"`
}

// FieldReservedPayload announces that an event was created with a field
// attached.
type FieldReservedPayload struct {
	EventID   sharedtypes.EventID `json:"event_id"`
	FieldID   int64               `json:"field_id"`
	EventDate time.Time           `json:"event_date"`
	Duration  int                 `json:"duration"`
}

// publishNotification sends a best-effort notification. Delivery failure is
// logged and swallowed: it must never affect the outcome of the operation
// that triggered it.
func (s *EventService) publishNotification(topic string, payload any) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("Failed to marshal notification payload",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return
	}

	msg := message.NewMessage(uuid.NewString(), body)
	if err := s.publisher.Publish(topic, msg); err != nil {
		s.logger.Warn("Failed to publish notification",
			slog.String("topic", topic),
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
	}
}
