package notify

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the message published for every trust event a user or the
// moderation team should hear about.
type Notification struct {
	ID          string            `json:"id"`
	RecipientID string            `json:"recipient_id,omitempty"`
	Audience    string            `json:"audience"`
	EventType   string            `json:"event_type"`
	Payload     map[string]string `json:"payload"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

const (
	AudienceUser   = "user"
	AudienceAdmins = "admins"
)

func newNotification(audience, recipientID, eventType string, payload map[string]string, now time.Time) Notification {
	if payload == nil {
		payload = map[string]string{}
	}
	return Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Audience:    audience,
		EventType:   eventType,
		Payload:     payload,
		OccurredAt:  now.UTC(),
	}
}
