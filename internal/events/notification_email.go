package events

import "time"

const NotificationEmailTopic = "hrms.notification.email.v1"

type NotificationEmailEvent struct {
	EventType      string    `json:"event_type"`
	NotificationID string    `json:"notification_id"`
	To             string    `json:"to"`
	Name           string    `json:"name"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	OccurredAt     time.Time `json:"occurred_at"`
}
