package notification

import (
	"encoding/json"

	"go-hrms/internal/shared/query"
)

// Input describes one notification fanned out to any number of users.
type Input struct {
	Type    string
	Title   string
	Message string
	Data    any
	// Email also queues a mail to recipients that have an address.
	Email bool
}

type ListNotificationsRequest struct {
	query.Params
	Unread bool   `form:"unread"`
	Type   string `form:"type"`
}

type NotificationResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	ReadAt    *string         `json:"read_at"`
	CreatedAt string          `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
