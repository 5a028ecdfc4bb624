package events

import "time"

const EmployeeImportRequestedTopic = "hrms.import.employees.requested.v1"

type EmployeeImportRequestedEvent struct {
	EventType   string    `json:"event_type"`
	JobID       string    `json:"job_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
