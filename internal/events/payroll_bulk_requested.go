package events

import "time"

const PayrollBulkRequestedTopic = "hrms.payroll.bulk.requested.v1"

type PayrollBulkRequestedEvent struct {
	EventType   string    `json:"event_type"`
	BatchID     string    `json:"batch_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
