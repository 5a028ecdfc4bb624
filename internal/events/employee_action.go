package events

import "time"

const EmployeeLifecycleTopic = "hrms.employee.lifecycle.v1"

const (
	EmployeeActionCreated         = "created"
	EmployeeActionUpdated         = "updated"
	EmployeeActionDeleted         = "deleted"
	EmployeeActionImported        = "imported"
	EmployeeActionProbationPassed = "probation_passed"
	EmployeeActionPersonnelAction = "personnel_action_applied"
)

// EmployeeActionEvent is relayed to the public employee-action channel so
// open employee lists can refresh.
type EmployeeActionEvent struct {
	EventType  string    `json:"event_type"`
	Action     string    `json:"action"`
	EmployeeID string    `json:"employee_id"`
	StaffID    string    `json:"staff_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
