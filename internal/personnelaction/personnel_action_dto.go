package personnelaction

import "go-hrms/internal/shared/query"

type ListPersonnelActionsRequest struct {
	query.Params
	EmployeeID   string `form:"employee_id"`
	EmploymentID string `form:"employment_id"`
	ActionType   string `form:"action_type" binding:"omitempty,oneof=promotion transfer salary_change position_change"`
	Status       string `form:"status" binding:"omitempty,oneof=pending applied rejected"`
}

type PersonnelActionRequest struct {
	EmploymentID    string  `json:"employment_id" binding:"required,uuid"`
	ActionType      string  `json:"action_type" binding:"required,oneof=promotion transfer salary_change position_change"`
	NewDepartmentID *string `json:"new_department_id" binding:"omitempty,uuid"`
	NewPositionID   *string `json:"new_position_id" binding:"omitempty,uuid"`
	NewSalary       *int64  `json:"new_salary" binding:"omitempty,gt=0"`
	NewWorkLocation *string `json:"new_work_location" binding:"omitempty,max=255"`
	EffectiveDate   string  `json:"effective_date" binding:"required"`
	Reason          string  `json:"reason" binding:"max=2000"`
}

type ApprovalRequest struct {
	Approver string `json:"approver" binding:"required,oneof=dept_head coo hr accountant"`
	Approved *bool  `json:"approved" binding:"required"`
}

type ApprovalsResponse struct {
	DeptHead   bool `json:"dept_head"`
	COO        bool `json:"coo"`
	HR         bool `json:"hr"`
	Accountant bool `json:"accountant"`
}

type PersonnelActionResponse struct {
	ID                  string            `json:"id"`
	EmploymentID        string            `json:"employment_id"`
	EmployeeID          string            `json:"employee_id"`
	StaffID             string            `json:"staff_id"`
	EmployeeName        string            `json:"employee_name"`
	ActionType          string            `json:"action_type"`
	CurrentDepartmentID string            `json:"current_department_id"`
	CurrentPositionID   string            `json:"current_position_id"`
	CurrentSalary       int64             `json:"current_salary"`
	CurrentWorkLocation string            `json:"current_work_location"`
	NewDepartmentID     *string           `json:"new_department_id"`
	NewDepartmentName   string            `json:"new_department_name,omitempty"`
	NewPositionID       *string           `json:"new_position_id"`
	NewPositionTitle    string            `json:"new_position_title,omitempty"`
	NewSalary           *int64            `json:"new_salary"`
	NewWorkLocation     *string           `json:"new_work_location"`
	EffectiveDate       string            `json:"effective_date"`
	Reason              string            `json:"reason"`
	Approvals           ApprovalsResponse `json:"approvals"`
	RejectedBy          string            `json:"rejected_by,omitempty"`
	Status              string            `json:"status"`
	AppliedAt           *string           `json:"applied_at"`
	CreatedAt           string            `json:"created_at"`
}
