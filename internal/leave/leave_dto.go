package leave

import "go-hrms/internal/shared/query"

type ListLeaveTypesRequest struct {
	query.Params
}

type LeaveTypeRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	DefaultDays        int    `json:"default_days" binding:"gte=0,lte=366"`
	RequiresAttachment bool   `json:"requires_attachment"`
	Description        string `json:"description" binding:"max=1000"`
}

type LeaveTypeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	DefaultDays        int    `json:"default_days"`
	RequiresAttachment bool   `json:"requires_attachment"`
	Description        string `json:"description"`
}

type ListBalancesRequest struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	// Year defaults to the current year.
	Year int `form:"year" binding:"omitempty,gte=2000,lte=2100"`
}

type AdjustBalanceRequest struct {
	TotalDays int `json:"total_days" binding:"gte=0,lte=366"`
}

type BalanceResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

type ListLeaveRequestsRequest struct {
	query.Params
	EmployeeID  string `form:"employee_id"`
	LeaveTypeID string `form:"leave_type_id"`
	Status      string `form:"status" binding:"omitempty,oneof=pending approved declined cancelled"`
	From        string `form:"from"`
	To          string `form:"to"`
}

type CreateLeaveRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"max=2000"`
	Attachment  string `json:"attachment" binding:"max=500"`
}

type UpdateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"max=2000"`
	Attachment  string `json:"attachment" binding:"max=500"`
}

type ApproveLeaveRequest struct {
	Approver string `json:"approver" binding:"required,oneof=supervisor hr"`
}

type DeclineLeaveRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}

type LeaveResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	StaffID              string  `json:"staff_id"`
	EmployeeName         string  `json:"employee_name"`
	LeaveTypeID          string  `json:"leave_type_id"`
	LeaveTypeName        string  `json:"leave_type_name"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	TotalDays            int     `json:"total_days"`
	Reason               string  `json:"reason"`
	Attachment           string  `json:"attachment"`
	Status               string  `json:"status"`
	SupervisorApproved   bool    `json:"supervisor_approved"`
	SupervisorApprovedAt *string `json:"supervisor_approved_at"`
	HRApproved           bool    `json:"hr_approved"`
	HRApprovedAt         *string `json:"hr_approved_at"`
	DeclineReason        string  `json:"decline_reason,omitempty"`
	ApprovedBy           *string `json:"approved_by"`
	CreatedAt            string  `json:"created_at"`
}
