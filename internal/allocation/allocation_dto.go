package allocation

import "go-hrms/internal/shared/query"

type ListAllocationsRequest struct {
	query.Params
	EmploymentID   string `form:"employment_id" binding:"omitempty,uuid"`
	EmployeeID     string `form:"employee_id" binding:"omitempty,uuid"`
	GrantID        string `form:"grant_id" binding:"omitempty,uuid"`
	AllocationType string `form:"allocation_type" binding:"omitempty,oneof=grant org_funded"`
	Status         string `form:"status" binding:"omitempty,oneof=active historical inactive"`
}

type AllocationItemRequest struct {
	AllocationType string `json:"allocation_type" binding:"required,oneof=grant org_funded"`
	PositionSlotID string `json:"position_slot_id" binding:"required_if=AllocationType grant,omitempty,uuid"`
	GrantID        string `json:"grant_id" binding:"required_if=AllocationType org_funded,omitempty,uuid"`
	FTE            int    `json:"fte" binding:"required,min=1,max=10000"`
}

type ReplaceAllocationsRequest struct {
	EffectiveDate *string                 `json:"effective_date" binding:"omitempty,datetime=2006-01-02"`
	Allocations   []AllocationItemRequest `json:"allocations" binding:"required,min=1,max=20,dive"`
}

type CalculateRequest struct {
	EmploymentID  string                  `json:"employment_id" binding:"required,uuid"`
	ReferenceDate *string                 `json:"reference_date" binding:"omitempty,datetime=2006-01-02"`
	Allocations   []AllocationItemRequest `json:"allocations" binding:"required,min=1,max=20,dive"`
}

type AllocationResponse struct {
	ID              string  `json:"id"`
	EmploymentID    string  `json:"employment_id"`
	EmployeeID      string  `json:"employee_id"`
	AllocationType  string  `json:"allocation_type"`
	PositionSlotID  *string `json:"position_slot_id"`
	SlotNumber      *int    `json:"slot_number,omitempty"`
	BudgetLineCode  string  `json:"budget_line_code,omitempty"`
	PositionTitle   string  `json:"position_title,omitempty"`
	GrantID         *string `json:"grant_id"`
	GrantCode       string  `json:"grant_code,omitempty"`
	GrantName       string  `json:"grant_name,omitempty"`
	FTE             int     `json:"fte"`
	AllocatedAmount int64   `json:"allocated_amount"`
	SalaryType      string  `json:"salary_type"`
	Status          string  `json:"status"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date"`
}

type CalculatedAllocation struct {
	AllocationType  string `json:"allocation_type"`
	PositionSlotID  string `json:"position_slot_id,omitempty"`
	GrantID         string `json:"grant_id,omitempty"`
	FTE             int    `json:"fte"`
	AllocatedAmount int64  `json:"allocated_amount"`
}

type CalculationResponse struct {
	EmploymentID  string                 `json:"employment_id"`
	ReferenceDate string                 `json:"reference_date"`
	ActiveSalary  int64                  `json:"active_salary"`
	SalaryType    string                 `json:"salary_type"`
	TotalFTE      int                    `json:"total_fte"`
	TotalAmount   int64                  `json:"total_amount"`
	IsValid       bool                   `json:"is_valid"`
	Allocations   []CalculatedAllocation `json:"allocations"`
}
