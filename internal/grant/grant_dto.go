package grant

import "go-hrms/internal/shared/query"

type ListGrantsRequest struct {
	query.Params
	Organization string `form:"organization"`
	IsOrgFunded  *bool  `form:"is_org_funded"`
}

type CreateGrantRequest struct {
	Code         string  `json:"code" binding:"required,max=50"`
	Name         string  `json:"name" binding:"required,max=255"`
	Organization string  `json:"organization" binding:"omitempty,max=50"`
	Description  string  `json:"description"`
	StartDate    *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsOrgFunded  bool    `json:"is_org_funded"`
}

type UpdateGrantRequest = CreateGrantRequest

type GrantItemRequest struct {
	PositionTitle  string `json:"position_title" binding:"required,max=255"`
	GrantSalary    int64  `json:"grant_salary" binding:"min=0"`
	GrantBenefit   int64  `json:"grant_benefit" binding:"min=0"`
	LevelOfEffort  int    `json:"level_of_effort" binding:"required,min=1,max=10000"`
	PositionNumber int    `json:"position_number" binding:"required,min=1,max=500"`
	BudgetLineCode string `json:"budget_line_code" binding:"omitempty,max=100"`
}

type GrantResponse struct {
	ID           string              `json:"id"`
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	Organization string              `json:"organization"`
	Description  string              `json:"description"`
	StartDate    *string             `json:"start_date"`
	EndDate      *string             `json:"end_date"`
	IsOrgFunded  bool                `json:"is_org_funded"`
	ItemsCount   int                 `json:"items_count"`
	Items        []GrantItemResponse `json:"items,omitempty"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

type GrantItemResponse struct {
	ID             string         `json:"id"`
	GrantID        string         `json:"grant_id"`
	PositionTitle  string         `json:"position_title"`
	GrantSalary    int64          `json:"grant_salary"`
	GrantBenefit   int64          `json:"grant_benefit"`
	LevelOfEffort  int            `json:"level_of_effort"`
	PositionNumber int            `json:"position_number"`
	BudgetLineCode string         `json:"budget_line_code"`
	FilledSlots    int            `json:"filled_slots"`
	Slots          []SlotResponse `json:"slots,omitempty"`
}

type SlotResponse struct {
	ID             string            `json:"id"`
	GrantItemID    string            `json:"grant_item_id"`
	SlotNumber     int               `json:"slot_number"`
	BudgetLineCode string            `json:"budget_line_code"`
	Occupied       bool              `json:"occupied"`
	Occupant       *OccupantResponse `json:"occupant"`
}

type OccupantResponse struct {
	AllocationID string `json:"allocation_id"`
	EmployeeID   string `json:"employee_id"`
	StaffID      string `json:"staff_id"`
	EmployeeName string `json:"employee_name"`
	FTE          int    `json:"fte"`
}

type GrantOption struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	IsOrgFunded bool   `json:"is_org_funded"`
}
