package position

import "go-hrms/internal/shared/query"

type ListPositionsRequest struct {
	query.Params
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	IsManager    *bool  `form:"is_manager"`
	IsActive     *bool  `form:"is_active"`
}

type PositionOptionsRequest struct {
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
}

type CreatePositionRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	DepartmentID string  `json:"department_id" binding:"required,uuid"`
	ReportsToID  *string `json:"reports_to_id" binding:"omitempty,uuid"`
	Level        int     `json:"level" binding:"omitempty,min=1,max=20"`
	IsManager    bool    `json:"is_manager"`
	IsActive     *bool   `json:"is_active"`
}

type UpdatePositionRequest = CreatePositionRequest

type PositionResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	ReportsToID    *string `json:"reports_to_id"`
	ReportsToTitle string  `json:"reports_to_title,omitempty"`
	Level          int     `json:"level"`
	IsManager      bool    `json:"is_manager"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type PositionOption struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DepartmentID string `json:"department_id"`
	Level        int    `json:"level"`
}
