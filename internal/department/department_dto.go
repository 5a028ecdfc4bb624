package department

import "go-hrms/internal/shared/query"

type ListDepartmentsRequest struct {
	query.Params
	IsActive *bool `form:"is_active"`
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	IsActive      bool   `json:"is_active"`
	PositionCount int64  `json:"positions_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type DepartmentOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
