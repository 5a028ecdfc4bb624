package user

import "go-hrms/internal/shared/query"

type ListUsersRequest struct {
	query.Params
	IsActive *bool `form:"is_active"`
}

type CreateUserRequest struct {
	Name       string   `json:"name" binding:"required,max=255"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=8"`
	EmployeeID *string  `json:"employee_id" binding:"omitempty,uuid"`
	Roles      []string `json:"roles" binding:"omitempty,dive,required"`
}

type UpdateUserRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Email      string  `json:"email" binding:"required,email"`
	EmployeeID *string `json:"employee_id" binding:"omitempty,uuid"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type AssignRolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=1,dive,required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,nefield=CurrentPassword"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UserResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	EmployeeID  *string  `json:"employee_id"`
	IsActive    bool     `json:"is_active"`
	Roles       []string `json:"roles"`
	LastLoginAt *string  `json:"last_login_at"`
	CreatedAt   string   `json:"created_at"`
}
