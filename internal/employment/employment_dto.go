package employment

import "go-hrms/internal/shared/query"

type ListEmploymentsRequest struct {
	query.Params
	EmployeeID      string `form:"employee_id" binding:"omitempty,uuid"`
	DepartmentID    string `form:"department_id" binding:"omitempty,uuid"`
	PositionID      string `form:"position_id" binding:"omitempty,uuid"`
	EmploymentType  string `form:"employment_type" binding:"omitempty,oneof=Full-time Part-time Contract"`
	Status          string `form:"status" binding:"omitempty,oneof=active inactive"`
	ProbationStatus string `form:"probation_status" binding:"omitempty,oneof=ongoing passed failed extended"`
	Organization    string `form:"organization"`
}

type UpdateEmploymentRequest struct {
	DepartmentID        string  `json:"department_id" binding:"required,uuid"`
	PositionID          string  `json:"position_id" binding:"required,uuid"`
	EmploymentType      string  `json:"employment_type" binding:"required,oneof=Full-time Part-time Contract"`
	PayMethod           string  `json:"pay_method" binding:"omitempty,max=50"`
	WorkLocation        string  `json:"work_location" binding:"omitempty,max=255"`
	StartDate           string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate             *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	PassProbationDate   *string `json:"pass_probation_date" binding:"omitempty,datetime=2006-01-02"`
	ProbationSalary     *int64  `json:"probation_salary" binding:"omitempty,gt=0"`
	PassProbationSalary int64   `json:"pass_probation_salary" binding:"required,gt=0"`
	HealthWelfare       bool    `json:"health_welfare"`
	PVD                 bool    `json:"pvd"`
	SavingFund          bool    `json:"saving_fund"`
	Status              string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateEmploymentRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	UpdateEmploymentRequest
}

// ProbationDecisionRequest backs complete and fail. Date defaults to today.
type ProbationDecisionRequest struct {
	Date   *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Reason string  `json:"reason" binding:"omitempty,max=1000"`
	Notes  string  `json:"notes" binding:"omitempty,max=2000"`
}

type ExtendProbationRequest struct {
	NewPassProbationDate string `json:"new_pass_probation_date" binding:"required,datetime=2006-01-02"`
	Reason               string `json:"reason" binding:"required,max=1000"`
	Notes                string `json:"notes" binding:"omitempty,max=2000"`
}

type EmploymentResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	StaffID             string  `json:"staff_id,omitempty"`
	EmployeeName        string  `json:"employee_name,omitempty"`
	Organization        string  `json:"organization,omitempty"`
	DepartmentID        string  `json:"department_id"`
	DepartmentName      string  `json:"department_name,omitempty"`
	PositionID          string  `json:"position_id"`
	PositionTitle       string  `json:"position_title,omitempty"`
	EmploymentType      string  `json:"employment_type"`
	PayMethod           string  `json:"pay_method"`
	WorkLocation        string  `json:"work_location"`
	StartDate           string  `json:"start_date"`
	EndDate             *string `json:"end_date"`
	PassProbationDate   *string `json:"pass_probation_date"`
	ProbationSalary     *int64  `json:"probation_salary"`
	PassProbationSalary int64   `json:"pass_probation_salary"`
	ProbationStatus     string  `json:"probation_status"`
	ActiveSalary        int64   `json:"active_salary"`
	ActiveSalaryType    string  `json:"active_salary_type"`
	HealthWelfare       bool    `json:"health_welfare"`
	PVD                 bool    `json:"pvd"`
	SavingFund          bool    `json:"saving_fund"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type ProbationRecordResponse struct {
	ID                 string  `json:"id"`
	EventType          string  `json:"event_type"`
	EventDate          string  `json:"event_date"`
	ProbationStartDate string  `json:"probation_start_date"`
	ProbationEndDate   *string `json:"probation_end_date"`
	PreviousEndDate    *string `json:"previous_end_date"`
	ExtensionNumber    int     `json:"extension_number"`
	Reason             string  `json:"reason"`
	Notes              string  `json:"notes"`
	ActorID            *string `json:"actor_id"`
	IsActive           bool    `json:"is_active"`
	CreatedAt          string  `json:"created_at"`
}

// TransitionResult summarises one probation transition run.
type TransitionResult struct {
	Due    int      `json:"due"`
	Passed []string `json:"passed"`
	Failed int      `json:"failed"`
}
