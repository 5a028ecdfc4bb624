package payroll

import "go-hrms/internal/shared/query"

type ListPayrollsRequest struct {
	query.Params
	EmployeeID   string `form:"employee_id"`
	EmploymentID string `form:"employment_id"`
	Organization string `form:"organization"`
	// PayPeriod is YYYY-MM.
	PayPeriod string `form:"pay_period"`
	Status    string `form:"status" binding:"omitempty,oneof=draft approved paid"`
	BatchID   string `form:"batch_id"`
}

type CalculatePayrollRequest struct {
	EmploymentID       string `json:"employment_id" binding:"required,uuid"`
	PayPeriodDate      string `json:"pay_period_date" binding:"required"`
	CompensationRefund int64  `json:"compensation_refund" binding:"gte=0"`
}

type CreatePayrollRequest struct {
	CalculatePayrollRequest
	Notes string `json:"notes" binding:"max=2000"`
}

type UpdatePayrollRequest struct {
	CompensationRefund int64  `json:"compensation_refund" binding:"gte=0"`
	Notes              string `json:"notes" binding:"max=2000"`
}

type BulkPayrollRequest struct {
	PayPeriodDate string `json:"pay_period_date" binding:"required"`
	Organization  string `json:"organization" binding:"max=50"`
	DepartmentID  string `json:"department_id" binding:"omitempty,uuid"`
}

type PayrollResponse struct {
	ID                  string  `json:"id"`
	EmploymentID        string  `json:"employment_id"`
	EmployeeID          string  `json:"employee_id"`
	StaffID             string  `json:"staff_id"`
	EmployeeName        string  `json:"employee_name"`
	Organization        string  `json:"organization"`
	FundingAllocationID string  `json:"funding_allocation_id"`
	AllocationType      string  `json:"allocation_type"`
	FTE                 int     `json:"fte"`
	SalaryType          string  `json:"salary_type"`
	PayPeriodDate       string  `json:"pay_period_date"`
	BatchID             *string `json:"batch_id"`
	Figures
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
	ApprovedBy *string `json:"approved_by"`
	ApprovedAt *string `json:"approved_at"`
	PaidAt     *string `json:"paid_at"`
	CreatedAt  string  `json:"created_at"`
}

type CalculatedPayroll struct {
	FundingAllocationID string `json:"funding_allocation_id"`
	AllocationType      string `json:"allocation_type"`
	FTE                 int    `json:"fte"`
	SalaryType          string `json:"salary_type"`
	Figures
}

type CalculationResponse struct {
	EmploymentID  string              `json:"employment_id"`
	EmployeeName  string              `json:"employee_name"`
	PayPeriodDate string              `json:"pay_period_date"`
	Salary        int64               `json:"salary"`
	SalaryType    string              `json:"salary_type"`
	Allocations   []CalculatedPayroll `json:"allocations"`
	Totals        Figures             `json:"totals"`
}

type BatchResponse struct {
	ID            string       `json:"id"`
	PayPeriodDate string       `json:"pay_period_date"`
	Organization  string       `json:"organization"`
	DepartmentID  *string      `json:"department_id"`
	Status        string       `json:"status"`
	Total         int          `json:"total"`
	Processed     int          `json:"processed"`
	Succeeded     int          `json:"succeeded"`
	Failed        int          `json:"failed"`
	Percent       int          `json:"percent"`
	Errors        []BatchError `json:"errors"`
	StartedAt     *string      `json:"started_at"`
	FinishedAt    *string      `json:"finished_at"`
	CreatedAt     string       `json:"created_at"`
}
