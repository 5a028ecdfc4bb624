package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft    = "draft"
	StatusApproved = "approved"
	StatusPaid     = "paid"
)

const (
	BatchPending    = "pending"
	BatchProcessing = "processing"
	BatchCompleted  = "completed"
	BatchFailed     = "failed"
)

// Payroll is one month of pay for one funding allocation. An employee split
// across several grants gets one row per allocation. Money is satang.
type Payroll struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmploymentID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	EmployeeID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Employee            *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	FundingAllocationID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_payrolls_allocation_period,where:deleted_at IS NULL"`
	PayPeriodDate       time.Time        `gorm:"type:date;not null;index;uniqueIndex:uq_payrolls_allocation_period"`
	BatchID             *uuid.UUID       `gorm:"type:uuid;index"`
	AllocationType      string           `gorm:"size:20;not null"`
	FTE                 int              `gorm:"column:fte;not null"`
	SalaryType          string           `gorm:"size:30;not null"`

	GrossSalary           int64 `gorm:"not null;default:0"`
	GrossSalaryByFTE      int64 `gorm:"column:gross_salary_by_fte;not null;default:0"`
	CompensationRefund    int64 `gorm:"not null;default:0"`
	ThirteenthMonthSalary int64 `gorm:"column:thirteen_month_salary;not null;default:0"`
	PVD                   int64 `gorm:"column:pvd;not null;default:0"`
	SavingFund            int64 `gorm:"not null;default:0"`
	EmployeeSSF           int64 `gorm:"column:employee_ssf;not null;default:0"`
	EmployerSSF           int64 `gorm:"column:employer_ssf;not null;default:0"`
	EmployeeHealthWelfare int64 `gorm:"not null;default:0"`
	EmployerHealthWelfare int64 `gorm:"not null;default:0"`
	Tax                   int64 `gorm:"not null;default:0"`
	TotalIncome           int64 `gorm:"not null;default:0"`
	TotalDeduction        int64 `gorm:"not null;default:0"`
	NetSalary             int64 `gorm:"not null;default:0"`
	EmployerContribution  int64 `gorm:"not null;default:0"`

	Status     string     `gorm:"size:20;not null;default:draft;index"`
	Notes      string     `gorm:"type:text"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

// Apply copies computed figures onto the row.
func (p *Payroll) Apply(f Figures) {
	p.GrossSalary = f.GrossSalary
	p.GrossSalaryByFTE = f.GrossSalaryByFTE
	p.CompensationRefund = f.CompensationRefund
	p.ThirteenthMonthSalary = f.ThirteenthMonthSalary
	p.PVD = f.PVD
	p.SavingFund = f.SavingFund
	p.EmployeeSSF = f.EmployeeSSF
	p.EmployerSSF = f.EmployerSSF
	p.EmployeeHealthWelfare = f.EmployeeHealthWelfare
	p.EmployerHealthWelfare = f.EmployerHealthWelfare
	p.Tax = f.Tax
	p.TotalIncome = f.TotalIncome
	p.TotalDeduction = f.TotalDeduction
	p.NetSalary = f.NetSalary
	p.EmployerContribution = f.EmployerContribution
}

type PayrollEmployee struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID           string
	FirstNameEN       string `gorm:"column:first_name_en"`
	LastNameEN        string `gorm:"column:last_name_en"`
	Organization      string
	BankName          string
	BankAccountNumber string
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

func (e PayrollEmployee) FullName() string {
	return strings.TrimSpace(e.FirstNameEN + " " + e.LastNameEN)
}

type BatchError struct {
	EmploymentID string `json:"employment_id"`
	StaffID      string `json:"staff_id"`
	Message      string `json:"message"`
}

// PayrollBatch tracks one bulk run across many employments.
type PayrollBatch struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	PayPeriodDate time.Time    `gorm:"type:date;not null;index"`
	Organization  string       `gorm:"size:50"`
	DepartmentID  *uuid.UUID   `gorm:"type:uuid"`
	Status        string       `gorm:"size:20;not null;default:pending"`
	Total         int          `gorm:"not null;default:0"`
	Processed     int          `gorm:"not null;default:0"`
	Succeeded     int          `gorm:"not null;default:0"`
	Failed        int          `gorm:"not null;default:0"`
	Errors        []BatchError `gorm:"type:jsonb;serializer:json"`
	RequestedBy   *uuid.UUID   `gorm:"type:uuid"`
	StartedAt     *time.Time
	FinishedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PayrollBatch) TableName() string {
	return "payroll_batches"
}
