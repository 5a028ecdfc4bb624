package leave

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"

	ApproverSupervisor = "supervisor"
	ApproverHR         = "hr"
)

type LeaveType struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"size:100;not null;uniqueIndex:uq_leave_types_name,where:deleted_at IS NULL"`
	DefaultDays        int            `gorm:"not null;default:0"`
	RequiresAttachment bool           `gorm:"not null;default:false"`
	Description        string         `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// LeaveBalance tracks the days of one leave type an employee may take in a
// calendar year. RemainingDays is kept equal to TotalDays - UsedDays.
type LeaveBalance struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_employee_type_year"`
	LeaveTypeID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_employee_type_year"`
	LeaveType     *LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID;constraint:OnDelete:RESTRICT"`
	Year          int        `gorm:"not null;uniqueIndex:uq_leave_balances_employee_type_year"`
	TotalDays     int        `gorm:"not null;default:0"`
	UsedDays      int        `gorm:"not null;default:0"`
	RemainingDays int        `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

func (b *LeaveBalance) consume(days int) bool {
	if days > b.RemainingDays {
		return false
	}
	b.UsedDays += days
	b.RemainingDays = b.TotalDays - b.UsedDays
	return true
}

func (b *LeaveBalance) restore(days int) {
	b.UsedDays -= days
	if b.UsedDays < 0 {
		b.UsedDays = 0
	}
	b.RemainingDays = b.TotalDays - b.UsedDays
}

type LeaveRequest struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	Employee             *LeaveEmployee `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
	LeaveTypeID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	LeaveType            *LeaveType     `gorm:"foreignKey:LeaveTypeID;references:ID;constraint:OnDelete:RESTRICT"`
	StartDate            time.Time      `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate              time.Time      `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays            int            `gorm:"not null"`
	Reason               string         `gorm:"type:text"`
	Attachment           string         `gorm:"size:500"`
	Status               string         `gorm:"size:20;not null;default:pending;index"`
	SupervisorApproved   bool           `gorm:"not null;default:false"`
	SupervisorApprovedAt *time.Time
	HRApproved           bool           `gorm:"column:hr_approved;not null;default:false"`
	HRApprovedAt         *time.Time     `gorm:"column:hr_approved_at"`
	DeclineReason        string         `gorm:"type:text"`
	CreatedBy            *uuid.UUID     `gorm:"type:uuid"`
	ApprovedBy           *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveEmployee is a read-only projection of employees for display.
type LeaveEmployee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID     string
	FirstNameEN string    `gorm:"column:first_name_en"`
	LastNameEN  string    `gorm:"column:last_name_en"`
}

func (LeaveEmployee) TableName() string {
	return "employees"
}

func (e LeaveEmployee) FullName() string {
	return strings.TrimSpace(e.FirstNameEN + " " + e.LastNameEN)
}
