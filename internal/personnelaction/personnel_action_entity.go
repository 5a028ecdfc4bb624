package personnelaction

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypePromotion      = "promotion"
	TypeTransfer       = "transfer"
	TypeSalaryChange   = "salary_change"
	TypePositionChange = "position_change"

	StatusPending  = "pending"
	StatusApplied  = "applied"
	StatusRejected = "rejected"

	ApproverDeptHead   = "dept_head"
	ApproverCOO        = "coo"
	ApproverHR         = "hr"
	ApproverAccountant = "accountant"
)

// Approvers lists every sign-off an action needs before it is applied.
var Approvers = []string{ApproverDeptHead, ApproverCOO, ApproverHR, ApproverAccountant}

type PersonnelAction struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey"`
	EmploymentID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	EmployeeID           uuid.UUID         `gorm:"type:uuid;not null;index"`
	Employee             *ActionEmployee   `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
	ActionType           string            `gorm:"size:30;not null;index"`
	CurrentDepartmentID  uuid.UUID         `gorm:"type:uuid;not null"`
	CurrentPositionID    uuid.UUID         `gorm:"type:uuid;not null"`
	CurrentSalary        int64             `gorm:"not null"`
	CurrentWorkLocation  string            `gorm:"size:255"`
	NewDepartmentID      *uuid.UUID        `gorm:"type:uuid"`
	NewDepartment        *ActionDepartment `gorm:"foreignKey:NewDepartmentID;references:ID;constraint:OnDelete:RESTRICT"`
	NewPositionID        *uuid.UUID        `gorm:"type:uuid"`
	NewPosition          *ActionPosition   `gorm:"foreignKey:NewPositionID;references:ID;constraint:OnDelete:RESTRICT"`
	NewSalary            *int64
	NewWorkLocation      *string           `gorm:"size:255"`
	EffectiveDate        time.Time         `gorm:"type:date;not null"`
	Reason               string            `gorm:"type:text"`
	DeptHeadApproved     bool              `gorm:"not null;default:false"`
	DeptHeadApprovedAt   *time.Time
	COOApproved          bool              `gorm:"column:coo_approved;not null;default:false"`
	COOApprovedAt        *time.Time        `gorm:"column:coo_approved_at"`
	HRApproved           bool              `gorm:"column:hr_approved;not null;default:false"`
	HRApprovedAt         *time.Time        `gorm:"column:hr_approved_at"`
	AccountantApproved   bool              `gorm:"not null;default:false"`
	AccountantApprovedAt *time.Time
	RejectedBy           string            `gorm:"size:20"`
	Status               string            `gorm:"size:20;not null;default:pending;index"`
	AppliedAt            *time.Time
	CreatedBy            *uuid.UUID        `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt    `gorm:"index"`
}

func (PersonnelAction) TableName() string {
	return "personnel_actions"
}

// approve records one sign-off. It reports false when approver had already
// signed.
func (a *PersonnelAction) approve(approver string, at time.Time) bool {
	var flag *bool
	var stamp **time.Time
	switch approver {
	case ApproverDeptHead:
		flag, stamp = &a.DeptHeadApproved, &a.DeptHeadApprovedAt
	case ApproverCOO:
		flag, stamp = &a.COOApproved, &a.COOApprovedAt
	case ApproverHR:
		flag, stamp = &a.HRApproved, &a.HRApprovedAt
	case ApproverAccountant:
		flag, stamp = &a.AccountantApproved, &a.AccountantApprovedAt
	default:
		return false
	}
	if *flag {
		return false
	}
	*flag = true
	*stamp = &at
	return true
}

func (a PersonnelAction) fullyApproved() bool {
	return a.DeptHeadApproved && a.COOApproved && a.HRApproved && a.AccountantApproved
}

type ActionEmployee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID     string
	FirstNameEN string    `gorm:"column:first_name_en"`
	LastNameEN  string    `gorm:"column:last_name_en"`
}

func (ActionEmployee) TableName() string {
	return "employees"
}

func (e ActionEmployee) FullName() string {
	return strings.TrimSpace(e.FirstNameEN + " " + e.LastNameEN)
}

type ActionDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (ActionDepartment) TableName() string {
	return "departments"
}

type ActionPosition struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string
}

func (ActionPosition) TableName() string {
	return "positions"
}
