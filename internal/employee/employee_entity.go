package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusExpats     = "Expats"
	StatusLocalID    = "Local ID"
	StatusLocalNonID = "Local non ID"
)

type Employee struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	StaffID               string         `gorm:"size:50;not null;uniqueIndex:uq_employees_staff_id,where:deleted_at IS NULL"`
	Organization          string         `gorm:"size:50;not null;index"`
	Initial               string         `gorm:"size:20"`
	FirstNameEN           string         `gorm:"column:first_name_en;size:255;not null"`
	LastNameEN            string         `gorm:"column:last_name_en;size:255"`
	FirstNameTH           string         `gorm:"column:first_name_th;size:255"`
	LastNameTH            string         `gorm:"column:last_name_th;size:255"`
	Gender                string         `gorm:"size:20;not null"`
	DateOfBirth           *time.Time     `gorm:"type:date"`
	Status                string         `gorm:"size:30;not null;index"`
	Nationality           string         `gorm:"size:100"`
	Religion              string         `gorm:"size:100"`
	IdentificationType    string         `gorm:"size:50"`
	IdentificationNumber  string         `gorm:"size:100;index"`
	MaritalStatus         string         `gorm:"size:30"`
	HasSpouse             bool           `gorm:"not null;default:false"`
	SpouseHasIncome       bool           `gorm:"not null;default:false"`
	NumberOfChildren      int            `gorm:"not null;default:0"`
	MobilePhone           string         `gorm:"size:50"`
	Email                 string         `gorm:"size:255"`
	CurrentAddress        string         `gorm:"type:text"`
	PermanentAddress      string         `gorm:"type:text"`
	BankName              string         `gorm:"size:255"`
	BankBranch            string         `gorm:"size:255"`
	BankAccountName       string         `gorm:"size:255"`
	BankAccountNumber     string         `gorm:"size:100"`
	EligibleForPVD        bool           `gorm:"column:eligible_for_pvd;not null;default:false"`
	EligibleForSavingFund bool           `gorm:"not null;default:false"`
	CreatedAt             time.Time      `gorm:"autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime"`
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullNameEN() string {
	return strings.TrimSpace(e.FirstNameEN + " " + e.LastNameEN)
}

// ClaimsSpouseAllowance reports whether the spouse allowance applies for tax.
func (e Employee) ClaimsSpouseAllowance() bool {
	return e.HasSpouse && !e.SpouseHasIncome
}
