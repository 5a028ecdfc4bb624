package employment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeFullTime = "Full-time"
	TypePartTime = "Part-time"
	TypeContract = "Contract"

	StatusActive   = "active"
	StatusInactive = "inactive"

	ProbationOngoing  = "ongoing"
	ProbationPassed   = "passed"
	ProbationFailed   = "failed"
	ProbationExtended = "extended"
)

type Employment struct {
	ID                  uuid.UUID             `gorm:"type:uuid;primaryKey"`
	EmployeeID          uuid.UUID             `gorm:"type:uuid;not null;index;uniqueIndex:uq_employments_active_employee,where:status = 'active' AND deleted_at IS NULL"`
	Employee            *EmploymentEmployee   `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
	DepartmentID        uuid.UUID             `gorm:"type:uuid;not null;index"`
	Department          *EmploymentDepartment `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:RESTRICT"`
	PositionID          uuid.UUID             `gorm:"type:uuid;not null;index"`
	Position            *EmploymentPosition   `gorm:"foreignKey:PositionID;references:ID;constraint:OnDelete:RESTRICT"`
	EmploymentType      string                `gorm:"size:20;not null"`
	PayMethod           string                `gorm:"size:50"`
	WorkLocation        string                `gorm:"size:255"`
	StartDate           time.Time             `gorm:"type:date;not null"`
	EndDate             *time.Time            `gorm:"type:date"`
	PassProbationDate   *time.Time            `gorm:"type:date;index"`
	ProbationSalary     *int64
	PassProbationSalary int64                 `gorm:"not null"`
	ProbationStatus     string                `gorm:"size:20;not null;default:ongoing;index"`
	HealthWelfare       bool                  `gorm:"not null;default:false"`
	PVD                 bool                  `gorm:"column:pvd;not null;default:false"`
	SavingFund          bool                  `gorm:"not null;default:false"`
	Status              string                `gorm:"size:20;not null;default:active;uniqueIndex:uq_employments_active_employee"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt        `gorm:"index"`
}

func (Employment) TableName() string {
	return "employments"
}

// EmploymentEmployee, EmploymentDepartment and EmploymentPosition are
// read-only projections used for preloading display names.
type EmploymentEmployee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID      string
	FirstNameEN  string    `gorm:"column:first_name_en"`
	LastNameEN   string    `gorm:"column:last_name_en"`
	Organization string
}

func (EmploymentEmployee) TableName() string {
	return "employees"
}

type EmploymentDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (EmploymentDepartment) TableName() string {
	return "departments"
}

type EmploymentPosition struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string
}

func (EmploymentPosition) TableName() string {
	return "positions"
}

const (
	RecordInitial   = "initial"
	RecordExtension = "extension"
	RecordPassed    = "passed"
	RecordFailed    = "failed"
)

// ProbationRecord is one entry of an employment's probation history. Only
// the latest record is active.
type ProbationRecord struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmploymentID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType          string     `gorm:"size:20;not null"`
	EventDate          time.Time  `gorm:"type:date;not null"`
	ProbationStartDate time.Time  `gorm:"type:date;not null"`
	ProbationEndDate   *time.Time `gorm:"type:date"`
	PreviousEndDate    *time.Time `gorm:"type:date"`
	ExtensionNumber    int        `gorm:"not null;default:0"`
	Reason             string     `gorm:"type:text"`
	Notes              string     `gorm:"type:text"`
	ActorID            *uuid.UUID `gorm:"type:uuid"`
	IsActive           bool       `gorm:"not null;default:true"`
	CreatedAt          time.Time
}

func (ProbationRecord) TableName() string {
	return "probation_records"
}
