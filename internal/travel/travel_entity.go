package travel

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
	StatusCompleted = "completed"

	TransportationOfficeVehicle = "smru_vehicle"
	TransportationPublic        = "public_transportation"
	TransportationAir           = "air"
	TransportationOther         = "other"

	AccommodationOffice = "smru_arrangement"
	AccommodationSelf   = "self_arrangement"
	AccommodationOther  = "other"
)

type TravelRequest struct {
	ID                     uuid.UUID         `gorm:"type:uuid;primaryKey"`
	EmployeeID             uuid.UUID         `gorm:"type:uuid;not null;index"`
	Employee               *TravelEmployee   `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
	DepartmentID           *uuid.UUID        `gorm:"type:uuid;index"`
	Department             *TravelDepartment `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:SET NULL"`
	PositionID             *uuid.UUID        `gorm:"type:uuid"`
	Position               *TravelPosition   `gorm:"foreignKey:PositionID;references:ID;constraint:OnDelete:SET NULL"`
	Destination            string            `gorm:"size:255;not null"`
	StartDate              time.Time         `gorm:"type:date;not null;index"`
	EndDate                time.Time         `gorm:"type:date;not null"`
	Purpose                string            `gorm:"type:text;not null"`
	GrantID                *uuid.UUID        `gorm:"type:uuid;index"`
	Grant                  *TravelGrant      `gorm:"foreignKey:GrantID;references:ID;constraint:OnDelete:RESTRICT"`
	Transportation         string            `gorm:"size:50;not null"`
	TransportationOther    string            `gorm:"size:255"`
	Accommodation          string            `gorm:"size:50;not null"`
	AccommodationOther     string            `gorm:"size:255"`
	RequestByDate          *time.Time        `gorm:"type:date"`
	SupervisorApproved     bool              `gorm:"not null;default:false"`
	SupervisorApprovedDate *time.Time        `gorm:"type:date"`
	HRAcknowledged         bool              `gorm:"column:hr_acknowledged;not null;default:false"`
	HRAcknowledgementDate  *time.Time        `gorm:"column:hr_acknowledgement_date;type:date"`
	Remarks                string            `gorm:"type:text"`
	Status                 string            `gorm:"size:20;not null;default:pending;index"`
	CreatedBy              *uuid.UUID        `gorm:"type:uuid"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt    `gorm:"index"`
}

func (TravelRequest) TableName() string {
	return "travel_requests"
}

type TravelEmployee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID     string
	FirstNameEN string    `gorm:"column:first_name_en"`
	LastNameEN  string    `gorm:"column:last_name_en"`
}

func (TravelEmployee) TableName() string {
	return "employees"
}

func (e TravelEmployee) FullName() string {
	return strings.TrimSpace(e.FirstNameEN + " " + e.LastNameEN)
}

type TravelDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (TravelDepartment) TableName() string {
	return "departments"
}

type TravelPosition struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string
}

func (TravelPosition) TableName() string {
	return "positions"
}

type TravelGrant struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string
	Name string
}

func (TravelGrant) TableName() string {
	return "grants"
}
