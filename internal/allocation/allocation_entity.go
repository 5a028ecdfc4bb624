package allocation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeGrant     = "grant"
	TypeOrgFunded = "org_funded"

	StatusActive     = "active"
	StatusHistorical = "historical"
	StatusInactive   = "inactive"

	// FullFTE is 100% in basis points.
	FullFTE = 10000
)

type FundingAllocation struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmploymentID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	EmployeeID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	AllocationType  string           `gorm:"size:20;not null"`
	PositionSlotID  *uuid.UUID       `gorm:"type:uuid;uniqueIndex:uq_funding_allocations_active_slot,where:status = 'active' AND deleted_at IS NULL"`
	PositionSlot    *AllocationSlot  `gorm:"foreignKey:PositionSlotID;references:ID"`
	GrantID         *uuid.UUID       `gorm:"type:uuid;index"`
	Grant           *AllocationGrant `gorm:"foreignKey:GrantID;references:ID"`
	FTE             int              `gorm:"column:fte;not null"`
	AllocatedAmount int64            `gorm:"not null"`
	SalaryType      string           `gorm:"size:30;not null"`
	Status          string           `gorm:"size:20;not null;default:active;index"`
	StartDate       time.Time        `gorm:"type:date;not null"`
	EndDate         *time.Time       `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt   `gorm:"index"`
}

func (FundingAllocation) TableName() string {
	return "funding_allocations"
}

type AllocationSlot struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GrantItemID    uuid.UUID       `gorm:"type:uuid"`
	GrantItem      *AllocationItem `gorm:"foreignKey:GrantItemID;references:ID"`
	SlotNumber     int
	BudgetLineCode string
}

func (AllocationSlot) TableName() string {
	return "position_slots"
}

type AllocationItem struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	GrantID       uuid.UUID        `gorm:"type:uuid"`
	Grant         *AllocationGrant `gorm:"foreignKey:GrantID;references:ID"`
	PositionTitle string
}

func (AllocationItem) TableName() string {
	return "grant_items"
}

type AllocationGrant struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string
	Name string
}

func (AllocationGrant) TableName() string {
	return "grants"
}

// GrantRef returns the grant funding this allocation, directly or through
// its slot.
func (a FundingAllocation) GrantRef() *AllocationGrant {
	if a.Grant != nil {
		return a.Grant
	}
	if a.PositionSlot != nil && a.PositionSlot.GrantItem != nil {
		return a.PositionSlot.GrantItem.Grant
	}
	return nil
}
