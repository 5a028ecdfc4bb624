package grant

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Grant struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code         string     `gorm:"size:50;not null;uniqueIndex:uq_grants_code,where:deleted_at IS NULL"`
	Name         string     `gorm:"size:255;not null"`
	Organization string     `gorm:"size:50;index"`
	Description  string     `gorm:"type:text"`
	StartDate    *time.Time `gorm:"type:date"`
	EndDate      *time.Time `gorm:"type:date"`
	// IsOrgFunded marks the hub grant that absorbs org-funded allocations.
	IsOrgFunded bool           `gorm:"not null;default:false"`
	Items       []GrantItem    `gorm:"foreignKey:GrantID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Grant) TableName() string {
	return "grants"
}

type GrantItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GrantID        uuid.UUID      `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	PositionTitle  string         `gorm:"size:255;not null"`
	GrantSalary    int64          `gorm:"not null;default:0"`
	GrantBenefit   int64          `gorm:"not null;default:0"`
	LevelOfEffort  int            `gorm:"not null;default:10000"`
	PositionNumber int            `gorm:"not null;default:1"`
	BudgetLineCode string         `gorm:"size:100;uniqueIndex:uq_grant_items_budget_line,where:deleted_at IS NULL AND budget_line_code <> ''"`
	Slots          []PositionSlot `gorm:"foreignKey:GrantItemID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (GrantItem) TableName() string {
	return "grant_items"
}

type PositionSlot struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	GrantItemID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_position_slots_item_number"`
	SlotNumber     int       `gorm:"not null;uniqueIndex:uq_position_slots_item_number"`
	BudgetLineCode string    `gorm:"size:100"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PositionSlot) TableName() string {
	return "position_slots"
}

// Occupant is the active allocation holding a slot.
type Occupant struct {
	SlotID       string
	AllocationID string
	EmployeeID   string
	StaffID      string
	EmployeeName string
	FTE          int
}
