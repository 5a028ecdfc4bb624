package position

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Position struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Title        string              `gorm:"size:255;not null;uniqueIndex:uq_positions_department_title,where:deleted_at IS NULL"`
	DepartmentID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_positions_department_title,where:deleted_at IS NULL"`
	Department   *PositionDepartment `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:RESTRICT"`
	ReportsToID  *uuid.UUID          `gorm:"type:uuid;index"`
	ReportsTo    *Position           `gorm:"foreignKey:ReportsToID;references:ID;constraint:OnDelete:SET NULL"`
	Level        int                 `gorm:"not null;default:1"`
	IsManager    bool                `gorm:"not null;default:false"`
	IsActive     bool                `gorm:"not null;default:true"`
	CreatedAt    time.Time           `gorm:"autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt      `gorm:"index"`
}

type PositionDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (PositionDepartment) TableName() string {
	return "departments"
}
