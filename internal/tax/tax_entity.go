package tax

import (
	"time"

	"github.com/google/uuid"
)

type TaxBracket struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year         int       `gorm:"not null;uniqueIndex:uq_tax_brackets_year_order"`
	BracketOrder int       `gorm:"not null;uniqueIndex:uq_tax_brackets_year_order"`
	MinIncome    int64     `gorm:"not null"`
	// MaxIncome nil means open-ended.
	MaxIncome   *int64
	Rate        int    `gorm:"not null"`
	Description string `gorm:"size:255"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TaxBracket) TableName() string {
	return "tax_brackets"
}

type TaxSetting struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year        int       `gorm:"not null;uniqueIndex:uq_tax_settings_year_key"`
	Key         string    `gorm:"column:setting_key;size:50;not null;uniqueIndex:uq_tax_settings_year_key"`
	Value       int64     `gorm:"column:setting_value;not null"`
	Description string    `gorm:"size:255"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TaxSetting) TableName() string {
	return "tax_settings"
}
