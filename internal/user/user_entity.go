package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  *uuid.UUID     `gorm:"column:employee_id;type:uuid;uniqueIndex:uq_users_employee,where:deleted_at IS NULL"`
	Name        string         `gorm:"column:name;type:varchar(255);not null"`
	Email       string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email,where:deleted_at IS NULL"`
	Password    string         `gorm:"column:password;type:text;not null"`
	IsActive    bool           `gorm:"column:is_active;default:true"`
	LastLoginAt *time.Time     `gorm:"column:last_login_at"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
