package rbac

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_role_name"`
	Description string    `gorm:"type:varchar(255)"`
	IsSystem    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permission is named "<resource>.<action>", e.g. "payroll.approve".
type Permission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_permission_name"`
	Resource string    `gorm:"type:varchar(100);not null"`
	Action   string    `gorm:"type:varchar(50);not null"`
	Label    string    `gorm:"type:varchar(150)"`
	Category string    `gorm:"type:varchar(100)"`
}

type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

type UserRole struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// UserRoleRow and RolePermissionRow are the flattened rows loaded into casbin.
type UserRoleRow struct {
	UserID   string
	RoleName string
}

type RolePermissionRow struct {
	RoleName string
	Resource string
	Action   string
}
