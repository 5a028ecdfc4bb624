package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeProbationCompleted  = "probation_completed"
	TypePayrollBulkFinished = "payroll_bulk_finished"
	TypeImportFinished      = "import_finished"
	TypeLeaveRequested      = "leave_requested"
	TypeLeaveDecided        = "leave_decided"
	TypeTravelDecided       = "travel_decided"
	TypePersonnelAction     = "personnel_action"
)

type Notification struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	Type      string          `gorm:"column:type;type:varchar(100);not null"`
	Title     string          `gorm:"column:title;type:varchar(255);not null"`
	Message   string          `gorm:"column:message;type:text;not null"`
	Data      json.RawMessage `gorm:"column:data;type:jsonb"`
	ReadAt    *time.Time      `gorm:"column:read_at;index:idx_notifications_user_read,priority:2"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
