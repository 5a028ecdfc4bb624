package importexport

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeEmployees = "employees"

	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"

	// maxStoredRowErrors caps the errors kept on a job row.
	maxStoredRowErrors = 500
)

type RowError struct {
	Row     int    `json:"row"`
	StaffID string `json:"staff_id,omitempty"`
	Message string `json:"message"`
}

type ImportJob struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type          string     `gorm:"size:30;not null;index"`
	FileName      string     `gorm:"size:255;not null"`
	FilePath      string     `gorm:"size:500;not null"`
	Status        string     `gorm:"size:20;not null;default:queued;index"`
	TotalRows     int        `gorm:"not null;default:0"`
	ProcessedRows int        `gorm:"not null;default:0"`
	CreatedRows   int        `gorm:"not null;default:0"`
	SkippedRows   int        `gorm:"not null;default:0"`
	FailedRows    int        `gorm:"not null;default:0"`
	Errors        []RowError `gorm:"type:jsonb;serializer:json"`
	FailureReason string     `gorm:"type:text"`
	RequestedBy   *uuid.UUID `gorm:"type:uuid;index"`
	StartedAt     *time.Time
	FinishedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ImportJob) TableName() string {
	return "import_jobs"
}

func (j *ImportJob) addError(e RowError) {
	j.FailedRows++
	if len(j.Errors) < maxStoredRowErrors {
		j.Errors = append(j.Errors, e)
	}
}

func (j ImportJob) finished() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
