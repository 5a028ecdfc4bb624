package interview

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ModeInPerson = "in_person"
	ModeOnline   = "online"
	ModePhone    = "phone"

	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"

	HiredPending  = "pending"
	HiredHired    = "hired"
	HiredRejected = "not_hired"
	HiredOnHold   = "on_hold"

	MaxScore = 10
)

type Interview struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CandidateName       string         `gorm:"size:255;not null;index"`
	Phone               string         `gorm:"size:30"`
	JobPosition         string         `gorm:"size:255;not null"`
	InterviewerNames    string         `gorm:"type:text"`
	InterviewDate       time.Time      `gorm:"type:date;not null;index"`
	StartTime           string         `gorm:"size:5"`
	EndTime             string         `gorm:"size:5"`
	InterviewMode       string         `gorm:"size:20;not null"`
	InterviewStatus     string         `gorm:"size:20;not null;default:scheduled;index"`
	TechnicalScore      *int
	CommunicationScore  *int
	ProblemSolvingScore *int
	CulturalFitScore    *int
	TotalScore          int            `gorm:"not null;default:0"`
	AverageScore        float64        `gorm:"type:numeric(5,2);not null;default:0"`
	HiredStatus         string         `gorm:"size:20;not null;default:pending"`
	ReferenceInfo       string         `gorm:"type:text"`
	Notes               string         `gorm:"type:text"`
	CreatedBy           *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (Interview) TableName() string {
	return "interviews"
}

// score fills TotalScore and AverageScore from the scores that were given.
// The average is rounded to two decimals.
func (i *Interview) score() {
	total, n := 0, 0
	for _, s := range []*int{i.TechnicalScore, i.CommunicationScore, i.ProblemSolvingScore, i.CulturalFitScore} {
		if s == nil {
			continue
		}
		total += *s
		n++
	}
	i.TotalScore = total
	i.AverageScore = 0
	if n > 0 {
		// integer arithmetic on hundredths, half up
		hundredths := (total*1000/n + 5) / 10
		i.AverageScore = float64(hundredths) / 100
	}
}
