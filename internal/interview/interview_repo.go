package interview

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"interview_date": "interview_date",
	"candidate_name": "candidate_name",
	"total_score":    "total_score",
	"average_score":  "average_score",
	"created_at":     "created_at",
}

//go:generate mockgen -source=interview_repo.go -destination=mock/interview_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, req ListInterviewsRequest, from, to *time.Time) ([]Interview, int64, error)
	FindByCandidate(ctx context.Context, name string) ([]Interview, error)
	FindByID(ctx context.Context, id string) (*Interview, error)
	Create(ctx context.Context, i *Interview) error
	Update(ctx context.Context, i *Interview) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) filtered(ctx context.Context, req ListInterviewsRequest, from, to *time.Time) *gorm.DB {
	db := r.db.WithContext(ctx).
		Model(&Interview{}).
		Scopes(
			query.Eq("interview_status", req.InterviewStatus),
			query.Eq("hired_status", req.HiredStatus),
			query.Eq("interview_mode", req.InterviewMode),
			query.Eq("job_position", req.JobPosition),
			query.Search(req.Search, "candidate_name", "job_position", "interviewer_names"),
		)
	if from != nil {
		db = db.Where("interview_date >= ?", *from)
	}
	if to != nil {
		db = db.Where("interview_date <= ?", *to)
	}
	return db
}

func (r *repository) FindAll(ctx context.Context, req ListInterviewsRequest, from, to *time.Time) ([]Interview, int64, error) {
	var (
		interviews []Interview
		total      int64
	)
	if err := r.filtered(ctx, req, from, to).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req, from, to).
		Scopes(query.Sort(req.Params, sortColumns, "interview_date"), query.Paginate(req.Params)).
		Find(&interviews).Error
	return interviews, total, err
}

// FindByCandidate matches the candidate name case-insensitively, newest first.
func (r *repository) FindByCandidate(ctx context.Context, name string) ([]Interview, error) {
	var interviews []Interview
	err := r.db.WithContext(ctx).
		Where("LOWER(candidate_name) = ?", strings.ToLower(name)).
		Order("interview_date DESC, start_time DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Interview, error) {
	var i Interview
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) Create(ctx context.Context, i *Interview) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *repository) Update(ctx context.Context, i *Interview) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Interview{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
