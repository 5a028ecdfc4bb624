package importexport

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=import_job_repo.go -destination=mock/import_job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, job *ImportJob) error
	FindByID(ctx context.Context, id string) (*ImportJob, error)
	Update(ctx context.Context, job *ImportJob) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, job *ImportJob) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(job).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ImportJob, error) {
	var job ImportJob
	if err := dbtx.Conn(ctx, r.db, r.tx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) Update(ctx context.Context, job *ImportJob) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(job).Error
}
