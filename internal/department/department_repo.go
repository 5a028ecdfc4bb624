package department

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context, req ListDepartmentsRequest) ([]Department, int64, error)
	FindActive(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	CountPositions(ctx context.Context, ids ...string) (map[string]int64, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(dept).Error
}

func (r *repository) filtered(ctx context.Context, req ListDepartmentsRequest) *gorm.DB {
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Department{}).
		Scopes(query.Search(req.Search, "name", "description"))
	if req.IsActive != nil {
		q = q.Where("is_active = ?", *req.IsActive)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, req ListDepartmentsRequest) ([]Department, int64, error) {
	var (
		depts []Department
		total int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Scopes(query.Sort(req.Params, sortColumns, "name"), query.Paginate(req.Params)).
		Find(&depts).Error
	return depts, total, err
}

func (r *repository) FindActive(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) CountPositions(ctx context.Context, ids ...string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		DepartmentID string
		Total        int64
	}
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("positions").
		Select("department_id, COUNT(*) AS total").
		Where("department_id IN ? AND deleted_at IS NULL", ids).
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.DepartmentID] = row.Total
	}
	return counts, nil
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		Delete(&Department{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
