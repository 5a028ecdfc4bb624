package employee

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"staff_id":      "staff_id",
	"first_name_en": "first_name_en",
	"last_name_en":  "last_name_en",
	"organization":  "organization",
	"date_of_birth": "date_of_birth",
	"created_at":    "created_at",
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, req ListEmployeesRequest) ([]Employee, int64, error)
	FindAllUnpaged(ctx context.Context, req ListEmployeesRequest) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDs(ctx context.Context, ids []string) ([]Employee, error)
	ExistsByStaffID(ctx context.Context, staffID, excludeID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(empl).Error
}

func (r *repository) filtered(ctx context.Context, req ListEmployeesRequest) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&Employee{}).
		Scopes(
			query.Eq("organization", req.Organization),
			query.Eq("status", req.Status),
			query.Eq("gender", req.Gender),
			query.Search(req.Search,
				"staff_id", "first_name_en", "last_name_en",
				"first_name_th", "last_name_th", "identification_number",
			),
		)
}

func (r *repository) FindAll(ctx context.Context, req ListEmployeesRequest) ([]Employee, int64, error) {
	var (
		emps  []Employee
		total int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Scopes(query.Sort(req.Params, sortColumns, "staff_id"), query.Paginate(req.Params)).
		Find(&emps).Error
	return emps, total, err
}

func (r *repository) FindAllUnpaged(ctx context.Context, req ListEmployeesRequest) ([]Employee, error) {
	var emps []Employee
	err := r.filtered(ctx, req).
		Scopes(query.Sort(req.Params, sortColumns, "staff_id")).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := dbtx.Conn(ctx, r.db, r.tx).
		Select("id", "staff_id", "first_name_en", "last_name_en", "organization").
		Order("staff_id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Employee, error) {
	var emps []Employee
	if len(ids) == 0 {
		return emps, nil
	}
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("id IN ?", ids).
		Find(&emps).Error
	return emps, err
}

func (r *repository) ExistsByStaffID(ctx context.Context, staffID, excludeID string) (bool, error) {
	var count int64
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Employee{}).
		Where("staff_id = ?", staffID)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		Delete(&Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id IN ?", ids).
		Delete(&Employee{})
	return res.RowsAffected, res.Error
}
