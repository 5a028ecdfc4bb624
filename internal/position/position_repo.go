package position

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"title":      "positions.title",
	"level":      "positions.level",
	"created_at": "positions.created_at",
}

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, pos *Position) error
	FindAll(ctx context.Context, req ListPositionsRequest) ([]Position, int64, error)
	FindActive(ctx context.Context, departmentID string) ([]Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
	Update(ctx context.Context, pos *Position) error
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

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit("Department", "ReportsTo").Create(pos).Error
}

func (r *repository) filtered(ctx context.Context, req ListPositionsRequest) *gorm.DB {
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Position{}).
		Scopes(
			query.Eq("positions.department_id", req.DepartmentID),
			query.Search(req.Search, "positions.title"),
		)
	if req.IsManager != nil {
		q = q.Where("positions.is_manager = ?", *req.IsManager)
	}
	if req.IsActive != nil {
		q = q.Where("positions.is_active = ?", *req.IsActive)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, req ListPositionsRequest) ([]Position, int64, error) {
	var (
		positions []Position
		total     int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Preload("Department").
		Preload("ReportsTo").
		Scopes(query.Sort(req.Params, sortColumns, "positions.title"), query.Paginate(req.Params)).
		Find(&positions).Error
	return positions, total, err
}

func (r *repository) FindActive(ctx context.Context, departmentID string) ([]Position, error) {
	var positions []Position
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(query.Eq("department_id", departmentID)).
		Where("is_active = ?", true).
		Order("level ASC, title ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var pos Position
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Department").
		Preload("ReportsTo").
		Where("id = ?", id).
		First(&pos).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) Update(ctx context.Context, pos *Position) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit("Department", "ReportsTo").Save(pos).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		Delete(&Position{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
