package travel

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	"start_date":  "travel_requests.start_date",
	"destination": "travel_requests.destination",
	"status":      "travel_requests.status",
	"created_at":  "travel_requests.created_at",
}

//go:generate mockgen -source=travel_repo.go -destination=mock/travel_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, req ListTravelRequestsRequest) ([]TravelRequest, int64, error)
	FindByID(ctx context.Context, id string) (*TravelRequest, error)
	LockByID(ctx context.Context, id string) (*TravelRequest, error)
	Create(ctx context.Context, t *TravelRequest) error
	Update(ctx context.Context, t *TravelRequest) error
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
	return &repository{db: r.db, tx: tx}
}

func (r *repository) withRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Employee").
		Preload("Department").
		Preload("Position").
		Preload("Grant")
}

func (r *repository) filtered(ctx context.Context, req ListTravelRequestsRequest) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&TravelRequest{}).
		Joins("JOIN employees e ON e.id = travel_requests.employee_id").
		Scopes(
			query.Eq("travel_requests.employee_id", req.EmployeeID),
			query.Eq("travel_requests.department_id", req.DepartmentID),
			query.Eq("travel_requests.grant_id", req.GrantID),
			query.Eq("travel_requests.status", req.Status),
			query.Search(req.Search, "travel_requests.destination", "travel_requests.purpose", "e.staff_id", "e.first_name_en", "e.last_name_en"),
		)
}

func (r *repository) FindAll(ctx context.Context, req ListTravelRequestsRequest) ([]TravelRequest, int64, error) {
	var (
		requests []TravelRequest
		total    int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Scopes(r.withRefs, query.Sort(req.Params, sortColumns, "travel_requests.start_date"), query.Paginate(req.Params)).
		Find(&requests).Error
	return requests, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*TravelRequest, error) {
	var t TravelRequest
	if err := dbtx.Conn(ctx, r.db, r.tx).Scopes(r.withRefs).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) LockByID(ctx context.Context, id string) (*TravelRequest, error) {
	var t TravelRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *TravelRequest) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *TravelRequest) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).Delete(&TravelRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
