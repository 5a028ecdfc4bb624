package personnelaction

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	"effective_date": "personnel_actions.effective_date",
	"action_type":    "personnel_actions.action_type",
	"status":         "personnel_actions.status",
	"created_at":     "personnel_actions.created_at",
}

//go:generate mockgen -source=personnel_action_repo.go -destination=mock/personnel_action_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, req ListPersonnelActionsRequest) ([]PersonnelAction, int64, error)
	FindByID(ctx context.Context, id string) (*PersonnelAction, error)
	LockByID(ctx context.Context, id string) (*PersonnelAction, error)
	Create(ctx context.Context, a *PersonnelAction) error
	Update(ctx context.Context, a *PersonnelAction) error
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
	return db.Preload("Employee").Preload("NewDepartment").Preload("NewPosition")
}

func (r *repository) filtered(ctx context.Context, req ListPersonnelActionsRequest) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&PersonnelAction{}).
		Joins("JOIN employees e ON e.id = personnel_actions.employee_id").
		Scopes(
			query.Eq("personnel_actions.employee_id", req.EmployeeID),
			query.Eq("personnel_actions.employment_id", req.EmploymentID),
			query.Eq("personnel_actions.action_type", req.ActionType),
			query.Eq("personnel_actions.status", req.Status),
			query.Search(req.Search, "e.staff_id", "e.first_name_en", "e.last_name_en", "personnel_actions.reason"),
		)
}

func (r *repository) FindAll(ctx context.Context, req ListPersonnelActionsRequest) ([]PersonnelAction, int64, error) {
	var (
		actions []PersonnelAction
		total   int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Scopes(r.withRefs, query.Sort(req.Params, sortColumns, "personnel_actions.created_at"), query.Paginate(req.Params)).
		Find(&actions).Error
	return actions, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PersonnelAction, error) {
	var a PersonnelAction
	if err := dbtx.Conn(ctx, r.db, r.tx).Scopes(r.withRefs).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) LockByID(ctx context.Context, id string) (*PersonnelAction, error) {
	var a PersonnelAction
	err := dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Create(ctx context.Context, a *PersonnelAction) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *PersonnelAction) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).Delete(&PersonnelAction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
