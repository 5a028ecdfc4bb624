package allocation

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	"start_date":       "funding_allocations.start_date",
	"fte":              "funding_allocations.fte",
	"allocated_amount": "funding_allocations.allocated_amount",
	"created_at":       "funding_allocations.created_at",
}

//go:generate mockgen -source=allocation_repo.go -destination=mock/allocation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, req ListAllocationsRequest) ([]FundingAllocation, int64, error)
	FindByEmployment(ctx context.Context, employmentID string, statuses ...string) ([]FundingAllocation, error)
	SlotHeldByOther(ctx context.Context, slotID, employmentID string) (bool, error)
	CreateMany(ctx context.Context, allocs []FundingAllocation) error
	UpdateAmount(ctx context.Context, id string, amount int64, salaryType string) error
	CloseActive(ctx context.Context, employmentID, status string, endDate time.Time) (int64, error)
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
		Preload("PositionSlot.GrantItem.Grant").
		Preload("Grant")
}

func (r *repository) filtered(ctx context.Context, req ListAllocationsRequest) *gorm.DB {
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&FundingAllocation{}).
		Scopes(
			query.Eq("funding_allocations.employment_id", req.EmploymentID),
			query.Eq("funding_allocations.employee_id", req.EmployeeID),
			query.Eq("funding_allocations.allocation_type", req.AllocationType),
			query.Eq("funding_allocations.status", req.Status),
		)
	if req.GrantID != "" {
		q = q.
			Joins("LEFT JOIN position_slots ps ON ps.id = funding_allocations.position_slot_id").
			Joins("LEFT JOIN grant_items gi ON gi.id = ps.grant_item_id").
			Where("(gi.grant_id = ? OR funding_allocations.grant_id = ?)", req.GrantID, req.GrantID)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, req ListAllocationsRequest) ([]FundingAllocation, int64, error) {
	var (
		allocs []FundingAllocation
		total  int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Scopes(r.withRefs, query.Sort(req.Params, sortColumns, "funding_allocations.start_date"), query.Paginate(req.Params)).
		Find(&allocs).Error
	return allocs, total, err
}

// FindByEmployment returns allocations in any of statuses, or all of them
// when none are given.
func (r *repository) FindByEmployment(ctx context.Context, employmentID string, statuses ...string) ([]FundingAllocation, error) {
	var allocs []FundingAllocation
	q := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(r.withRefs).
		Where("employment_id = ?", employmentID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Order("status ASC, start_date DESC, fte DESC").Find(&allocs).Error
	return allocs, err
}

func (r *repository) SlotHeldByOther(ctx context.Context, slotID, employmentID string) (bool, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Model(&FundingAllocation{}).
		Where("position_slot_id = ? AND status = ? AND employment_id <> ?", slotID, StatusActive, employmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateMany(ctx context.Context, allocs []FundingAllocation) error {
	if len(allocs) == 0 {
		return nil
	}
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(&allocs).Error
}

func (r *repository) UpdateAmount(ctx context.Context, id string, amount int64, salaryType string) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&FundingAllocation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"allocated_amount": amount,
			"salary_type":      salaryType,
		}).Error
}

// CloseActive moves every active allocation of the employment to status.
func (r *repository) CloseActive(ctx context.Context, employmentID, status string, endDate time.Time) (int64, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&FundingAllocation{}).
		Where("employment_id = ? AND status = ?", employmentID, StatusActive).
		Updates(map[string]any{
			"status":   status,
			"end_date": endDate,
		})
	return res.RowsAffected, res.Error
}
