package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	"pay_period_date": "payrolls.pay_period_date",
	"net_salary":      "payrolls.net_salary",
	"status":          "payrolls.status",
	"staff_id":        "employees.staff_id",
	"created_at":      "payrolls.created_at",
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, p *Payroll) error
	FindAll(ctx context.Context, req ListPayrollsRequest, period *time.Time) ([]Payroll, int64, error)
	FindAllUnpaged(ctx context.Context, req ListPayrollsRequest, period *time.Time) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByAllocationPeriod(ctx context.Context, allocationID string, period time.Time) (*Payroll, error)
	Update(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, id string) error

	CreateBatch(ctx context.Context, b *PayrollBatch) error
	FindBatchByID(ctx context.Context, id string) (*PayrollBatch, error)
	UpdateBatch(ctx context.Context, b *PayrollBatch) error
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

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(p).Error
}

func (r *repository) filtered(ctx context.Context, req ListPayrollsRequest, period *time.Time) *gorm.DB {
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Payroll{}).
		Joins("JOIN employees ON employees.id = payrolls.employee_id").
		Scopes(
			query.Eq("payrolls.employee_id", req.EmployeeID),
			query.Eq("payrolls.employment_id", req.EmploymentID),
			query.Eq("payrolls.status", req.Status),
			query.Eq("payrolls.batch_id", req.BatchID),
			query.Eq("employees.organization", req.Organization),
			query.Search(req.Search, "employees.staff_id", "employees.first_name_en", "employees.last_name_en"),
		)
	if period != nil {
		q = q.Where("payrolls.pay_period_date = ?", *period)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, req ListPayrollsRequest, period *time.Time) ([]Payroll, int64, error) {
	var (
		payrolls []Payroll
		total    int64
	)
	if err := r.filtered(ctx, req, period).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req, period).
		Preload("Employee").
		Scopes(query.Sort(req.Params, sortColumns, "payrolls.pay_period_date"), query.Paginate(req.Params)).
		Find(&payrolls).Error
	return payrolls, total, err
}

func (r *repository) FindAllUnpaged(ctx context.Context, req ListPayrollsRequest, period *time.Time) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.filtered(ctx, req, period).
		Preload("Employee").
		Order("payrolls.pay_period_date DESC, employees.staff_id ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByAllocationPeriod returns nil, nil when the month has no payroll yet.
func (r *repository) FindByAllocationPeriod(ctx context.Context, allocationID string, period time.Time) (*Payroll, error) {
	var p Payroll
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("funding_allocation_id = ? AND pay_period_date = ?", allocationID, period).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).Where("id = ?", id).Delete(&Payroll{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateBatch(ctx context.Context, b *PayrollBatch) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(b).Error
}

func (r *repository) FindBatchByID(ctx context.Context, id string) (*PayrollBatch, error) {
	var b PayrollBatch
	if err := dbtx.Conn(ctx, r.db, r.tx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) UpdateBatch(ctx context.Context, b *PayrollBatch) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(b).Error
}
