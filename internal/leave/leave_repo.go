package leave

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

var typeSortColumns = map[string]string{
	"name":         "leave_types.name",
	"default_days": "leave_types.default_days",
	"created_at":   "leave_types.created_at",
}

var requestSortColumns = map[string]string{
	"start_date": "leave_requests.start_date",
	"total_days": "leave_requests.total_days",
	"status":     "leave_requests.status",
	"created_at": "leave_requests.created_at",
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindTypes(ctx context.Context, req ListLeaveTypesRequest) ([]LeaveType, int64, error)
	FindAllTypes(ctx context.Context) ([]LeaveType, error)
	FindTypeByID(ctx context.Context, id string) (*LeaveType, error)
	CreateType(ctx context.Context, t *LeaveType) error
	UpdateType(ctx context.Context, t *LeaveType) error
	DeleteType(ctx context.Context, id string) error

	FindBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	FindBalanceByID(ctx context.Context, id string) (*LeaveBalance, error)
	// LockBalance returns nil without error when no balance exists yet.
	LockBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	CreateBalance(ctx context.Context, b *LeaveBalance) error
	UpdateBalance(ctx context.Context, b *LeaveBalance) error

	FindRequests(ctx context.Context, req ListLeaveRequestsRequest, from, to *time.Time) ([]LeaveRequest, int64, error)
	FindRequestByID(ctx context.Context, id string) (*LeaveRequest, error)
	LockRequest(ctx context.Context, id string) (*LeaveRequest, error)
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
	CreateRequest(ctx context.Context, l *LeaveRequest) error
	UpdateRequest(ctx context.Context, l *LeaveRequest) error
	DeleteRequest(ctx context.Context, id string) error

	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	// LockEmployee serialises request writes of one employee so the overlap
	// check holds.
	LockEmployee(ctx context.Context, employeeID string) (bool, error)
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) FindTypes(ctx context.Context, req ListLeaveTypesRequest) ([]LeaveType, int64, error) {
	var (
		types []LeaveType
		total int64
	)
	filtered := func() *gorm.DB {
		return r.conn(ctx).Model(&LeaveType{}).Scopes(query.Search(req.Search, "leave_types.name"))
	}
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := filtered().
		Scopes(query.Sort(req.Params, typeSortColumns, "leave_types.name"), query.Paginate(req.Params)).
		Find(&types).Error
	return types, total, err
}

func (r *repository) FindAllTypes(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.conn(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindTypeByID(ctx context.Context, id string) (*LeaveType, error) {
	var t LeaveType
	if err := r.conn(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) CreateType(ctx context.Context, t *LeaveType) error {
	return r.conn(ctx).Create(t).Error
}

func (r *repository) UpdateType(ctx context.Context, t *LeaveType) error {
	return r.conn(ctx).Save(t).Error
}

func (r *repository) DeleteType(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&LeaveType{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.conn(ctx).
		Preload("LeaveType").
		Joins("JOIN leave_types lt ON lt.id = leave_balances.leave_type_id").
		Where("leave_balances.employee_id = ? AND leave_balances.year = ?", employeeID, year).
		Order("lt.name ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindBalanceByID(ctx context.Context, id string) (*LeaveBalance, error) {
	var b LeaveBalance
	if err := r.conn(ctx).Preload("LeaveType").First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) LockBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBalance is a no-op when the employee already has a balance for the
// type and year.
func (r *repository) CreateBalance(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(b).Error
}

func (r *repository) UpdateBalance(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).Omit(clause.Associations).Save(b).Error
}

func (r *repository) filteredRequests(ctx context.Context, req ListLeaveRequestsRequest, from, to *time.Time) *gorm.DB {
	q := r.conn(ctx).
		Model(&LeaveRequest{}).
		Joins("JOIN employees e ON e.id = leave_requests.employee_id").
		Scopes(
			query.Eq("leave_requests.employee_id", req.EmployeeID),
			query.Eq("leave_requests.leave_type_id", req.LeaveTypeID),
			query.Eq("leave_requests.status", req.Status),
			query.Search(req.Search, "e.staff_id", "e.first_name_en", "e.last_name_en", "leave_requests.reason"),
		)
	if from != nil {
		q = q.Where("leave_requests.end_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("leave_requests.start_date <= ?", *to)
	}
	return q
}

func (r *repository) FindRequests(ctx context.Context, req ListLeaveRequestsRequest, from, to *time.Time) ([]LeaveRequest, int64, error) {
	var (
		requests []LeaveRequest
		total    int64
	)
	if err := r.filteredRequests(ctx, req, from, to).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filteredRequests(ctx, req, from, to).
		Preload("Employee").
		Preload("LeaveType").
		Scopes(query.Sort(req.Params, requestSortColumns, "leave_requests.start_date"), query.Paginate(req.Params)).
		Find(&requests).Error
	return requests, total, err
}

func (r *repository) FindRequestByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Preload("LeaveType").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) LockRequest(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// HasOverlap reports whether the employee has a non-cancelled request
// sharing at least one day with [start, end].
func (r *repository) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusCancelled).
		Where("NOT (end_date < ? OR start_date > ?)", start, end)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateRequest(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *repository) UpdateRequest(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *repository) DeleteRequest(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&LeaveRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) LockEmployee(ctx context.Context, employeeID string) (bool, error) {
	var ids []string
	err := r.conn(ctx).
		Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Limit(1).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}
