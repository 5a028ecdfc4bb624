package employment

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
	"staff_id":            "employees.staff_id",
	"start_date":          "employments.start_date",
	"pass_probation_date": "employments.pass_probation_date",
	"employment_type":     "employments.employment_type",
	"created_at":          "employments.created_at",
}

// ActiveFilter narrows FindActive to a subsidiary and/or department.
type ActiveFilter struct {
	Organization string
	DepartmentID string
}

//go:generate mockgen -source=employment_repo.go -destination=mock/employment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employment) error
	FindAll(ctx context.Context, req ListEmploymentsRequest) ([]Employment, int64, error)
	FindActive(ctx context.Context, filter ActiveFilter) ([]Employment, error)
	FindByID(ctx context.Context, id string) (*Employment, error)
	LockByID(ctx context.Context, id string) (*Employment, error)
	FindDueProbation(ctx context.Context, today time.Time) ([]Employment, error)
	HasActive(ctx context.Context, employeeID, excludeID string) (bool, error)
	Update(ctx context.Context, emp *Employment) error
	Delete(ctx context.Context, id string) error

	CreateProbationRecord(ctx context.Context, rec *ProbationRecord) error
	DeactivateProbationRecords(ctx context.Context, employmentID string) error
	CountProbationRecords(ctx context.Context, employmentID, eventType string) (int64, error)
	FindProbationRecords(ctx context.Context, employmentID string) ([]ProbationRecord, error)
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

func (r *repository) Create(ctx context.Context, emp *Employment) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(emp).Error
}

func (r *repository) filtered(ctx context.Context, req ListEmploymentsRequest) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&Employment{}).
		Joins("JOIN employees ON employees.id = employments.employee_id AND employees.deleted_at IS NULL").
		Scopes(
			query.Eq("employments.employee_id", req.EmployeeID),
			query.Eq("employments.department_id", req.DepartmentID),
			query.Eq("employments.position_id", req.PositionID),
			query.Eq("employments.employment_type", req.EmploymentType),
			query.Eq("employments.status", req.Status),
			query.Eq("employments.probation_status", req.ProbationStatus),
			query.Eq("employees.organization", req.Organization),
			query.Search(req.Search, "employees.staff_id", "employees.first_name_en", "employees.last_name_en"),
		)
}

func (r *repository) FindAll(ctx context.Context, req ListEmploymentsRequest) ([]Employment, int64, error) {
	var (
		emps  []Employment
		total int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Preload("Employee").
		Preload("Department").
		Preload("Position").
		Scopes(query.Sort(req.Params, sortColumns, "employments.start_date"), query.Paginate(req.Params)).
		Find(&emps).Error
	return emps, total, err
}

func (r *repository) FindActive(ctx context.Context, filter ActiveFilter) ([]Employment, error) {
	var emps []Employment
	err := dbtx.Conn(ctx, r.db, r.tx).
		Joins("JOIN employees ON employees.id = employments.employee_id AND employees.deleted_at IS NULL").
		Preload("Employee").
		Where("employments.status = ?", StatusActive).
		Scopes(
			query.Eq("employees.organization", filter.Organization),
			query.Eq("employments.department_id", filter.DepartmentID),
		).
		Order("employees.staff_id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employment, error) {
	var emp Employment
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Preload("Department").
		Preload("Position").
		Where("id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// LockByID reads the row FOR UPDATE; it only makes sense inside WithTx.
func (r *repository) LockByID(ctx context.Context, id string) (*Employment, error) {
	var emp Employment
	err := dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindDueProbation(ctx context.Context, today time.Time) ([]Employment, error) {
	var emps []Employment
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Where("status = ?", StatusActive).
		Where("probation_status IN ?", []string{ProbationOngoing, ProbationExtended}).
		Where("pass_probation_date <= ?", today).
		Order("pass_probation_date ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) HasActive(ctx context.Context, employeeID, excludeID string) (bool, error) {
	var count int64
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Employment{}).
		Where("employee_id = ? AND status = ?", employeeID, StatusActive)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, emp *Employment) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		Delete(&Employment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateProbationRecord(ctx context.Context, rec *ProbationRecord) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(rec).Error
}

func (r *repository) DeactivateProbationRecords(ctx context.Context, employmentID string) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&ProbationRecord{}).
		Where("employment_id = ? AND is_active = ?", employmentID, true).
		Update("is_active", false).Error
}

func (r *repository) CountProbationRecords(ctx context.Context, employmentID, eventType string) (int64, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Model(&ProbationRecord{}).
		Where("employment_id = ? AND event_type = ?", employmentID, eventType).
		Count(&count).Error
	return count, err
}

func (r *repository) FindProbationRecords(ctx context.Context, employmentID string) ([]ProbationRecord, error) {
	var recs []ProbationRecord
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("employment_id = ?", employmentID).
		Order("created_at ASC").
		Find(&recs).Error
	return recs, err
}
