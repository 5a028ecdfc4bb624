package allocation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	allocationerrors "go-hrms/internal/allocation/errors"
	"go-hrms/internal/employment"
	"go-hrms/internal/grant"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=allocation_service.go -destination=mock/allocation_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, req ListAllocationsRequest) ([]AllocationResponse, int64, error)
	GetByEmployment(ctx context.Context, employmentID string, includeHistory bool) ([]AllocationResponse, error)
	Replace(ctx context.Context, employmentID string, req ReplaceAllocationsRequest) ([]AllocationResponse, error)
	Calculate(ctx context.Context, req CalculateRequest) (CalculationResponse, error)
	RecalculateForEmployment(ctx context.Context, tx *sql.Tx, emp employment.Employment, ref time.Time) error
	EndForEmployment(ctx context.Context, tx *sql.Tx, employmentID string, endDate time.Time) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	employments employment.Repository
	grants      grant.Repository
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employments employment.Repository,
	grants grant.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("allocation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allocation.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employments: employments,
		grants:      grants,
		logger:      l,
		now:         time.Now,
	}
}

func (s *service) GetAll(ctx context.Context, req ListAllocationsRequest) ([]AllocationResponse, int64, error) {
	req.Params = req.Params.Normalize()

	allocs, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(allocs), total, nil
}

func (s *service) GetByEmployment(ctx context.Context, employmentID string, includeHistory bool) ([]AllocationResponse, error) {
	if _, err := uuid.Parse(employmentID); err != nil {
		return nil, allocationerrors.ErrInvalidEmploymentID
	}
	if _, err := s.employments.FindByID(ctx, employmentID); err != nil {
		return nil, mapRepositoryError(err)
	}

	var statuses []string
	if !includeHistory {
		statuses = []string{StatusActive}
	}
	allocs, err := s.repo.FindByEmployment(ctx, employmentID, statuses...)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(allocs), nil
}

// Replace swaps the employment's active allocation set for req in one
// transaction. The previous active rows become historical.
func (s *service) Replace(ctx context.Context, employmentID string, req ReplaceAllocationsRequest) ([]AllocationResponse, error) {
	if _, err := uuid.Parse(employmentID); err != nil {
		return nil, allocationerrors.ErrInvalidEmploymentID
	}
	effective := dateutil.Truncate(s.now())
	if req.EffectiveDate != nil && *req.EffectiveDate != "" {
		d, err := dateutil.Parse(*req.EffectiveDate)
		if err != nil {
			return nil, allocationerrors.ErrInvalidEffectiveAt
		}
		effective = d
	}
	if TotalFTE(req.Allocations) != FullFTE {
		return nil, allocationerrors.ErrFTETotal
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("replace allocations begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	emp, err := s.employments.WithTx(tx).LockByID(ctx, employmentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if emp.Status != employment.StatusActive {
		return nil, allocationerrors.ErrEmploymentInactive
	}

	qtx := s.repo.WithTx(tx)
	if err := s.validateSet(ctx, tx, qtx, employmentID, req.Allocations); err != nil {
		return nil, err
	}

	if _, err := qtx.CloseActive(ctx, employmentID, StatusHistorical, effective); err != nil {
		return nil, err
	}

	salary, salaryType := employment.ActiveSalary(*emp, effective)
	rows := make([]FundingAllocation, len(req.Allocations))
	for i, it := range req.Allocations {
		rows[i] = FundingAllocation{
			ID:              uuid.New(),
			EmploymentID:    emp.ID,
			EmployeeID:      emp.EmployeeID,
			AllocationType:  it.AllocationType,
			PositionSlotID:  parseOptionalID(it.PositionSlotID),
			GrantID:         parseOptionalID(it.GrantID),
			FTE:             it.FTE,
			AllocatedAmount: AllocatedAmount(salary, it.FTE),
			SalaryType:      salaryType,
			Status:          StatusActive,
			StartDate:       effective,
		}
		if it.AllocationType == TypeGrant {
			rows[i].GrantID = nil
		} else {
			rows[i].PositionSlotID = nil
		}
	}
	if err := qtx.CreateMany(ctx, rows); err != nil {
		s.logger.Error("replace allocations persist failed", zap.String("employment_id", employmentID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("allocations replaced",
		zap.String("employment_id", employmentID),
		zap.Int("count", len(rows)),
		zap.String("salary_type", salaryType),
	)
	return s.GetByEmployment(ctx, employmentID, false)
}

func (s *service) Calculate(ctx context.Context, req CalculateRequest) (CalculationResponse, error) {
	if _, err := uuid.Parse(req.EmploymentID); err != nil {
		return CalculationResponse{}, allocationerrors.ErrInvalidEmploymentID
	}
	ref := dateutil.Truncate(s.now())
	if req.ReferenceDate != nil && *req.ReferenceDate != "" {
		d, err := dateutil.Parse(*req.ReferenceDate)
		if err != nil {
			return CalculationResponse{}, allocationerrors.ErrInvalidEffectiveAt
		}
		ref = d
	}

	emp, err := s.employments.FindByID(ctx, req.EmploymentID)
	if err != nil {
		return CalculationResponse{}, mapRepositoryError(err)
	}

	salary, salaryType := employment.ActiveSalary(*emp, ref)
	resp := CalculationResponse{
		EmploymentID:  req.EmploymentID,
		ReferenceDate: dateutil.Format(ref),
		ActiveSalary:  salary,
		SalaryType:    salaryType,
		Allocations:   make([]CalculatedAllocation, len(req.Allocations)),
	}
	for i, it := range req.Allocations {
		amount := AllocatedAmount(salary, it.FTE)
		resp.Allocations[i] = CalculatedAllocation{
			AllocationType:  it.AllocationType,
			PositionSlotID:  it.PositionSlotID,
			GrantID:         it.GrantID,
			FTE:             it.FTE,
			AllocatedAmount: amount,
		}
		resp.TotalFTE += it.FTE
		resp.TotalAmount += amount
	}
	resp.IsValid = resp.TotalFTE == FullFTE
	return resp, nil
}

// RecalculateForEmployment reprices the active set with the salary in force
// on ref. It runs inside the caller's transaction.
func (s *service) RecalculateForEmployment(ctx context.Context, tx *sql.Tx, emp employment.Employment, ref time.Time) error {
	qtx := s.repo.WithTx(tx)

	allocs, err := qtx.FindByEmployment(ctx, emp.ID.String(), StatusActive)
	if err != nil {
		return err
	}

	salary, salaryType := employment.ActiveSalary(emp, ref)
	for _, a := range allocs {
		amount := AllocatedAmount(salary, a.FTE)
		if amount == a.AllocatedAmount && salaryType == a.SalaryType {
			continue
		}
		if err := qtx.UpdateAmount(ctx, a.ID.String(), amount, salaryType); err != nil {
			return err
		}
	}

	s.logger.Info("allocations recalculated",
		zap.String("employment_id", emp.ID.String()),
		zap.Int("count", len(allocs)),
		zap.String("salary_type", salaryType),
	)
	return nil
}

func (s *service) EndForEmployment(ctx context.Context, tx *sql.Tx, employmentID string, endDate time.Time) error {
	n, err := s.repo.WithTx(tx).CloseActive(ctx, employmentID, StatusInactive, endDate)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("allocations ended", zap.String("employment_id", employmentID), zap.Int64("count", n))
	}
	return nil
}

func (s *service) validateSet(ctx context.Context, tx *sql.Tx, qtx Repository, employmentID string, items []AllocationItemRequest) error {
	grants := s.grants.WithTx(tx)
	seen := make(map[string]bool, len(items))

	for _, it := range items {
		switch it.AllocationType {
		case TypeGrant:
			if it.PositionSlotID == "" {
				return allocationerrors.ErrSlotRequired
			}
			if seen[it.PositionSlotID] {
				return allocationerrors.ErrDuplicateSlot
			}
			seen[it.PositionSlotID] = true

			if _, err := grants.FindSlotByID(ctx, it.PositionSlotID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return allocationerrors.ErrSlotNotFound
				}
				return err
			}
			held, err := qtx.SlotHeldByOther(ctx, it.PositionSlotID, employmentID)
			if err != nil {
				return err
			}
			if held {
				return allocationerrors.ErrSlotTaken
			}

		case TypeOrgFunded:
			if it.GrantID == "" {
				return allocationerrors.ErrGrantRequired
			}
			g, err := grants.FindByID(ctx, it.GrantID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return allocationerrors.ErrGrantNotFound
				}
				return err
			}
			if !g.IsOrgFunded {
				return allocationerrors.ErrGrantNotOrgFunded
			}
		}
	}
	return nil
}

func parseOptionalID(raw string) *uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func mapToListResponse(allocs []FundingAllocation) []AllocationResponse {
	resp := make([]AllocationResponse, len(allocs))
	for i, a := range allocs {
		resp[i] = mapToResponse(a)
	}
	return resp
}

func mapToResponse(a FundingAllocation) AllocationResponse {
	resp := AllocationResponse{
		ID:              a.ID.String(),
		EmploymentID:    a.EmploymentID.String(),
		EmployeeID:      a.EmployeeID.String(),
		AllocationType:  a.AllocationType,
		FTE:             a.FTE,
		AllocatedAmount: a.AllocatedAmount,
		SalaryType:      a.SalaryType,
		Status:          a.Status,
		StartDate:       dateutil.Format(a.StartDate),
		EndDate:         dateutil.FormatPtr(a.EndDate),
	}
	if a.PositionSlotID != nil {
		v := a.PositionSlotID.String()
		resp.PositionSlotID = &v
	}
	if a.PositionSlot != nil {
		n := a.PositionSlot.SlotNumber
		resp.SlotNumber = &n
		resp.BudgetLineCode = a.PositionSlot.BudgetLineCode
		if a.PositionSlot.GrantItem != nil {
			resp.PositionTitle = a.PositionSlot.GrantItem.PositionTitle
		}
	}
	if g := a.GrantRef(); g != nil {
		v := g.ID.String()
		resp.GrantID = &v
		resp.GrantCode = g.Code
		resp.GrantName = g.Name
	} else if a.GrantID != nil {
		v := a.GrantID.String()
		resp.GrantID = &v
	}
	return resp
}
