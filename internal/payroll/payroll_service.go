package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/allocation"
	"go-hrms/internal/employee"
	"go-hrms/internal/employment"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/realtime"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"
	"go-hrms/internal/tax"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, req CalculatePayrollRequest) (CalculationResponse, error)
	Create(ctx context.Context, req CreatePayrollRequest) ([]PayrollResponse, error)
	GetAll(ctx context.Context, req ListPayrollsRequest) ([]PayrollResponse, int64, error)
	Export(ctx context.Context, req ListPayrollsRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Approve(ctx context.Context, id string) (PayrollResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	Payslip(ctx context.Context, id string) ([]byte, string, error)

	BulkCreate(ctx context.Context, req BulkPayrollRequest) (BatchResponse, error)
	GetBatch(ctx context.Context, id string) (BatchResponse, error)
	ProcessBulkBatch(ctx context.Context, batchID string) error
}

// TaxConfigProvider is satisfied by tax.Service.
type TaxConfigProvider interface {
	GetConfig(ctx context.Context, year int) (tax.Config, error)
}

// Notifier is satisfied by notification.Service.
type Notifier interface {
	NotifyUsers(ctx context.Context, userIDs []string, in notification.Input) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	employments employment.Repository
	allocations allocation.Repository
	employees   employee.Repository
	taxes       TaxConfigProvider
	outbox      kafka.OutboxRepository
	broadcaster realtime.Broadcaster
	notifier    Notifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employments employment.Repository,
	allocations allocation.Repository,
	employees employee.Repository,
	taxes TaxConfigProvider,
	outboxRepo kafka.OutboxRepository,
	broadcaster realtime.Broadcaster,
	notifier Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employments: employments,
		allocations: allocations,
		employees:   employees,
		taxes:       taxes,
		outbox:      outboxRepo,
		broadcaster: broadcaster,
		notifier:    notifier,
		logger:      l,
		now:         time.Now,
	}
}

// parsePayPeriod accepts YYYY-MM-DD or YYYY-MM and returns the first day of
// that month.
func parsePayPeriod(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse("2006-01", v); err == nil {
		return t, nil
	}
	t, err := dateutil.Parse(v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidPayPeriod
	}
	return dateutil.MonthStart(t), nil
}

// pricing is everything shared by the allocations of one employment for a
// given month.
type pricing struct {
	cfg        tax.Config
	base       CalcInput
	salaryType string
	employee   *PayrollEmployee
}

// price resolves the salary in force on the last day of the pay month and
// the employee's tax profile.
func (s *service) price(ctx context.Context, emp employment.Employment, period time.Time) (pricing, error) {
	salary, salaryType := employment.ActiveSalary(emp, dateutil.MonthEnd(period))

	empl, err := s.employees.FindByID(ctx, emp.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing{}, payrollerrors.ErrEmploymentNotFound
		}
		return pricing{}, err
	}

	cfg, err := s.taxes.GetConfig(ctx, period.Year())
	if err != nil {
		return pricing{}, err
	}

	return pricing{
		cfg:        cfg,
		salaryType: salaryType,
		base: CalcInput{
			Salary:          salary,
			OnProbation:     salaryType == employment.SalaryTypeProbation,
			HealthWelfare:   emp.HealthWelfare,
			PVD:             emp.PVD,
			SavingFund:      emp.SavingFund,
			HasSpouse:       empl.HasSpouse,
			SpouseHasIncome: empl.SpouseHasIncome,
			Children:        empl.NumberOfChildren,
		},
		employee: &PayrollEmployee{
			ID:                empl.ID,
			StaffID:           empl.StaffID,
			FirstNameEN:       empl.FirstNameEN,
			LastNameEN:        empl.LastNameEN,
			Organization:      empl.Organization,
			BankName:          empl.BankName,
			BankAccountNumber: empl.BankAccountNumber,
		},
	}, nil
}

func (p pricing) compute(a allocation.FundingAllocation, refund int64) Figures {
	in := p.base
	in.FTE = a.FTE
	in.CompensationRefund = share(refund, a.FTE)
	return Compute(p.cfg, in)
}

func (s *service) Calculate(ctx context.Context, req CalculatePayrollRequest) (CalculationResponse, error) {
	period, err := parsePayPeriod(req.PayPeriodDate)
	if err != nil {
		return CalculationResponse{}, err
	}
	if _, err := uuid.Parse(req.EmploymentID); err != nil {
		return CalculationResponse{}, payrollerrors.ErrInvalidEmployment
	}

	emp, err := s.employments.FindByID(ctx, req.EmploymentID)
	if err != nil {
		return CalculationResponse{}, mapEmploymentError(err)
	}
	allocs, err := s.allocations.FindByEmployment(ctx, req.EmploymentID, allocation.StatusActive)
	if err != nil {
		return CalculationResponse{}, err
	}
	if len(allocs) == 0 {
		return CalculationResponse{}, payrollerrors.ErrNoActiveAllocations
	}

	p, err := s.price(ctx, *emp, period)
	if err != nil {
		return CalculationResponse{}, err
	}

	resp := CalculationResponse{
		EmploymentID:  req.EmploymentID,
		EmployeeName:  p.employee.FullName(),
		PayPeriodDate: dateutil.Format(period),
		Salary:        p.base.Salary,
		SalaryType:    p.salaryType,
		Allocations:   make([]CalculatedPayroll, 0, len(allocs)),
	}
	for _, a := range allocs {
		f := p.compute(a, req.CompensationRefund)
		resp.Allocations = append(resp.Allocations, CalculatedPayroll{
			FundingAllocationID: a.ID.String(),
			AllocationType:      a.AllocationType,
			FTE:                 a.FTE,
			SalaryType:          p.salaryType,
			Figures:             f,
		})
		resp.Totals.add(f)
	}
	return resp, nil
}

type generateOptions struct {
	refund         int64
	notes          string
	batchID        *uuid.UUID
	overwriteDraft bool
}

// generate writes one payroll per active allocation of the employment for
// the month. With overwriteDraft an existing draft is recalculated in place;
// otherwise an existing row is a conflict.
func (s *service) generate(ctx context.Context, employmentID string, period time.Time, opts generateOptions) ([]Payroll, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := s.employments.WithTx(tx).LockByID(ctx, employmentID)
	if err != nil {
		return nil, mapEmploymentError(err)
	}
	if emp.Status != employment.StatusActive {
		return nil, payrollerrors.ErrEmploymentInactive
	}

	allocs, err := s.allocations.WithTx(tx).FindByEmployment(ctx, employmentID, allocation.StatusActive)
	if err != nil {
		return nil, err
	}
	if len(allocs) == 0 {
		return nil, payrollerrors.ErrNoActiveAllocations
	}

	p, err := s.price(ctx, *emp, period)
	if err != nil {
		return nil, err
	}

	actor := actorID(ctx)
	rows := make([]Payroll, 0, len(allocs))
	for _, a := range allocs {
		f := p.compute(a, opts.refund)

		existing, err := qtx.FindByAllocationPeriod(ctx, a.ID.String(), period)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if !opts.overwriteDraft {
				return nil, payrollerrors.ErrPayrollExists
			}
			if existing.Status != StatusDraft {
				return nil, payrollerrors.ErrOnlyDraft
			}
			f.CompensationRefund = existing.CompensationRefund
			f.Totals()
			existing.Apply(f)
			existing.FTE = a.FTE
			existing.SalaryType = p.salaryType
			existing.BatchID = opts.batchID
			if err := qtx.Update(ctx, existing); err != nil {
				return nil, mapRepositoryError(err)
			}
			existing.Employee = p.employee
			rows = append(rows, *existing)
			continue
		}

		row := Payroll{
			ID:                  uuid.New(),
			EmploymentID:        emp.ID,
			EmployeeID:          emp.EmployeeID,
			FundingAllocationID: a.ID,
			PayPeriodDate:       period,
			BatchID:             opts.batchID,
			AllocationType:      a.AllocationType,
			FTE:                 a.FTE,
			SalaryType:          p.salaryType,
			Status:              StatusDraft,
			Notes:               strings.TrimSpace(opts.notes),
			CreatedBy:           actor,
		}
		row.Apply(f)
		if err := qtx.Create(ctx, &row); err != nil {
			return nil, mapRepositoryError(err)
		}
		row.Employee = p.employee
		rows = append(rows, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *service) Create(ctx context.Context, req CreatePayrollRequest) ([]PayrollResponse, error) {
	period, err := parsePayPeriod(req.PayPeriodDate)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(req.EmploymentID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployment
	}

	rows, err := s.generate(ctx, req.EmploymentID, period, generateOptions{
		refund: req.CompensationRefund,
		notes:  req.Notes,
	})
	if err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll created",
		zap.String("employment_id", req.EmploymentID),
		zap.String("pay_period", dateutil.Format(period)),
		zap.Int("rows", len(rows)),
	)
	return mapToListResponse(rows), nil
}

func (s *service) listPeriod(req ListPayrollsRequest) (*time.Time, error) {
	if strings.TrimSpace(req.PayPeriod) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01", strings.TrimSpace(req.PayPeriod))
	if err != nil {
		return nil, payrollerrors.ErrInvalidPeriodQuery
	}
	return &t, nil
}

func (s *service) GetAll(ctx context.Context, req ListPayrollsRequest) ([]PayrollResponse, int64, error) {
	req.Params = req.Params.Normalize()
	period, err := s.listPeriod(req)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := s.repo.FindAll(ctx, req, period)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(rows), total, nil
}

func (s *service) Export(ctx context.Context, req ListPayrollsRequest) ([]PayrollResponse, error) {
	req.Params = req.Params.Normalize()
	period, err := s.listPeriod(req)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllUnpaged(ctx, req, period)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

// mutate loads a payroll inside a transaction, applies fn and saves it.
func (s *service) mutate(ctx context.Context, id string, fn func(p *Payroll) error) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := fn(p); err != nil {
		return PayrollResponse{}, err
	}
	if err := qtx.Update(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	return s.mutate(ctx, id, func(p *Payroll) error {
		if p.Status != StatusDraft {
			return payrollerrors.ErrOnlyDraft
		}
		f := figuresOf(*p)
		f.CompensationRefund = req.CompensationRefund
		f.Totals()
		p.Apply(f)
		p.Notes = strings.TrimSpace(req.Notes)
		return nil
	})
}

func (s *service) Approve(ctx context.Context, id string) (PayrollResponse, error) {
	resp, err := s.mutate(ctx, id, func(p *Payroll) error {
		if p.Status != StatusDraft {
			return payrollerrors.ErrOnlyDraft
		}
		now := s.now()
		p.Status = StatusApproved
		p.ApprovedAt = &now
		p.ApprovedBy = actorID(ctx)
		return nil
	})
	if err == nil {
		contextutil.GetLogger(ctx, s.logger).Info("payroll approved", zap.String("payroll_id", id))
	}
	return resp, err
}

func (s *service) MarkPaid(ctx context.Context, id string) (PayrollResponse, error) {
	return s.mutate(ctx, id, func(p *Payroll) error {
		if p.Status != StatusApproved {
			return payrollerrors.ErrNotApproved
		}
		now := s.now()
		p.Status = StatusPaid
		p.PaidAt = &now
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrInvalidPayrollID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if p.Status != StatusDraft {
		return payrollerrors.ErrOnlyDraft
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Payslip(ctx context.Context, id string) ([]byte, string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, "", payrollerrors.ErrInvalidPayrollID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}

	data, err := renderPayslip(*p)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to render payslip", zap.String("payroll_id", id), zap.Error(err))
		return nil, "", err
	}

	staffID := "employee"
	if p.Employee != nil && p.Employee.StaffID != "" {
		staffID = p.Employee.StaffID
	}
	return data, fmt.Sprintf("payslip_%s_%s.pdf", staffID, p.PayPeriodDate.Format("2006-01")), nil
}

func (s *service) BulkCreate(ctx context.Context, req BulkPayrollRequest) (BatchResponse, error) {
	period, err := parsePayPeriod(req.PayPeriodDate)
	if err != nil {
		return BatchResponse{}, err
	}

	batch := &PayrollBatch{
		ID:            uuid.New(),
		PayPeriodDate: period,
		Organization:  strings.TrimSpace(req.Organization),
		Status:        BatchPending,
		Errors:        []BatchError{},
		RequestedBy:   actorID(ctx),
	}
	if req.DepartmentID != "" {
		dept, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return BatchResponse{}, payrollerrors.ErrInvalidDepartment
		}
		batch.DepartmentID = &dept
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BatchResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateBatch(ctx, batch); err != nil {
		return BatchResponse{}, err
	}

	event := events.PayrollBulkRequestedEvent{
		EventType:   "payroll.bulk.requested",
		BatchID:     batch.ID.String(),
		RequestedBy: contextutil.GetUserID(ctx),
		OccurredAt:  s.now().UTC(),
	}
	row, err := kafka.NewEvent(ctx, "payroll_batch", event.BatchID, event.EventType, events.PayrollBulkRequestedTopic, event)
	if err != nil {
		return BatchResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		return BatchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BatchResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("bulk payroll queued",
		zap.String("batch_id", event.BatchID),
		zap.String("pay_period", dateutil.Format(period)),
	)
	return mapBatch(*batch), nil
}

func (s *service) GetBatch(ctx context.Context, id string) (BatchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BatchResponse{}, payrollerrors.ErrInvalidBatchID
	}

	b, err := s.repo.FindBatchByID(ctx, id)
	if err != nil {
		return BatchResponse{}, mapBatchError(err)
	}
	return mapBatch(*b), nil
}

// ProcessBulkBatch runs a queued batch. Employments are processed one by one;
// a failure is recorded on the batch and does not stop the run. A redelivered
// batch that already completed is ignored.
func (s *service) ProcessBulkBatch(ctx context.Context, batchID string) error {
	l := s.logger.With(zap.String("batch_id", batchID))

	batch, err := s.repo.FindBatchByID(ctx, batchID)
	if err != nil {
		return mapBatchError(err)
	}
	if batch.Status == BatchCompleted {
		l.Info("batch already completed, skipping")
		return nil
	}

	dept := ""
	if batch.DepartmentID != nil {
		dept = batch.DepartmentID.String()
	}
	emps, err := s.employments.FindActive(ctx, employment.ActiveFilter{
		Organization: batch.Organization,
		DepartmentID: dept,
	})
	if err != nil {
		s.failBatch(ctx, batch)
		return err
	}

	started := s.now()
	batch.Status = BatchProcessing
	batch.StartedAt = &started
	batch.Total = len(emps)
	batch.Processed, batch.Succeeded, batch.Failed = 0, 0, 0
	batch.Errors = []BatchError{}
	if err := s.repo.UpdateBatch(ctx, batch); err != nil {
		return err
	}
	s.broadcastProgress(ctx, *batch, realtime.EventPayrollProgress)

	for _, emp := range emps {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := s.generate(ctx, emp.ID.String(), batch.PayPeriodDate, generateOptions{
			batchID:        &batch.ID,
			overwriteDraft: true,
		})
		batch.Processed++
		if err != nil {
			batch.Failed++
			batch.Errors = append(batch.Errors, BatchError{
				EmploymentID: emp.ID.String(),
				StaffID:      staffOf(emp),
				Message:      err.Error(),
			})
			l.Warn("payroll generation failed", zap.String("employment_id", emp.ID.String()), zap.Error(err))
		} else {
			batch.Succeeded++
		}

		if err := s.repo.UpdateBatch(ctx, batch); err != nil {
			return err
		}
		s.broadcastProgress(ctx, *batch, realtime.EventPayrollProgress)
	}

	finished := s.now()
	batch.Status = BatchCompleted
	batch.FinishedAt = &finished
	if err := s.repo.UpdateBatch(ctx, batch); err != nil {
		return err
	}
	s.broadcastProgress(ctx, *batch, realtime.EventPayrollCompleted)
	s.notifyFinished(ctx, *batch)

	l.Info("bulk payroll finished",
		zap.Int("total", batch.Total),
		zap.Int("succeeded", batch.Succeeded),
		zap.Int("failed", batch.Failed),
	)
	return nil
}

func (s *service) failBatch(ctx context.Context, batch *PayrollBatch) {
	now := s.now()
	batch.Status = BatchFailed
	batch.FinishedAt = &now
	if err := s.repo.UpdateBatch(ctx, batch); err != nil {
		s.logger.Error("failed to mark batch as failed", zap.String("batch_id", batch.ID.String()), zap.Error(err))
	}
	s.broadcastProgress(ctx, *batch, realtime.EventPayrollCompleted)
}

func (s *service) broadcastProgress(ctx context.Context, batch PayrollBatch, event string) {
	if s.broadcaster == nil {
		return
	}
	channel := realtime.PayrollBulkChannel(batch.ID.String())
	if err := s.broadcaster.Broadcast(ctx, channel, event, mapBatch(batch)); err != nil {
		s.logger.Warn("failed to broadcast batch progress", zap.String("batch_id", batch.ID.String()), zap.Error(err))
	}
}

func (s *service) notifyFinished(ctx context.Context, batch PayrollBatch) {
	if s.notifier == nil || batch.RequestedBy == nil {
		return
	}

	err := s.notifier.NotifyUsers(ctx, []string{batch.RequestedBy.String()}, notification.Input{
		Type:  notification.TypePayrollBulkFinished,
		Title: "Bulk payroll finished",
		Message: fmt.Sprintf("Payroll for %s: %d succeeded, %d failed.",
			batch.PayPeriodDate.Format("January 2006"), batch.Succeeded, batch.Failed),
		Data: map[string]any{
			"batch_id":  batch.ID.String(),
			"succeeded": batch.Succeeded,
			"failed":    batch.Failed,
		},
	})
	if err != nil {
		s.logger.Warn("failed to notify batch requester", zap.String("batch_id", batch.ID.String()), zap.Error(err))
	}
}

func actorID(ctx context.Context) *uuid.UUID {
	id, err := uuid.Parse(contextutil.GetUserID(ctx))
	if err != nil {
		return nil
	}
	return &id
}

func staffOf(emp employment.Employment) string {
	if emp.Employee == nil {
		return ""
	}
	return emp.Employee.StaffID
}

func mapEmploymentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrEmploymentNotFound
	}
	return err
}

func (f *Figures) add(o Figures) {
	f.GrossSalary += o.GrossSalary
	f.GrossSalaryByFTE += o.GrossSalaryByFTE
	f.CompensationRefund += o.CompensationRefund
	f.ThirteenthMonthSalary += o.ThirteenthMonthSalary
	f.PVD += o.PVD
	f.SavingFund += o.SavingFund
	f.EmployeeSSF += o.EmployeeSSF
	f.EmployerSSF += o.EmployerSSF
	f.EmployeeHealthWelfare += o.EmployeeHealthWelfare
	f.EmployerHealthWelfare += o.EmployerHealthWelfare
	f.Tax += o.Tax
	f.TotalIncome += o.TotalIncome
	f.TotalDeduction += o.TotalDeduction
	f.NetSalary += o.NetSalary
	f.EmployerContribution += o.EmployerContribution
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                  p.ID.String(),
		EmploymentID:        p.EmploymentID.String(),
		EmployeeID:          p.EmployeeID.String(),
		FundingAllocationID: p.FundingAllocationID.String(),
		AllocationType:      p.AllocationType,
		FTE:                 p.FTE,
		SalaryType:          p.SalaryType,
		PayPeriodDate:       dateutil.Format(p.PayPeriodDate),
		Figures:             figuresOf(p),
		Status:              p.Status,
		Notes:               p.Notes,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.StaffID = p.Employee.StaffID
		resp.EmployeeName = p.Employee.FullName()
		resp.Organization = p.Employee.Organization
	}
	if p.BatchID != nil {
		v := p.BatchID.String()
		resp.BatchID = &v
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if p.ApprovedAt != nil {
		v := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}

func mapToListResponse(rows []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapToResponse(p)
	}
	return resp
}

func mapBatch(b PayrollBatch) BatchResponse {
	resp := BatchResponse{
		ID:            b.ID.String(),
		PayPeriodDate: dateutil.Format(b.PayPeriodDate),
		Organization:  b.Organization,
		Status:        b.Status,
		Total:         b.Total,
		Processed:     b.Processed,
		Succeeded:     b.Succeeded,
		Failed:        b.Failed,
		Errors:        b.Errors,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if resp.Errors == nil {
		resp.Errors = []BatchError{}
	}
	switch {
	case b.Total > 0:
		resp.Percent = b.Processed * 100 / b.Total
	case b.Status == BatchCompleted:
		resp.Percent = 100
	}
	if b.DepartmentID != nil {
		v := b.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if b.StartedAt != nil {
		v := b.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &v
	}
	if b.FinishedAt != nil {
		v := b.FinishedAt.Format(time.RFC3339)
		resp.FinishedAt = &v
	}
	return resp
}
