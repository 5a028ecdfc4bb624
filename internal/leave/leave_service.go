package leave

import (
	"context"
	"database/sql"
	"strings"
	"time"

	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	GetTypes(ctx context.Context, req ListLeaveTypesRequest) ([]LeaveTypeResponse, int64, error)
	GetType(ctx context.Context, id string) (LeaveTypeResponse, error)
	CreateType(ctx context.Context, req LeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateType(ctx context.Context, id string, req LeaveTypeRequest) (LeaveTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	GetBalances(ctx context.Context, req ListBalancesRequest) ([]BalanceResponse, error)
	AdjustBalance(ctx context.Context, id string, req AdjustBalanceRequest) (BalanceResponse, error)

	GetAll(ctx context.Context, req ListLeaveRequestsRequest) ([]LeaveResponse, int64, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id string, req ApproveLeaveRequest) (LeaveResponse, error)
	Decline(ctx context.Context, id string, req DeclineLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, id string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) GetTypes(ctx context.Context, req ListLeaveTypesRequest) ([]LeaveTypeResponse, int64, error) {
	req.Params = req.Params.Normalize()

	types, total, err := s.repo.FindTypes(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]LeaveTypeResponse, len(types))
	for i, t := range types {
		resp[i] = mapTypeToResponse(t)
	}
	return resp, total, nil
}

func (s *service) GetType(ctx context.Context, id string) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}

	t, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveTypeNotFound)
	}
	return mapTypeToResponse(*t), nil
}

func (s *service) CreateType(ctx context.Context, req LeaveTypeRequest) (LeaveTypeResponse, error) {
	t := &LeaveType{ID: uuid.New()}
	applyType(t, req)

	if err := s.repo.CreateType(ctx, t); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveTypeNotFound)
	}

	contextutil.GetLogger(ctx, s.logger).Info("leave type created",
		zap.String("leave_type_id", t.ID.String()),
		zap.String("name", t.Name),
	)
	return mapTypeToResponse(*t), nil
}

func (s *service) UpdateType(ctx context.Context, id string, req LeaveTypeRequest) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}

	t, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveTypeNotFound)
	}

	// Existing balances keep their totals; DefaultDays only seeds new ones.
	applyType(t, req)
	if err := s.repo.UpdateType(ctx, t); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveTypeNotFound)
	}
	return mapTypeToResponse(*t), nil
}

func (s *service) DeleteType(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveTypeID
	}
	return mapRepositoryError(s.repo.DeleteType(ctx, id), leaveerrors.ErrLeaveTypeNotFound)
}

// GetBalances lists the employee's balances for the year, opening a balance
// from the type's default days for every type the employee has none of.
func (s *service) GetBalances(ctx context.Context, req ListBalancesRequest) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return nil, leaveerrors.ErrEmployeeNotFound
	}
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, leaveerrors.ErrEmployeeNotFound
	}

	types, err := s.repo.FindAllTypes(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := s.repo.FindBalances(ctx, req.EmployeeID, year)
	if err != nil {
		return nil, err
	}

	have := make(map[uuid.UUID]bool, len(balances))
	for _, b := range balances {
		have[b.LeaveTypeID] = true
	}

	opened := 0
	for _, t := range types {
		if have[t.ID] {
			continue
		}
		b, err := openBalance(req.EmployeeID, t, year)
		if err != nil {
			return nil, err
		}
		if err := s.repo.CreateBalance(ctx, b); err != nil {
			return nil, err
		}
		opened++
	}
	if opened > 0 {
		if balances, err = s.repo.FindBalances(ctx, req.EmployeeID, year); err != nil {
			return nil, err
		}
	}

	resp := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = mapBalanceToResponse(b)
	}
	return resp, nil
}

func (s *service) AdjustBalance(ctx context.Context, id string, req AdjustBalanceRequest) (BalanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidBalanceID
	}

	b, err := s.repo.FindBalanceByID(ctx, id)
	if err != nil {
		return BalanceResponse{}, mapRepositoryError(err, leaveerrors.ErrBalanceNotFound)
	}
	if req.TotalDays < b.UsedDays {
		return BalanceResponse{}, leaveerrors.ErrTotalBelowUsed
	}

	b.TotalDays = req.TotalDays
	b.RemainingDays = b.TotalDays - b.UsedDays
	if err := s.repo.UpdateBalance(ctx, b); err != nil {
		return BalanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("leave balance adjusted",
		zap.String("balance_id", id),
		zap.Int("total_days", b.TotalDays),
	)
	return mapBalanceToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context, req ListLeaveRequestsRequest) ([]LeaveResponse, int64, error) {
	req.Params = req.Params.Normalize()

	from, err := dateutil.ParseOptional(&req.From)
	if err != nil {
		return nil, 0, leaveerrors.ErrInvalidDateFormat
	}
	to, err := dateutil.ParseOptional(&req.To)
	if err != nil {
		return nil, 0, leaveerrors.ErrInvalidDateFormat
	}

	requests, total, err := s.repo.FindRequests(ctx, req, from, to)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(requests), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindRequestByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}
	return mapToResponse(*l), nil
}

// period is a validated request span and the working days it covers.
type period struct {
	start, end time.Time
	days       int
	leaveType  *LeaveType
}

func (s *service) resolvePeriod(ctx context.Context, leaveTypeID, start, end, attachment string) (period, error) {
	if _, err := uuid.Parse(leaveTypeID); err != nil {
		return period{}, leaveerrors.ErrInvalidLeaveTypeID
	}
	startDate, err := dateutil.Parse(start)
	if err != nil {
		return period{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := dateutil.Parse(end)
	if err != nil {
		return period{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return period{}, leaveerrors.ErrInvalidDateRange
	}

	days := dateutil.WorkingDays(startDate, endDate)
	if days == 0 {
		return period{}, leaveerrors.ErrNoWorkingDays
	}

	t, err := s.repo.FindTypeByID(ctx, leaveTypeID)
	if err != nil {
		return period{}, mapRepositoryError(err, leaveerrors.ErrLeaveTypeNotFound)
	}
	if t.RequiresAttachment && strings.TrimSpace(attachment) == "" {
		return period{}, leaveerrors.ErrAttachmentRequired
	}

	return period{start: startDate, end: endDate, days: days, leaveType: t}, nil
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}
	p, err := s.resolvePeriod(ctx, req.LeaveTypeID, req.StartDate, req.EndDate, req.Attachment)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.LockEmployee(ctx, req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	overlap, err := qtx.HasOverlap(ctx, req.EmployeeID, p.start, p.end, "")
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		l.Warn("leave overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	employeeID, _ := uuid.Parse(req.EmployeeID)
	lr := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		LeaveTypeID: p.leaveType.ID,
		StartDate:   p.start,
		EndDate:     p.end,
		TotalDays:   p.days,
		Reason:      strings.TrimSpace(req.Reason),
		Attachment:  strings.TrimSpace(req.Attachment),
		Status:      StatusPending,
		CreatedBy:   actorID(ctx),
	}
	if err := qtx.CreateRequest(ctx, lr); err != nil {
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	l.Info("leave requested",
		zap.String("leave_id", lr.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_days", lr.TotalDays),
	)
	lr.LeaveType = p.leaveType
	return mapToResponse(*lr), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	p, err := s.resolvePeriod(ctx, req.LeaveTypeID, req.StartDate, req.EndDate, req.Attachment)
	if err != nil {
		return LeaveResponse{}, err
	}

	return s.mutate(ctx, id, func(qtx Repository, lr *LeaveRequest) error {
		if lr.Status != StatusPending {
			return leaveerrors.ErrOnlyPending
		}

		overlap, err := qtx.HasOverlap(ctx, lr.EmployeeID.String(), p.start, p.end, id)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrLeaveOverlap
		}

		// Approvals given so far cover the old period and type only.
		if lr.LeaveTypeID != p.leaveType.ID || !lr.StartDate.Equal(p.start) || !lr.EndDate.Equal(p.end) {
			lr.SupervisorApproved = false
			lr.SupervisorApprovedAt = nil
			lr.HRApproved = false
			lr.HRApprovedAt = nil
		}

		lr.LeaveTypeID = p.leaveType.ID
		lr.StartDate = p.start
		lr.EndDate = p.end
		lr.TotalDays = p.days
		lr.Reason = strings.TrimSpace(req.Reason)
		lr.Attachment = strings.TrimSpace(req.Attachment)
		return nil
	})
}

// Approve records one of the two approvals. The request is approved, and
// its days taken from the balance of the start year, once both the
// supervisor and HR have approved.
func (s *service) Approve(ctx context.Context, id string, req ApproveLeaveRequest) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	resp, err := s.mutate(ctx, id, func(qtx Repository, lr *LeaveRequest) error {
		if lr.Status != StatusPending {
			return leaveerrors.ErrOnlyPending
		}

		now := s.now()
		switch req.Approver {
		case ApproverSupervisor:
			if lr.SupervisorApproved {
				return leaveerrors.ErrAlreadyApproved
			}
			lr.SupervisorApproved = true
			lr.SupervisorApprovedAt = &now
		case ApproverHR:
			if lr.HRApproved {
				return leaveerrors.ErrAlreadyApproved
			}
			lr.HRApproved = true
			lr.HRApprovedAt = &now
		default:
			return leaveerrors.ErrInvalidStatusTransition
		}

		if !lr.SupervisorApproved || !lr.HRApproved {
			return nil
		}

		b, err := s.ensureBalance(ctx, qtx, lr.EmployeeID.String(), lr.LeaveTypeID.String(), lr.StartDate.Year())
		if err != nil {
			return err
		}
		if !b.consume(lr.TotalDays) {
			return leaveerrors.ErrInsufficientBalance
		}
		if err := qtx.UpdateBalance(ctx, b); err != nil {
			return err
		}

		lr.Status = StatusApproved
		lr.ApprovedBy = actorID(ctx)
		return nil
	})
	if err == nil {
		contextutil.GetLogger(ctx, s.logger).Info("leave approval recorded",
			zap.String("leave_id", id),
			zap.String("approver", req.Approver),
			zap.String("status", resp.Status),
		)
	}
	return resp, err
}

func (s *service) Decline(ctx context.Context, id string, req DeclineLeaveRequest) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	return s.mutate(ctx, id, func(_ Repository, lr *LeaveRequest) error {
		if lr.Status != StatusPending {
			return leaveerrors.ErrOnlyPending
		}
		lr.Status = StatusDeclined
		lr.DeclineReason = strings.TrimSpace(req.Reason)
		return nil
	})
}

// Cancel withdraws a pending or approved request. Days taken by an approved
// request go back to its balance.
func (s *service) Cancel(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	return s.mutate(ctx, id, func(qtx Repository, lr *LeaveRequest) error {
		switch lr.Status {
		case StatusPending:
		case StatusApproved:
			b, err := qtx.LockBalance(ctx, lr.EmployeeID.String(), lr.LeaveTypeID.String(), lr.StartDate.Year())
			if err != nil {
				return err
			}
			if b != nil {
				b.restore(lr.TotalDays)
				if err := qtx.UpdateBalance(ctx, b); err != nil {
					return err
				}
			}
		default:
			return leaveerrors.ErrInvalidStatusTransition
		}
		lr.Status = StatusCancelled
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.LockRequest(ctx, id)
	if err != nil {
		return mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}
	// An approved request holds balance days and must be cancelled first.
	if lr.Status == StatusApproved {
		return leaveerrors.ErrInvalidStatusTransition
	}
	if err := qtx.DeleteRequest(ctx, id); err != nil {
		return mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}
	return tx.Commit()
}

// mutate locks a request inside a transaction, applies fn and saves it. The
// response is read back after commit so it carries the display fields.
func (s *service) mutate(ctx context.Context, id string, fn func(qtx Repository, lr *LeaveRequest) error) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.LockRequest(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}
	if err := fn(qtx, lr); err != nil {
		return LeaveResponse{}, err
	}
	if err := qtx.UpdateRequest(ctx, lr); err != nil {
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	fresh, err := s.repo.FindRequestByID(ctx, id)
	if err != nil {
		return mapToResponse(*lr), nil
	}
	return mapToResponse(*fresh), nil
}

// ensureBalance locks the balance of the type and year, opening it from the
// type's default days on first use.
func (s *service) ensureBalance(ctx context.Context, qtx Repository, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	b, err := qtx.LockBalance(ctx, employeeID, leaveTypeID, year)
	if err != nil || b != nil {
		return b, err
	}

	t, err := qtx.FindTypeByID(ctx, leaveTypeID)
	if err != nil {
		return nil, mapRepositoryError(err, leaveerrors.ErrLeaveTypeNotFound)
	}
	opened, err := openBalance(employeeID, *t, year)
	if err != nil {
		return nil, err
	}
	if err := qtx.CreateBalance(ctx, opened); err != nil {
		return nil, err
	}

	b, err = qtx.LockBalance(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, leaveerrors.ErrBalanceNotFound
	}
	return b, nil
}

func openBalance(employeeID string, t LeaveType, year int) (*LeaveBalance, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrEmployeeNotFound
	}
	return &LeaveBalance{
		ID:            uuid.New(),
		EmployeeID:    empID,
		LeaveTypeID:   t.ID,
		LeaveType:     &t,
		Year:          year,
		TotalDays:     t.DefaultDays,
		RemainingDays: t.DefaultDays,
	}, nil
}

func applyType(t *LeaveType, req LeaveTypeRequest) {
	t.Name = strings.TrimSpace(req.Name)
	t.DefaultDays = req.DefaultDays
	t.RequiresAttachment = req.RequiresAttachment
	t.Description = strings.TrimSpace(req.Description)
}

func actorID(ctx context.Context) *uuid.UUID {
	id, err := uuid.Parse(contextutil.GetUserID(ctx))
	if err != nil {
		return nil
	}
	return &id
}

func mapTypeToResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                 t.ID.String(),
		Name:               t.Name,
		DefaultDays:        t.DefaultDays,
		RequiresAttachment: t.RequiresAttachment,
		Description:        t.Description,
	}
}

func mapBalanceToResponse(b LeaveBalance) BalanceResponse {
	resp := BalanceResponse{
		ID:            b.ID.String(),
		EmployeeID:    b.EmployeeID.String(),
		LeaveTypeID:   b.LeaveTypeID.String(),
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays,
	}
	if b.LeaveType != nil {
		resp.LeaveTypeName = b.LeaveType.Name
	}
	return resp
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                   l.ID.String(),
		EmployeeID:           l.EmployeeID.String(),
		LeaveTypeID:          l.LeaveTypeID.String(),
		StartDate:            dateutil.Format(l.StartDate),
		EndDate:              dateutil.Format(l.EndDate),
		TotalDays:            l.TotalDays,
		Reason:               l.Reason,
		Attachment:           l.Attachment,
		Status:               l.Status,
		SupervisorApproved:   l.SupervisorApproved,
		SupervisorApprovedAt: formatTime(l.SupervisorApprovedAt),
		HRApproved:           l.HRApproved,
		HRApprovedAt:         formatTime(l.HRApprovedAt),
		DeclineReason:        l.DeclineReason,
		CreatedAt:            l.CreatedAt.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.StaffID = l.Employee.StaffID
		resp.EmployeeName = l.Employee.FullName()
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToListResponse(requests []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(requests))
	for i, l := range requests {
		resp[i] = mapToResponse(l)
	}
	return resp
}
