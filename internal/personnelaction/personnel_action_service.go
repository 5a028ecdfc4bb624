package personnelaction

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employment"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	personnelactionerrors "go-hrms/internal/personnelaction/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=personnel_action_service.go -destination=mock/personnel_action_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, req ListPersonnelActionsRequest) ([]PersonnelActionResponse, int64, error)
	GetByID(ctx context.Context, id string) (PersonnelActionResponse, error)
	Create(ctx context.Context, req PersonnelActionRequest) (PersonnelActionResponse, error)
	Update(ctx context.Context, id string, req PersonnelActionRequest) (PersonnelActionResponse, error)
	Approve(ctx context.Context, id string, req ApprovalRequest) (PersonnelActionResponse, error)
	Delete(ctx context.Context, id string) error
}

// AllocationSync is satisfied by allocation.Service.
type AllocationSync interface {
	RecalculateForEmployment(ctx context.Context, tx *sql.Tx, emp employment.Employment, ref time.Time) error
}

// Notifier is satisfied by notification.Service.
type Notifier interface {
	NotifyUsers(ctx context.Context, userIDs []string, in notification.Input) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	employments employment.Repository
	allocations AllocationSync
	outbox      kafka.OutboxRepository
	notifier    Notifier
	audit       bootstrap.AuditLogger
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employments employment.Repository,
	allocations AllocationSync,
	outboxRepo kafka.OutboxRepository,
	notifier Notifier,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("personnelaction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("personnelaction.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employments: employments,
		allocations: allocations,
		outbox:      outboxRepo,
		notifier:    notifier,
		audit:       audit,
		logger:      l,
		now:         time.Now,
	}
}

func (s *service) GetAll(ctx context.Context, req ListPersonnelActionsRequest) ([]PersonnelActionResponse, int64, error) {
	req.Params = req.Params.Normalize()

	actions, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]PersonnelActionResponse, len(actions))
	for i, a := range actions {
		resp[i] = mapToResponse(a)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PersonnelActionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PersonnelActionResponse{}, personnelactionerrors.ErrInvalidActionID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonnelActionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*a), nil
}

func (s *service) Create(ctx context.Context, req PersonnelActionRequest) (PersonnelActionResponse, error) {
	a := &PersonnelAction{ID: uuid.New(), Status: StatusPending}
	if id, err := uuid.Parse(contextutil.GetUserID(ctx)); err == nil {
		a.CreatedBy = &id
	}
	if err := s.apply(ctx, a, req); err != nil {
		return PersonnelActionResponse{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return PersonnelActionResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("personnel action requested",
		zap.String("personnel_action_id", a.ID.String()),
		zap.String("employment_id", a.EmploymentID.String()),
		zap.String("action_type", a.ActionType),
	)
	return s.reload(ctx, a)
}

func (s *service) Update(ctx context.Context, id string, req PersonnelActionRequest) (PersonnelActionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PersonnelActionResponse{}, personnelactionerrors.ErrInvalidActionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PersonnelActionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.LockByID(ctx, id)
	if err != nil {
		return PersonnelActionResponse{}, mapRepositoryError(err)
	}
	if a.Status != StatusPending {
		return PersonnelActionResponse{}, personnelactionerrors.ErrOnlyPending
	}
	if err := s.apply(ctx, a, req); err != nil {
		return PersonnelActionResponse{}, err
	}
	if err := qtx.Update(ctx, a); err != nil {
		return PersonnelActionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PersonnelActionResponse{}, err
	}
	return s.reload(ctx, a)
}

// Approve records one approver's decision. A rejection closes the action;
// the fourth approval applies it to the employment in the same transaction.
func (s *service) Approve(ctx context.Context, id string, req ApprovalRequest) (PersonnelActionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PersonnelActionResponse{}, personnelactionerrors.ErrInvalidActionID
	}
	approved := req.Approved != nil && *req.Approved

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PersonnelActionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.LockByID(ctx, id)
	if err != nil {
		return PersonnelActionResponse{}, mapRepositoryError(err)
	}
	if a.Status != StatusPending {
		return PersonnelActionResponse{}, personnelactionerrors.ErrOnlyPending
	}

	now := s.now().UTC()
	switch {
	case !approved:
		a.Status = StatusRejected
		a.RejectedBy = req.Approver
	case !a.approve(req.Approver, now):
		return PersonnelActionResponse{}, personnelactionerrors.ErrAlreadyApproved
	case a.fullyApproved():
		if err := s.applyToEmployment(ctx, tx, a); err != nil {
			return PersonnelActionResponse{}, err
		}
		a.Status = StatusApplied
		a.AppliedAt = &now
	}

	if err := qtx.Update(ctx, a); err != nil {
		return PersonnelActionResponse{}, mapRepositoryError(err)
	}

	if a.Status == StatusApplied {
		if err := s.queueApplied(ctx, tx, a); err != nil {
			return PersonnelActionResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PersonnelActionResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("personnel action decision",
		zap.String("personnel_action_id", id),
		zap.String("approver", req.Approver),
		zap.Bool("approved", approved),
		zap.String("status", a.Status),
	)
	if a.Status != StatusPending {
		s.finish(ctx, *a)
	}
	return s.reload(ctx, a)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return personnelactionerrors.ErrInvalidActionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.LockByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if a.Status == StatusApplied {
		return personnelactionerrors.ErrCannotDeleteApplied
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

// applyToEmployment moves the employment onto the proposed department,
// position, salary and location, then reprices its allocations.
func (s *service) applyToEmployment(ctx context.Context, tx *sql.Tx, a *PersonnelAction) error {
	etx := s.employments.WithTx(tx)

	emp, err := etx.LockByID(ctx, a.EmploymentID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return personnelactionerrors.ErrEmploymentNotFound
		}
		return err
	}
	if emp.Status != employment.StatusActive {
		return personnelactionerrors.ErrEmploymentInactive
	}

	if a.NewDepartmentID != nil {
		emp.DepartmentID = *a.NewDepartmentID
	}
	if a.NewPositionID != nil {
		emp.PositionID = *a.NewPositionID
	}
	if a.NewWorkLocation != nil {
		emp.WorkLocation = *a.NewWorkLocation
	}
	if a.NewSalary != nil {
		v := *a.NewSalary
		_, tier := employment.ActiveSalary(*emp, a.EffectiveDate)
		if tier == employment.SalaryTypeProbation {
			emp.ProbationSalary = &v
		} else {
			emp.PassProbationSalary = v
		}
	}
	emp.Department = nil
	emp.Position = nil
	emp.Employee = nil

	if err := etx.Update(ctx, emp); err != nil {
		return err
	}

	ref := a.EffectiveDate
	if today := dateutil.Truncate(s.now()); ref.Before(today) {
		ref = today
	}
	return s.allocations.RecalculateForEmployment(ctx, tx, *emp, ref)
}

func (s *service) queueApplied(ctx context.Context, tx *sql.Tx, a *PersonnelAction) error {
	event := events.EmployeeActionEvent{
		EventType:  "employee.action",
		Action:     events.EmployeeActionPersonnelAction,
		EmployeeID: a.EmployeeID.String(),
		ActorID:    contextutil.GetUserID(ctx),
		OccurredAt: s.now().UTC(),
	}
	row, err := kafka.NewEvent(ctx, "personnel_action", a.ID.String(), "employee."+event.Action, events.EmployeeLifecycleTopic, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, row)
}

// finish writes the audit entry and tells the requester about the outcome.
// Failures here are logged only; the decision is already committed.
func (s *service) finish(ctx context.Context, a PersonnelAction) {
	auditAction := "PERSONNEL_ACTION_REJECTED"
	title := "Personnel action rejected"
	message := "The " + humanType(a.ActionType) + " request was rejected by " + a.RejectedBy + "."
	if a.Status == StatusApplied {
		auditAction = "PERSONNEL_ACTION_APPLIED"
		title = "Personnel action applied"
		message = "The " + humanType(a.ActionType) + " request was approved and applied effective " + dateutil.Format(a.EffectiveDate) + "."
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  auditAction,
		Message: message,
		Meta: map[string]any{
			"personnel_action_id": a.ID.String(),
			"employment_id":       a.EmploymentID.String(),
			"employee_id":         a.EmployeeID.String(),
			"action_type":         a.ActionType,
		},
	})

	if a.CreatedBy == nil {
		return
	}
	err := s.notifier.NotifyUsers(ctx, []string{a.CreatedBy.String()}, notification.Input{
		Type:    notification.TypePersonnelAction,
		Title:   title,
		Message: message,
		Data: map[string]string{
			"personnel_action_id": a.ID.String(),
			"status":              a.Status,
		},
	})
	if err != nil {
		s.logger.Warn("personnel action notification failed", zap.String("personnel_action_id", a.ID.String()), zap.Error(err))
	}
}

// apply snapshots the employment's current terms and validates the proposal
// against the action type.
func (s *service) apply(ctx context.Context, a *PersonnelAction, req PersonnelActionRequest) error {
	effective, err := dateutil.Parse(req.EffectiveDate)
	if err != nil {
		return personnelactionerrors.ErrInvalidDate
	}

	emp, err := s.employments.FindByID(ctx, req.EmploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return personnelactionerrors.ErrEmploymentNotFound
		}
		return err
	}
	if emp.Status != employment.StatusActive {
		return personnelactionerrors.ErrEmploymentInactive
	}

	newDept := parseOptionalID(req.NewDepartmentID)
	newPos := parseOptionalID(req.NewPositionID)
	switch req.ActionType {
	case TypeTransfer:
		if newDept == nil {
			return personnelactionerrors.ErrDepartmentRequired
		}
	case TypePromotion, TypePositionChange:
		if newPos == nil {
			return personnelactionerrors.ErrPositionRequired
		}
	case TypeSalaryChange:
		if req.NewSalary == nil {
			return personnelactionerrors.ErrSalaryRequired
		}
	}

	salary, _ := employment.ActiveSalary(*emp, effective)
	var location *string
	if req.NewWorkLocation != nil {
		v := strings.TrimSpace(*req.NewWorkLocation)
		location = &v
	}

	changed := (newDept != nil && *newDept != emp.DepartmentID) ||
		(newPos != nil && *newPos != emp.PositionID) ||
		(req.NewSalary != nil && *req.NewSalary != salary) ||
		(location != nil && *location != emp.WorkLocation)
	if !changed {
		return personnelactionerrors.ErrNoChange
	}

	a.EmploymentID = emp.ID
	a.EmployeeID = emp.EmployeeID
	a.ActionType = req.ActionType
	a.CurrentDepartmentID = emp.DepartmentID
	a.CurrentPositionID = emp.PositionID
	a.CurrentSalary = salary
	a.CurrentWorkLocation = emp.WorkLocation
	a.NewDepartmentID = newDept
	a.NewPositionID = newPos
	a.NewSalary = req.NewSalary
	a.NewWorkLocation = location
	a.EffectiveDate = effective
	a.Reason = strings.TrimSpace(req.Reason)
	return nil
}

func (s *service) reload(ctx context.Context, a *PersonnelAction) (PersonnelActionResponse, error) {
	fresh, err := s.repo.FindByID(ctx, a.ID.String())
	if err != nil {
		return mapToResponse(*a), nil
	}
	return mapToResponse(*fresh), nil
}

func humanType(t string) string {
	return strings.ReplaceAll(t, "_", " ")
}

func parseOptionalID(v *string) *uuid.UUID {
	if v == nil || *v == "" {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(a PersonnelAction) PersonnelActionResponse {
	resp := PersonnelActionResponse{
		ID:                  a.ID.String(),
		EmploymentID:        a.EmploymentID.String(),
		EmployeeID:          a.EmployeeID.String(),
		ActionType:          a.ActionType,
		CurrentDepartmentID: a.CurrentDepartmentID.String(),
		CurrentPositionID:   a.CurrentPositionID.String(),
		CurrentSalary:       a.CurrentSalary,
		CurrentWorkLocation: a.CurrentWorkLocation,
		NewDepartmentID:     idString(a.NewDepartmentID),
		NewPositionID:       idString(a.NewPositionID),
		NewSalary:           a.NewSalary,
		NewWorkLocation:     a.NewWorkLocation,
		EffectiveDate:       dateutil.Format(a.EffectiveDate),
		Reason:              a.Reason,
		Approvals: ApprovalsResponse{
			DeptHead:   a.DeptHeadApproved,
			COO:        a.COOApproved,
			HR:         a.HRApproved,
			Accountant: a.AccountantApproved,
		},
		RejectedBy: a.RejectedBy,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
	if a.AppliedAt != nil {
		v := a.AppliedAt.Format(time.RFC3339)
		resp.AppliedAt = &v
	}
	if a.Employee != nil {
		resp.StaffID = a.Employee.StaffID
		resp.EmployeeName = a.Employee.FullName()
	}
	if a.NewDepartment != nil {
		resp.NewDepartmentName = a.NewDepartment.Name
	}
	if a.NewPosition != nil {
		resp.NewPositionTitle = a.NewPosition.Title
	}
	return resp
}
