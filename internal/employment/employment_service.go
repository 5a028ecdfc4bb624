package employment

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/domain"
	employmenterrors "go-hrms/internal/employment/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employment_service.go -destination=mock/employment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmploymentRequest) (EmploymentResponse, error)
	GetAll(ctx context.Context, req ListEmploymentsRequest) ([]EmploymentResponse, int64, error)
	GetByID(ctx context.Context, id string) (EmploymentResponse, error)
	Update(ctx context.Context, id string, req UpdateEmploymentRequest) (EmploymentResponse, error)
	Delete(ctx context.Context, id string) error
	ProbationHistory(ctx context.Context, id string) ([]ProbationRecordResponse, error)
	CompleteProbation(ctx context.Context, id string, req ProbationDecisionRequest) (EmploymentResponse, error)
	ExtendProbation(ctx context.Context, id string, req ExtendProbationRequest) (EmploymentResponse, error)
	FailProbation(ctx context.Context, id string, req ProbationDecisionRequest) (EmploymentResponse, error)
	ProcessProbationTransitions(ctx context.Context, today time.Time) (TransitionResult, error)
}

// AllocationSync keeps funding allocations in step with salary and status
// changes. Both calls run inside the caller's transaction.
type AllocationSync interface {
	RecalculateForEmployment(ctx context.Context, tx *sql.Tx, emp Employment, ref time.Time) error
	EndForEmployment(ctx context.Context, tx *sql.Tx, employmentID string, endDate time.Time) error
}

type Notifier interface {
	NotifyRoles(ctx context.Context, roles []string, in notification.Input) error
}

var hrRoles = []string{domain.RoleHRManager, domain.RoleHRAssistant}

type service struct {
	db          *sql.DB
	repo        Repository
	allocations AllocationSync
	outbox      kafka.OutboxRepository
	notifier    Notifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	allocations AllocationSync,
	outboxRepo kafka.OutboxRepository,
	notifier Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employment.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		allocations: allocations,
		outbox:      outboxRepo,
		notifier:    notifier,
		logger:      l,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmploymentRequest) (EmploymentResponse, error) {
	meta := contextutil.ExtractMetadata(ctx)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EmploymentResponse{}, employmenterrors.ErrEmployeeNotFound
	}
	emp := &Employment{ID: uuid.New(), EmployeeID: employeeID}
	if err := applyRequest(emp, req.UpdateEmploymentRequest); err != nil {
		return EmploymentResponse{}, err
	}
	if emp.PassProbationDate == nil {
		emp.ProbationStatus = ProbationPassed
	} else {
		emp.ProbationStatus = ProbationOngoing
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employment begin tx failed", zap.String("request_id", meta.RequestID), zap.Error(err))
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if emp.Status == StatusActive {
		exists, err := qtx.HasActive(ctx, req.EmployeeID, "")
		if err != nil {
			return EmploymentResponse{}, err
		}
		if exists {
			return EmploymentResponse{}, employmenterrors.ErrActiveEmploymentExists
		}
	}

	if err := qtx.Create(ctx, emp); err != nil {
		s.logger.Error("create employment persist failed", zap.Error(err))
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	if emp.PassProbationDate != nil {
		rec := s.newRecord(ctx, *emp, RecordInitial, emp.StartDate)
		rec.ProbationEndDate = emp.PassProbationDate
		if err := qtx.CreateProbationRecord(ctx, rec); err != nil {
			return EmploymentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employment commit failed", zap.Error(err))
		return EmploymentResponse{}, err
	}

	s.logger.Info("create employment success",
		zap.String("request_id", meta.RequestID),
		zap.String("employment_id", emp.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return s.GetByID(ctx, emp.ID.String())
}

func (s *service) GetAll(ctx context.Context, req ListEmploymentsRequest) ([]EmploymentResponse, int64, error) {
	req.Params = req.Params.Normalize()

	emps, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		s.logger.Error("get all employments failed", zap.Error(err))
		return nil, 0, err
	}

	today := s.now()
	resp := make([]EmploymentResponse, len(emps))
	for i, e := range emps {
		resp[i] = mapToResponse(e, today)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmploymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidEmploymentID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp, s.now()), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmploymentRequest) (EmploymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidEmploymentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employment begin tx failed", zap.Error(err))
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.LockByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}
	before := *emp

	if err := applyRequest(emp, req); err != nil {
		return EmploymentResponse{}, err
	}
	if emp.PassProbationDate == nil && emp.OnProbation() {
		emp.ProbationStatus = ProbationPassed
	}

	if emp.Status == StatusActive && before.Status != StatusActive {
		exists, err := qtx.HasActive(ctx, emp.EmployeeID.String(), id)
		if err != nil {
			return EmploymentResponse{}, err
		}
		if exists {
			return EmploymentResponse{}, employmenterrors.ErrActiveEmploymentExists
		}
	}

	if err := qtx.Update(ctx, emp); err != nil {
		s.logger.Error("update employment persist failed", zap.Error(err))
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	today := dateutil.Truncate(s.now())
	switch {
	case emp.Status == StatusInactive && before.Status == StatusActive:
		end := today
		if emp.EndDate != nil {
			end = *emp.EndDate
		}
		if err := s.allocations.EndForEmployment(ctx, tx, id, end); err != nil {
			return EmploymentResponse{}, err
		}
	case salaryTermsChanged(before, *emp):
		if err := s.allocations.RecalculateForEmployment(ctx, tx, *emp, today); err != nil {
			return EmploymentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employment commit failed", zap.Error(err))
		return EmploymentResponse{}, err
	}

	s.logger.Info("update employment success", zap.String("employment_id", id))
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employmenterrors.ErrInvalidEmploymentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.allocations.EndForEmployment(ctx, tx, id, dateutil.Truncate(s.now())); err != nil {
		return err
	}
	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("delete employment failed", zap.String("employment_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete employment success", zap.String("employment_id", id))
	return nil
}

func (s *service) ProbationHistory(ctx context.Context, id string) ([]ProbationRecordResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employmenterrors.ErrInvalidEmploymentID
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	recs, err := s.repo.FindProbationRecords(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]ProbationRecordResponse, len(recs))
	for i, r := range recs {
		resp[i] = mapRecordToResponse(r)
	}
	return resp, nil
}

func (s *service) CompleteProbation(ctx context.Context, id string, req ProbationDecisionRequest) (EmploymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidEmploymentID
	}
	date, err := s.decisionDate(req.Date)
	if err != nil {
		return EmploymentResponse{}, err
	}

	if _, err := s.passProbation(ctx, id, date, req.Reason, req.Notes, false); err != nil {
		return EmploymentResponse{}, err
	}
	return s.GetByID(ctx, id)
}

func (s *service) ExtendProbation(ctx context.Context, id string, req ExtendProbationRequest) (EmploymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidEmploymentID
	}
	newDate, err := dateutil.Parse(req.NewPassProbationDate)
	if err != nil {
		return EmploymentResponse{}, employmenterrors.ErrExtensionNotLater
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.LockByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}
	if emp.PassProbationDate == nil {
		return EmploymentResponse{}, employmenterrors.ErrNoProbationPeriod
	}
	if !emp.OnProbation() {
		return EmploymentResponse{}, employmenterrors.ErrProbationAlreadyDecided
	}
	if !newDate.After(dateutil.Truncate(*emp.PassProbationDate)) {
		return EmploymentResponse{}, employmenterrors.ErrExtensionNotLater
	}

	extensions, err := qtx.CountProbationRecords(ctx, id, RecordExtension)
	if err != nil {
		return EmploymentResponse{}, err
	}

	previous := *emp.PassProbationDate
	emp.PassProbationDate = &newDate
	emp.ProbationStatus = ProbationExtended
	if err := qtx.Update(ctx, emp); err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	rec := s.newRecord(ctx, *emp, RecordExtension, dateutil.Truncate(s.now()))
	rec.ProbationEndDate = &newDate
	rec.PreviousEndDate = &previous
	rec.ExtensionNumber = int(extensions) + 1
	rec.Reason = req.Reason
	rec.Notes = req.Notes
	if err := s.replaceActiveRecord(ctx, qtx, rec); err != nil {
		return EmploymentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmploymentResponse{}, err
	}

	s.logger.Info("probation extended",
		zap.String("employment_id", id),
		zap.String("previous_date", dateutil.Format(previous)),
		zap.String("new_date", req.NewPassProbationDate),
	)
	return s.GetByID(ctx, id)
}

// FailProbation ends the employment on the decision date and closes its
// funding allocations.
func (s *service) FailProbation(ctx context.Context, id string, req ProbationDecisionRequest) (EmploymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidEmploymentID
	}
	date, err := s.decisionDate(req.Date)
	if err != nil {
		return EmploymentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.LockByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}
	if emp.PassProbationDate == nil {
		return EmploymentResponse{}, employmenterrors.ErrNoProbationPeriod
	}
	if !emp.OnProbation() {
		return EmploymentResponse{}, employmenterrors.ErrProbationAlreadyDecided
	}

	emp.ProbationStatus = ProbationFailed
	emp.Status = StatusInactive
	emp.EndDate = &date
	if err := qtx.Update(ctx, emp); err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	rec := s.newRecord(ctx, *emp, RecordFailed, date)
	rec.ProbationEndDate = &date
	rec.Reason = req.Reason
	rec.Notes = req.Notes
	if err := s.replaceActiveRecord(ctx, qtx, rec); err != nil {
		return EmploymentResponse{}, err
	}

	if err := s.allocations.EndForEmployment(ctx, tx, id, date); err != nil {
		return EmploymentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmploymentResponse{}, err
	}

	s.logger.Info("probation failed", zap.String("employment_id", id), zap.String("date", dateutil.Format(date)))
	return s.GetByID(ctx, id)
}

// ProcessProbationTransitions passes every undecided probation whose
// pass-probation date is on or before today. Rows already passed are left
// alone, so a second run on the same day is a no-op.
func (s *service) ProcessProbationTransitions(ctx context.Context, today time.Time) (TransitionResult, error) {
	today = dateutil.Truncate(today)

	due, err := s.repo.FindDueProbation(ctx, today)
	if err != nil {
		s.logger.Error("find due probations failed", zap.Error(err))
		return TransitionResult{}, err
	}

	res := TransitionResult{Due: len(due), Passed: []string{}}
	for _, e := range due {
		passed, err := s.passProbation(ctx, e.ID.String(), dateutil.Truncate(*e.PassProbationDate), "", "", true)
		if err != nil {
			res.Failed++
			s.logger.Error("probation transition failed", zap.String("employment_id", e.ID.String()), zap.Error(err))
			continue
		}
		if passed == nil {
			continue
		}
		res.Passed = append(res.Passed, e.ID.String())
		s.notifyPassed(ctx, e)
	}

	s.logger.Info("probation transitions processed",
		zap.String("date", dateutil.Format(today)),
		zap.Int("due", res.Due),
		zap.Int("passed", len(res.Passed)),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

// passProbation flips one employment to passed, recalculates its allocations
// and queues a probation_passed event. A nil employment with a nil error
// means the probation was already decided and automatic is set.
func (s *service) passProbation(ctx context.Context, id string, date time.Time, reason, notes string, automatic bool) (*Employment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.LockByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if emp.PassProbationDate == nil {
		return nil, employmenterrors.ErrNoProbationPeriod
	}
	if !emp.OnProbation() || emp.Status != StatusActive {
		if automatic {
			return nil, nil
		}
		return nil, employmenterrors.ErrProbationAlreadyDecided
	}

	if !automatic {
		emp.PassProbationDate = &date
	}
	emp.ProbationStatus = ProbationPassed
	if err := qtx.Update(ctx, emp); err != nil {
		return nil, mapRepositoryError(err)
	}

	rec := s.newRecord(ctx, *emp, RecordPassed, date)
	rec.ProbationEndDate = &date
	rec.Reason = reason
	rec.Notes = notes
	if err := s.replaceActiveRecord(ctx, qtx, rec); err != nil {
		return nil, err
	}

	if err := s.allocations.RecalculateForEmployment(ctx, tx, *emp, date); err != nil {
		return nil, err
	}

	event := events.EmployeeActionEvent{
		EventType:  "employee.action",
		Action:     events.EmployeeActionProbationPassed,
		EmployeeID: emp.EmployeeID.String(),
		ActorID:    contextutil.GetUserID(ctx),
		OccurredAt: s.now().UTC(),
	}
	row, err := kafka.NewEvent(ctx, "employment", id, "employee."+event.Action, events.EmployeeLifecycleTopic, event)
	if err != nil {
		return nil, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("probation passed",
		zap.String("employment_id", id),
		zap.Bool("automatic", automatic),
		zap.String("date", dateutil.Format(date)),
	)
	return emp, nil
}

func (s *service) notifyPassed(ctx context.Context, e Employment) {
	name, staffID := "", ""
	if e.Employee != nil {
		name = e.Employee.FirstNameEN + " " + e.Employee.LastNameEN
		staffID = e.Employee.StaffID
	}
	err := s.notifier.NotifyRoles(ctx, hrRoles, notification.Input{
		Type:    notification.TypeProbationCompleted,
		Title:   "Probation completed",
		Message: name + " (" + staffID + ") has completed probation; funding allocations now use the post-probation salary.",
		Data: map[string]string{
			"employment_id": e.ID.String(),
			"employee_id":   e.EmployeeID.String(),
		},
	})
	if err != nil {
		s.logger.Warn("probation notification failed", zap.String("employment_id", e.ID.String()), zap.Error(err))
	}
}

func (s *service) replaceActiveRecord(ctx context.Context, qtx Repository, rec *ProbationRecord) error {
	if err := qtx.DeactivateProbationRecords(ctx, rec.EmploymentID.String()); err != nil {
		return err
	}
	return qtx.CreateProbationRecord(ctx, rec)
}

func (s *service) newRecord(ctx context.Context, emp Employment, eventType string, date time.Time) *ProbationRecord {
	rec := &ProbationRecord{
		ID:                 uuid.New(),
		EmploymentID:       emp.ID,
		EventType:          eventType,
		EventDate:          date,
		ProbationStartDate: emp.StartDate,
		IsActive:           true,
	}
	if actor, err := uuid.Parse(contextutil.GetUserID(ctx)); err == nil {
		rec.ActorID = &actor
	}
	return rec
}

func (s *service) decisionDate(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return dateutil.Truncate(s.now()), nil
	}
	d, err := dateutil.Parse(*raw)
	if err != nil {
		return time.Time{}, employmenterrors.ErrInvalidDecisionDate
	}
	return d, nil
}

func applyRequest(emp *Employment, req UpdateEmploymentRequest) error {
	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		return employmenterrors.ErrInvalidStartDate
	}
	end, err := dateutil.ParseOptional(req.EndDate)
	if err != nil || (end != nil && end.Before(start)) {
		return employmenterrors.ErrInvalidEndDate
	}
	pass, err := dateutil.ParseOptional(req.PassProbationDate)
	if err != nil || (pass != nil && !pass.After(start)) {
		return employmenterrors.ErrInvalidProbationDate
	}
	if req.ProbationSalary != nil && pass == nil {
		return employmenterrors.ErrProbationDateRequired
	}

	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return employmenterrors.ErrDepartmentNotFound
	}
	positionID, err := uuid.Parse(req.PositionID)
	if err != nil {
		return employmenterrors.ErrPositionNotFound
	}

	emp.DepartmentID = departmentID
	emp.PositionID = positionID
	emp.EmploymentType = req.EmploymentType
	emp.PayMethod = req.PayMethod
	emp.WorkLocation = req.WorkLocation
	emp.StartDate = start
	emp.EndDate = end
	emp.PassProbationDate = pass
	emp.ProbationSalary = req.ProbationSalary
	emp.PassProbationSalary = req.PassProbationSalary
	emp.HealthWelfare = req.HealthWelfare
	emp.PVD = req.PVD
	emp.SavingFund = req.SavingFund
	emp.Status = req.Status
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	return nil
}

func salaryTermsChanged(a, b Employment) bool {
	if a.PassProbationSalary != b.PassProbationSalary || !sameInt64(a.ProbationSalary, b.ProbationSalary) {
		return true
	}
	if !sameDate(a.PassProbationDate, b.PassProbationDate) {
		return true
	}
	return a.ProbationStatus != b.ProbationStatus
}

func sameInt64(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return dateutil.Truncate(*a).Equal(dateutil.Truncate(*b))
}

func mapToResponse(e Employment, ref time.Time) EmploymentResponse {
	salary, salaryType := ActiveSalary(e, ref)
	resp := EmploymentResponse{
		ID:                  e.ID.String(),
		EmployeeID:          e.EmployeeID.String(),
		DepartmentID:        e.DepartmentID.String(),
		PositionID:          e.PositionID.String(),
		EmploymentType:      e.EmploymentType,
		PayMethod:           e.PayMethod,
		WorkLocation:        e.WorkLocation,
		StartDate:           dateutil.Format(e.StartDate),
		EndDate:             dateutil.FormatPtr(e.EndDate),
		PassProbationDate:   dateutil.FormatPtr(e.PassProbationDate),
		ProbationSalary:     e.ProbationSalary,
		PassProbationSalary: e.PassProbationSalary,
		ProbationStatus:     e.ProbationStatus,
		ActiveSalary:        salary,
		ActiveSalaryType:    salaryType,
		HealthWelfare:       e.HealthWelfare,
		PVD:                 e.PVD,
		SavingFund:          e.SavingFund,
		Status:              e.Status,
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           e.UpdatedAt.Format(time.RFC3339),
	}
	if e.Employee != nil {
		resp.StaffID = e.Employee.StaffID
		resp.EmployeeName = e.Employee.FirstNameEN + " " + e.Employee.LastNameEN
		resp.Organization = e.Employee.Organization
	}
	if e.Department != nil {
		resp.DepartmentName = e.Department.Name
	}
	if e.Position != nil {
		resp.PositionTitle = e.Position.Title
	}
	return resp
}

func mapRecordToResponse(r ProbationRecord) ProbationRecordResponse {
	resp := ProbationRecordResponse{
		ID:                 r.ID.String(),
		EventType:          r.EventType,
		EventDate:          dateutil.Format(r.EventDate),
		ProbationStartDate: dateutil.Format(r.ProbationStartDate),
		ProbationEndDate:   dateutil.FormatPtr(r.ProbationEndDate),
		PreviousEndDate:    dateutil.FormatPtr(r.PreviousEndDate),
		ExtensionNumber:    r.ExtensionNumber,
		Reason:             r.Reason,
		Notes:              r.Notes,
		IsActive:           r.IsActive,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
	if r.ActorID != nil {
		v := r.ActorID.String()
		resp.ActorID = &v
	}
	return resp
}
