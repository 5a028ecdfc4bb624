package employee

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/cache"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OptionsCacheKey = "employees:options"
	optionsTTL      = time.Hour
	staffIDFormat   = "EMP-%06d"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	CreateImported(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, int64, error)
	Export(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	StaffIDExists(ctx context.Context, staffID string) (bool, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	cache   *cache.Cache
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	c *cache.Cache,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		cache:   c,
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	return s.create(ctx, req, events.EmployeeActionCreated)
}

// CreateImported is Create for spreadsheet rows; listeners see an
// "imported" action instead of "created".
func (s *service) CreateImported(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	return s.create(ctx, req, events.EmployeeActionImported)
}

func (s *service) create(ctx context.Context, req CreateEmployeeRequest, action string) (EmployeeResponse, error) {
	meta := contextutil.ExtractMetadata(ctx)
	s.logger.Debug("create employee requested",
		append(meta.Fields(), zap.String("organization", req.Organization))...,
	)

	empl := &Employee{ID: uuid.New()}
	if err := applyRequest(empl, req); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", meta.RequestID), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if empl.StaffID == "" {
		next, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeStaffID)
		if err != nil {
			s.logger.Error("create employee generate staff id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.StaffID = fmt.Sprintf(staffIDFormat, next)
	} else {
		exists, err := qtx.ExistsByStaffID(ctx, empl.StaffID, "")
		if err != nil {
			return EmployeeResponse{}, err
		}
		if exists {
			return EmployeeResponse{}, employeeerrors.ErrStaffIDAlreadyExists
		}
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.queueAction(ctx, tx, action, *empl); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", meta.RequestID), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	s.logger.Info("create employee success",
		zap.String("request_id", meta.RequestID),
		zap.String("employee_id", empl.ID.String()),
		zap.String("staff_id", empl.StaffID),
	)

	return s.mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, int64, error) {
	req.Params = req.Params.Normalize()

	emps, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, 0, err
	}
	return s.mapToListResponse(emps), total, nil
}

func (s *service) Export(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, error) {
	req.Params = req.Params.Normalize()
	if req.SortBy == "" {
		req.SortOrder = "asc"
	}

	emps, err := s.repo.FindAllUnpaged(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(emps), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	return cache.Remember(ctx, s.cache, OptionsCacheKey, optionsTTL, func(ctx context.Context) ([]EmployeeOption, error) {
		emps, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]EmployeeOption, len(emps))
		for i, e := range emps {
			opts[i] = EmployeeOption{
				ID:           e.ID.String(),
				StaffID:      e.StaffID,
				FullName:     e.FullNameEN(),
				Organization: e.Organization,
			}
		}
		return opts, nil
	})
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*empl), nil
}

func (s *service) StaffIDExists(ctx context.Context, staffID string) (bool, error) {
	return s.repo.ExistsByStaffID(ctx, strings.TrimSpace(staffID), "")
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	staffID := empl.StaffID
	if err := applyRequest(empl, req); err != nil {
		return EmployeeResponse{}, err
	}
	if empl.StaffID == "" {
		empl.StaffID = staffID
	}
	if empl.StaffID != staffID {
		exists, err := qtx.ExistsByStaffID(ctx, empl.StaffID, id)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if exists {
			return EmployeeResponse{}, employeeerrors.ErrStaffIDAlreadyExists
		}
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.queueAction(ctx, tx, events.EmployeeActionUpdated, *empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return s.mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.queueAction(ctx, tx, events.EmployeeActionDeleted, *empl); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) BulkDelete(ctx context.Context, ids []string) (int, error) {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return 0, employeeerrors.ErrInvalidEmployeeID
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emps, err := qtx.FindByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if len(emps) == 0 {
		return 0, employeeerrors.ErrEmployeeNotFound
	}

	found := make([]string, len(emps))
	for i, e := range emps {
		found[i] = e.ID.String()
	}
	deleted, err := qtx.DeleteMany(ctx, found)
	if err != nil {
		return 0, err
	}
	for _, e := range emps {
		if err := s.queueAction(ctx, tx, events.EmployeeActionDeleted, e); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	s.logger.Info("bulk delete employees success",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deleted),
	)
	return int(deleted), nil
}

// queueAction writes the employee-action event to the outbox inside tx.
func (s *service) queueAction(ctx context.Context, tx *sql.Tx, action string, empl Employee) error {
	event := events.EmployeeActionEvent{
		EventType:  "employee.action",
		Action:     action,
		EmployeeID: empl.ID.String(),
		StaffID:    empl.StaffID,
		ActorID:    contextutil.GetUserID(ctx),
		OccurredAt: s.now().UTC(),
	}
	row, err := kafka.NewEvent(ctx, "employee", event.EmployeeID, "employee."+action, events.EmployeeLifecycleTopic, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, row)
}

func applyRequest(empl *Employee, req CreateEmployeeRequest) error {
	dob, err := dateutil.ParseOptional(req.DateOfBirth)
	if err != nil {
		return employeeerrors.ErrInvalidDateOfBirth
	}
	if req.HasSpouse && req.MaritalStatus != "" && req.MaritalStatus != "married" {
		return employeeerrors.ErrSpouseNotMarried
	}

	empl.StaffID = strings.TrimSpace(req.StaffID)
	empl.Organization = strings.TrimSpace(req.Organization)
	empl.Initial = req.Initial
	empl.FirstNameEN = strings.TrimSpace(req.FirstNameEN)
	empl.LastNameEN = strings.TrimSpace(req.LastNameEN)
	empl.FirstNameTH = strings.TrimSpace(req.FirstNameTH)
	empl.LastNameTH = strings.TrimSpace(req.LastNameTH)
	empl.Gender = req.Gender
	empl.DateOfBirth = dob
	empl.Status = req.Status
	empl.Nationality = req.Nationality
	empl.Religion = req.Religion
	empl.IdentificationType = req.IdentificationType
	empl.IdentificationNumber = strings.TrimSpace(req.IdentificationNumber)
	empl.MaritalStatus = req.MaritalStatus
	empl.HasSpouse = req.HasSpouse
	empl.SpouseHasIncome = req.HasSpouse && req.SpouseHasIncome
	empl.NumberOfChildren = req.NumberOfChildren
	empl.MobilePhone = req.MobilePhone
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.CurrentAddress = req.CurrentAddress
	empl.PermanentAddress = req.PermanentAddress
	empl.BankName = req.BankName
	empl.BankBranch = req.BankBranch
	empl.BankAccountName = req.BankAccountName
	empl.BankAccountNumber = req.BankAccountNumber
	empl.EligibleForPVD = req.EligibleForPVD
	empl.EligibleForSavingFund = req.EligibleForSavingFund
	return nil
}

func (s *service) mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                    empl.ID.String(),
		StaffID:               empl.StaffID,
		Organization:          empl.Organization,
		Initial:               empl.Initial,
		FirstNameEN:           empl.FirstNameEN,
		LastNameEN:            empl.LastNameEN,
		FirstNameTH:           empl.FirstNameTH,
		LastNameTH:            empl.LastNameTH,
		FullName:              empl.FullNameEN(),
		Gender:                empl.Gender,
		DateOfBirth:           dateutil.FormatPtr(empl.DateOfBirth),
		Status:                empl.Status,
		Nationality:           empl.Nationality,
		Religion:              empl.Religion,
		IdentificationType:    empl.IdentificationType,
		IdentificationNumber:  empl.IdentificationNumber,
		MaritalStatus:         empl.MaritalStatus,
		HasSpouse:             empl.HasSpouse,
		SpouseHasIncome:       empl.SpouseHasIncome,
		NumberOfChildren:      empl.NumberOfChildren,
		MobilePhone:           empl.MobilePhone,
		Email:                 empl.Email,
		CurrentAddress:        empl.CurrentAddress,
		PermanentAddress:      empl.PermanentAddress,
		BankName:              empl.BankName,
		BankBranch:            empl.BankBranch,
		BankAccountName:       empl.BankAccountName,
		BankAccountNumber:     empl.BankAccountNumber,
		EligibleForPVD:        empl.EligibleForPVD,
		EligibleForSavingFund: empl.EligibleForSavingFund,
	}
	if empl.DateOfBirth != nil {
		age := ageAt(*empl.DateOfBirth, s.now())
		resp.Age = &age
	}
	if !empl.CreatedAt.IsZero() {
		resp.CreatedAt = empl.CreatedAt.Format(time.RFC3339)
	}
	if !empl.UpdatedAt.IsZero() {
		resp.UpdatedAt = empl.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func (s *service) mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = s.mapToResponse(e)
	}
	return res
}

func ageAt(dob, ref time.Time) int {
	age := ref.Year() - dob.Year()
	if ref.Month() < dob.Month() || (ref.Month() == dob.Month() && ref.Day() < dob.Day()) {
		age--
	}
	return age
}
