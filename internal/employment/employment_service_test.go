package employment_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/employment"
	employmenterrors "go-hrms/internal/employment/errors"
	"go-hrms/internal/notification"

	employmentMock "go-hrms/internal/employment/mock"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	sqlMock     sqlmock.Sqlmock
	service     employment.Service
	repo        *employmentMock.MockRepository
	allocations *employmentMock.MockAllocationSync
	notifier    *employmentMock.MockNotifier
	outbox      *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := employmentMock.NewMockRepository(ctrl)
	allocations := employmentMock.NewMockAllocationSync(ctrl)
	notifier := employmentMock.NewMockNotifier(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		sqlMock:     sqlMock,
		service:     employment.NewService(db, repo, allocations, outboxRepo, notifier),
		repo:        repo,
		allocations: allocations,
		notifier:    notifier,
		outbox:      outboxRepo,
	}
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func probationEmployment(status string) *employment.Employment {
	pass := day("2025-04-01")
	salary := int64(2_500_000)
	return &employment.Employment{
		ID:                  uuid.New(),
		EmployeeID:          uuid.New(),
		DepartmentID:        uuid.New(),
		PositionID:          uuid.New(),
		EmploymentType:      employment.TypeFullTime,
		StartDate:           day("2025-01-01"),
		PassProbationDate:   &pass,
		ProbationSalary:     &salary,
		PassProbationSalary: 3_000_000,
		ProbationStatus:     status,
		Status:              employment.StatusActive,
		Employee:            &employment.EmploymentEmployee{StaffID: "EMP-000007", FirstNameEN: "Nok", LastNameEN: "Saelee"},
	}
}

func validRequest() employment.CreateEmploymentRequest {
	pass := "2025-04-01"
	salary := int64(2_500_000)
	return employment.CreateEmploymentRequest{
		EmployeeID: uuid.NewString(),
		UpdateEmploymentRequest: employment.UpdateEmploymentRequest{
			DepartmentID:        uuid.NewString(),
			PositionID:          uuid.NewString(),
			EmploymentType:      employment.TypeFullTime,
			StartDate:           "2025-01-01",
			PassProbationDate:   &pass,
			ProbationSalary:     &salary,
			PassProbationSalary: 3_000_000,
		},
	}
}

func TestEmploymentService_Create(t *testing.T) {
	t.Run("success with initial probation record", func(t *testing.T) {
		d := setupServiceTest(t)
		req := validRequest()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().HasActive(gomock.Any(), req.EmployeeID, "").Return(false, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employment.Employment) error {
				assert.Equal(t, employment.ProbationOngoing, e.ProbationStatus)
				assert.Equal(t, employment.StatusActive, e.Status)
				return nil
			})
		d.repo.EXPECT().CreateProbationRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *employment.ProbationRecord) error {
				assert.Equal(t, employment.RecordInitial, rec.EventType)
				assert.Equal(t, day("2025-04-01"), *rec.ProbationEndDate)
				return nil
			})
		d.sqlMock.ExpectCommit()
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (*employment.Employment, error) {
				e := probationEmployment(employment.ProbationOngoing)
				e.ID = uuid.MustParse(id)
				return e, nil
			})

		resp, err := d.service.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "EMP-000007", resp.StaffID)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee already has active employment", func(t *testing.T) {
		d := setupServiceTest(t)
		req := validRequest()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().HasActive(gomock.Any(), req.EmployeeID, "").Return(true, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employmenterrors.ErrActiveEmploymentExists)
	})

	t.Run("probation salary without pass date", func(t *testing.T) {
		d := setupServiceTest(t)
		req := validRequest()
		req.PassProbationDate = nil

		_, err := d.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employmenterrors.ErrProbationDateRequired)
	})

	t.Run("pass date not after start date", func(t *testing.T) {
		d := setupServiceTest(t)
		req := validRequest()
		pass := "2024-12-31"
		req.PassProbationDate = &pass

		_, err := d.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employmenterrors.ErrInvalidProbationDate)
	})
}

func TestEmploymentService_ProcessProbationTransitions(t *testing.T) {
	today := day("2025-04-01")

	t.Run("passes due probation and notifies hr", func(t *testing.T) {
		d := setupServiceTest(t)
		due := probationEmployment(employment.ProbationOngoing)
		locked := *due
		locked.Employee = nil

		d.repo.EXPECT().FindDueProbation(gomock.Any(), today).Return([]employment.Employment{*due}, nil)

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), due.ID.String()).Return(&locked, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employment.Employment) error {
				assert.Equal(t, employment.ProbationPassed, e.ProbationStatus)
				assert.Equal(t, today, *e.PassProbationDate)
				return nil
			})
		d.repo.EXPECT().DeactivateProbationRecords(gomock.Any(), due.ID.String()).Return(nil)
		d.repo.EXPECT().CreateProbationRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *employment.ProbationRecord) error {
				assert.Equal(t, employment.RecordPassed, rec.EventType)
				assert.Nil(t, rec.ActorID)
				return nil
			})
		d.allocations.EXPECT().RecalculateForEmployment(gomock.Any(), gomock.Any(), gomock.Any(), today).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, e employment.Employment, ref time.Time) error {
				amt, typ := employment.ActiveSalary(e, ref)
				assert.Equal(t, int64(3_000_000), amt)
				assert.Equal(t, employment.SalaryTypePassProbation, typ)
				return nil
			})
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.sqlMock.ExpectCommit()

		d.notifier.EXPECT().
			NotifyRoles(gomock.Any(), []string{"hr-manager", "hr-assistant"}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []string, in notification.Input) error {
				assert.Equal(t, notification.TypeProbationCompleted, in.Type)
				assert.Contains(t, in.Message, "EMP-000007")
				return nil
			})

		res, err := d.service.ProcessProbationTransitions(context.Background(), today.Add(6*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, res.Due)
		assert.Equal(t, []string{due.ID.String()}, res.Passed)
		assert.Zero(t, res.Failed)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("already passed row is skipped", func(t *testing.T) {
		d := setupServiceTest(t)
		due := probationEmployment(employment.ProbationOngoing)
		locked := probationEmployment(employment.ProbationPassed)
		locked.ID = due.ID

		d.repo.EXPECT().FindDueProbation(gomock.Any(), today).Return([]employment.Employment{*due}, nil)
		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), due.ID.String()).Return(locked, nil)
		d.sqlMock.ExpectRollback()

		res, err := d.service.ProcessProbationTransitions(context.Background(), today)
		require.NoError(t, err)
		assert.Empty(t, res.Passed)
		assert.Zero(t, res.Failed)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("nothing due", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().FindDueProbation(gomock.Any(), today).Return(nil, nil)

		res, err := d.service.ProcessProbationTransitions(context.Background(), today)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Due)
		assert.Empty(t, res.Passed)
	})

	t.Run("allocation failure is counted and rolled back", func(t *testing.T) {
		d := setupServiceTest(t)
		due := probationEmployment(employment.ProbationExtended)
		locked := *due

		d.repo.EXPECT().FindDueProbation(gomock.Any(), today).Return([]employment.Employment{*due}, nil)
		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), due.ID.String()).Return(&locked, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().DeactivateProbationRecords(gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().CreateProbationRecord(gomock.Any(), gomock.Any()).Return(nil)
		d.allocations.EXPECT().RecalculateForEmployment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("slot conflict"))
		d.sqlMock.ExpectRollback()

		res, err := d.service.ProcessProbationTransitions(context.Background(), today)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
		assert.Empty(t, res.Passed)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})
}

func TestEmploymentService_ExtendProbation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := probationEmployment(employment.ProbationOngoing)
		id := emp.ID.String()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), id).Return(emp, nil)
		d.repo.EXPECT().CountProbationRecords(gomock.Any(), id, employment.RecordExtension).Return(int64(1), nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().DeactivateProbationRecords(gomock.Any(), id).Return(nil)
		d.repo.EXPECT().CreateProbationRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *employment.ProbationRecord) error {
				assert.Equal(t, 2, rec.ExtensionNumber)
				assert.Equal(t, day("2025-04-01"), *rec.PreviousEndDate)
				assert.Equal(t, day("2025-05-01"), *rec.ProbationEndDate)
				return nil
			})
		d.sqlMock.ExpectCommit()
		d.repo.EXPECT().FindByID(gomock.Any(), id).Return(emp, nil)

		resp, err := d.service.ExtendProbation(context.Background(), id, employment.ExtendProbationRequest{
			NewPassProbationDate: "2025-05-01",
			Reason:               "needs more time",
		})
		require.NoError(t, err)
		assert.Equal(t, employment.ProbationExtended, resp.ProbationStatus)
		assert.Equal(t, "2025-05-01", *resp.PassProbationDate)
	})

	t.Run("new date must be later", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := probationEmployment(employment.ProbationOngoing)

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.ExtendProbation(context.Background(), emp.ID.String(), employment.ExtendProbationRequest{
			NewPassProbationDate: "2025-04-01",
			Reason:               "same day",
		})
		assert.ErrorIs(t, err, employmenterrors.ErrExtensionNotLater)
	})
}

func TestEmploymentService_FailProbation(t *testing.T) {
	t.Run("ends employment and allocations", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := probationEmployment(employment.ProbationOngoing)
		id := emp.ID.String()
		date := "2025-03-15"

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), id).Return(emp, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employment.Employment) error {
				assert.Equal(t, employment.ProbationFailed, e.ProbationStatus)
				assert.Equal(t, employment.StatusInactive, e.Status)
				assert.Equal(t, day(date), *e.EndDate)
				return nil
			})
		d.repo.EXPECT().DeactivateProbationRecords(gomock.Any(), id).Return(nil)
		d.repo.EXPECT().CreateProbationRecord(gomock.Any(), gomock.Any()).Return(nil)
		d.allocations.EXPECT().EndForEmployment(gomock.Any(), gomock.Any(), id, day(date)).Return(nil)
		d.sqlMock.ExpectCommit()
		d.repo.EXPECT().FindByID(gomock.Any(), id).Return(emp, nil)

		resp, err := d.service.FailProbation(context.Background(), id, employment.ProbationDecisionRequest{Date: &date})
		require.NoError(t, err)
		assert.Equal(t, employment.StatusInactive, resp.Status)
	})

	t.Run("already decided", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := probationEmployment(employment.ProbationPassed)

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.FailProbation(context.Background(), emp.ID.String(), employment.ProbationDecisionRequest{})
		assert.ErrorIs(t, err, employmenterrors.ErrProbationAlreadyDecided)
	})
}

func TestEmploymentService_CompleteProbation(t *testing.T) {
	d := setupServiceTest(t)
	emp := probationEmployment(employment.ProbationOngoing)
	id := emp.ID.String()
	date := "2025-03-01"

	d.sqlMock.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().LockByID(gomock.Any(), id).Return(emp, nil)
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().DeactivateProbationRecords(gomock.Any(), id).Return(nil)
	d.repo.EXPECT().CreateProbationRecord(gomock.Any(), gomock.Any()).Return(nil)
	d.allocations.EXPECT().RecalculateForEmployment(gomock.Any(), gomock.Any(), gomock.Any(), day(date)).Return(nil)
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.sqlMock.ExpectCommit()
	d.repo.EXPECT().FindByID(gomock.Any(), id).Return(emp, nil)

	resp, err := d.service.CompleteProbation(context.Background(), id, employment.ProbationDecisionRequest{Date: &date})
	require.NoError(t, err)
	assert.Equal(t, employment.ProbationPassed, resp.ProbationStatus)
	assert.Equal(t, "2025-03-01", *resp.PassProbationDate)
	assert.Equal(t, employment.SalaryTypePassProbation, resp.ActiveSalaryType)
}

func TestEmploymentService_GetByID_InvalidID(t *testing.T) {
	d := setupServiceTest(t)
	_, err := d.service.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, employmenterrors.ErrInvalidEmploymentID)
}
