package personnelaction_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employment"
	employmentMock "go-hrms/internal/employment/mock"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/notification"
	"go-hrms/internal/personnelaction"
	personnelactionerrors "go-hrms/internal/personnelaction/errors"
	personnelactionMock "go-hrms/internal/personnelaction/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

type serviceDeps struct {
	sqlMock     sqlmock.Sqlmock
	service     personnelaction.Service
	repo        *personnelactionMock.MockRepository
	employments *employmentMock.MockRepository
	allocations *personnelactionMock.MockAllocationSync
	outbox      *kafkaMock.MockOutboxRepository
	notifier    *personnelactionMock.MockNotifier
	audit       *recordingAudit
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := &serviceDeps{
		sqlMock:     sqlMock,
		repo:        personnelactionMock.NewMockRepository(ctrl),
		employments: employmentMock.NewMockRepository(ctrl),
		allocations: personnelactionMock.NewMockAllocationSync(ctrl),
		outbox:      kafkaMock.NewMockOutboxRepository(ctrl),
		notifier:    personnelactionMock.NewMockNotifier(ctrl),
		audit:       &recordingAudit{},
	}
	d.service = personnelaction.NewService(db, d.repo, d.employments, d.allocations, d.outbox, d.notifier, d.audit)
	return d
}

func activeEmployment() *employment.Employment {
	return &employment.Employment{
		ID:                  uuid.New(),
		EmployeeID:          uuid.New(),
		DepartmentID:        uuid.New(),
		PositionID:          uuid.New(),
		WorkLocation:        "Mae Sot",
		PassProbationSalary: 2_500_000,
		ProbationStatus:     employment.ProbationPassed,
		Status:              employment.StatusActive,
	}
}

func i64(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func boolp(v bool) *bool { return &v }

func pendingAction(emp *employment.Employment) *personnelaction.PersonnelAction {
	creator := uuid.New()
	return &personnelaction.PersonnelAction{
		ID:                  uuid.New(),
		EmploymentID:        emp.ID,
		EmployeeID:          emp.EmployeeID,
		ActionType:          personnelaction.TypeSalaryChange,
		CurrentDepartmentID: emp.DepartmentID,
		CurrentPositionID:   emp.PositionID,
		CurrentSalary:       emp.PassProbationSalary,
		NewSalary:           i64(2_800_000),
		EffectiveDate:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:              personnelaction.StatusPending,
		CreatedBy:           &creator,
	}
}

func TestPersonnelActionService_Create(t *testing.T) {
	t.Run("snapshots current terms", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		newPos := uuid.NewString()

		d.employments.EXPECT().FindByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *personnelaction.PersonnelAction) error {
				assert.Equal(t, emp.DepartmentID, a.CurrentDepartmentID)
				assert.Equal(t, emp.PositionID, a.CurrentPositionID)
				assert.Equal(t, int64(2_500_000), a.CurrentSalary)
				assert.Equal(t, "Mae Sot", a.CurrentWorkLocation)
				assert.Equal(t, emp.EmployeeID, a.EmployeeID)
				assert.Equal(t, personnelaction.StatusPending, a.Status)
				return nil
			})
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		resp, err := d.service.Create(context.Background(), personnelaction.PersonnelActionRequest{
			EmploymentID:  emp.ID.String(),
			ActionType:    personnelaction.TypePromotion,
			NewPositionID: &newPos,
			NewSalary:     i64(3_000_000),
			EffectiveDate: "2025-04-01",
		})

		require.NoError(t, err)
		assert.Equal(t, newPos, *resp.NewPositionID)
		assert.Equal(t, "2025-04-01", resp.EffectiveDate)
	})

	t.Run("transfer needs department", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()

		d.employments.EXPECT().FindByID(gomock.Any(), emp.ID.String()).Return(emp, nil)

		_, err := d.service.Create(context.Background(), personnelaction.PersonnelActionRequest{
			EmploymentID:  emp.ID.String(),
			ActionType:    personnelaction.TypeTransfer,
			EffectiveDate: "2025-04-01",
		})

		assert.ErrorIs(t, err, personnelactionerrors.ErrDepartmentRequired)
	})

	t.Run("same salary is no change", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()

		d.employments.EXPECT().FindByID(gomock.Any(), emp.ID.String()).Return(emp, nil)

		_, err := d.service.Create(context.Background(), personnelaction.PersonnelActionRequest{
			EmploymentID:  emp.ID.String(),
			ActionType:    personnelaction.TypeSalaryChange,
			NewSalary:     i64(2_500_000),
			EffectiveDate: "2025-04-01",
		})

		assert.ErrorIs(t, err, personnelactionerrors.ErrNoChange)
	})

	t.Run("inactive employment", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		emp.Status = employment.StatusInactive

		d.employments.EXPECT().FindByID(gomock.Any(), emp.ID.String()).Return(emp, nil)

		_, err := d.service.Create(context.Background(), personnelaction.PersonnelActionRequest{
			EmploymentID:  emp.ID.String(),
			ActionType:    personnelaction.TypeSalaryChange,
			NewSalary:     i64(2_600_000),
			EffectiveDate: "2025-04-01",
		})

		assert.ErrorIs(t, err, personnelactionerrors.ErrEmploymentInactive)
	})
}

func TestPersonnelActionService_Approve(t *testing.T) {
	t.Run("partial approval stays pending", func(t *testing.T) {
		d := setupServiceTest(t)
		a := pendingAction(activeEmployment())

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
		d.repo.EXPECT().Update(gomock.Any(), a).Return(nil)
		d.sqlMock.ExpectCommit()
		d.repo.EXPECT().FindByID(gomock.Any(), a.ID.String()).Return(a, nil)

		resp, err := d.service.Approve(context.Background(), a.ID.String(), personnelaction.ApprovalRequest{
			Approver: personnelaction.ApproverCOO,
			Approved: boolp(true),
		})

		require.NoError(t, err)
		assert.Equal(t, personnelaction.StatusPending, resp.Status)
		assert.True(t, resp.Approvals.COO)
		assert.False(t, resp.Approvals.HR)
		assert.NotNil(t, a.COOApprovedAt)
		assert.Empty(t, d.audit.entries)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("fourth approval applies to employment", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		a := pendingAction(emp)
		a.NewWorkLocation = str("Bangkok")
		a.DeptHeadApproved, a.COOApproved, a.HRApproved = true, true, true

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.employments.EXPECT().Update(gomock.Any(), emp).
			DoAndReturn(func(_ context.Context, e *employment.Employment) error {
				assert.Equal(t, int64(2_800_000), e.PassProbationSalary)
				assert.Equal(t, "Bangkok", e.WorkLocation)
				return nil
			})
		d.allocations.EXPECT().
			RecalculateForEmployment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, e employment.Employment, _ time.Time) error {
				assert.Equal(t, int64(2_800_000), e.PassProbationSalary)
				return nil
			})
		d.repo.EXPECT().Update(gomock.Any(), a).Return(nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeLifecycleTopic, row.Topic)
				var payload events.EmployeeActionEvent
				require.NoError(t, json.Unmarshal(row.Payload, &payload))
				assert.Equal(t, events.EmployeeActionPersonnelAction, payload.Action)
				assert.Equal(t, emp.EmployeeID.String(), payload.EmployeeID)
				return nil
			})
		d.sqlMock.ExpectCommit()
		d.notifier.EXPECT().
			NotifyUsers(gomock.Any(), []string{a.CreatedBy.String()}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []string, in notification.Input) error {
				assert.Equal(t, notification.TypePersonnelAction, in.Type)
				return nil
			})
		d.repo.EXPECT().FindByID(gomock.Any(), a.ID.String()).Return(a, nil)

		resp, err := d.service.Approve(context.Background(), a.ID.String(), personnelaction.ApprovalRequest{
			Approver: personnelaction.ApproverAccountant,
			Approved: boolp(true),
		})

		require.NoError(t, err)
		assert.Equal(t, personnelaction.StatusApplied, resp.Status)
		assert.NotNil(t, resp.AppliedAt)
		require.Len(t, d.audit.entries, 1)
		assert.Equal(t, "PERSONNEL_ACTION_APPLIED", d.audit.entries[0].Action)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("probation salary tier updated while on probation", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		pass := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		emp.ProbationStatus = employment.ProbationOngoing
		emp.PassProbationDate = &pass
		emp.ProbationSalary = i64(2_000_000)
		a := pendingAction(emp)
		a.CreatedBy = nil
		a.DeptHeadApproved, a.COOApproved, a.AccountantApproved = true, true, true

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.employments.EXPECT().Update(gomock.Any(), emp).Return(nil)
		d.allocations.EXPECT().RecalculateForEmployment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().Update(gomock.Any(), a).Return(nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.sqlMock.ExpectCommit()
		d.repo.EXPECT().FindByID(gomock.Any(), a.ID.String()).Return(a, nil)

		_, err := d.service.Approve(context.Background(), a.ID.String(), personnelaction.ApprovalRequest{
			Approver: personnelaction.ApproverHR,
			Approved: boolp(true),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2_800_000), *emp.ProbationSalary)
		assert.Equal(t, int64(2_500_000), emp.PassProbationSalary)
	})

	t.Run("rejection closes the action", func(t *testing.T) {
		d := setupServiceTest(t)
		a := pendingAction(activeEmployment())
		a.DeptHeadApproved = true

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
		d.repo.EXPECT().Update(gomock.Any(), a).Return(nil)
		d.sqlMock.ExpectCommit()
		d.notifier.EXPECT().NotifyUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		d.repo.EXPECT().FindByID(gomock.Any(), a.ID.String()).Return(a, nil)

		resp, err := d.service.Approve(context.Background(), a.ID.String(), personnelaction.ApprovalRequest{
			Approver: personnelaction.ApproverHR,
			Approved: boolp(false),
		})

		require.NoError(t, err)
		assert.Equal(t, personnelaction.StatusRejected, resp.Status)
		assert.Equal(t, personnelaction.ApproverHR, resp.RejectedBy)
		require.Len(t, d.audit.entries, 1)
		assert.Equal(t, "PERSONNEL_ACTION_REJECTED", d.audit.entries[0].Action)
	})

	t.Run("same approver twice", func(t *testing.T) {
		d := setupServiceTest(t)
		a := pendingAction(activeEmployment())
		a.HRApproved = true

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Approve(context.Background(), a.ID.String(), personnelaction.ApprovalRequest{
			Approver: personnelaction.ApproverHR,
			Approved: boolp(true),
		})

		assert.ErrorIs(t, err, personnelactionerrors.ErrAlreadyApproved)
	})

	t.Run("applied action is final", func(t *testing.T) {
		d := setupServiceTest(t)
		a := pendingAction(activeEmployment())
		a.Status = personnelaction.StatusApplied

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Approve(context.Background(), a.ID.String(), personnelaction.ApprovalRequest{
			Approver: personnelaction.ApproverCOO,
			Approved: boolp(true),
		})

		assert.ErrorIs(t, err, personnelactionerrors.ErrOnlyPending)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("employment gone inactive rolls back", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		emp.Status = employment.StatusInactive
		a := pendingAction(emp)
		a.DeptHeadApproved, a.COOApproved, a.HRApproved = true, true, true

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Approve(context.Background(), a.ID.String(), personnelaction.ApprovalRequest{
			Approver: personnelaction.ApproverAccountant,
			Approved: boolp(true),
		})

		assert.ErrorIs(t, err, personnelactionerrors.ErrEmploymentInactive)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})
}

func TestPersonnelActionService_Update_OnlyPending(t *testing.T) {
	d := setupServiceTest(t)
	a := pendingAction(activeEmployment())
	a.Status = personnelaction.StatusRejected

	d.sqlMock.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
	d.sqlMock.ExpectRollback()

	_, err := d.service.Update(context.Background(), a.ID.String(), personnelaction.PersonnelActionRequest{})

	assert.ErrorIs(t, err, personnelactionerrors.ErrOnlyPending)
}

func TestPersonnelActionService_Delete_Applied(t *testing.T) {
	d := setupServiceTest(t)
	a := pendingAction(activeEmployment())
	a.Status = personnelaction.StatusApplied

	d.sqlMock.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().LockByID(gomock.Any(), a.ID.String()).Return(a, nil)
	d.sqlMock.ExpectRollback()

	err := d.service.Delete(context.Background(), a.ID.String())

	assert.ErrorIs(t, err, personnelactionerrors.ErrCannotDeleteApplied)
}
