package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/cache"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"

	employeeMock "go-hrms/internal/employee/mock"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	counterMock "go-hrms/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewService(db, repo, counterRepo, outboxRepo, cache.New(rdb))

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// outboxMatcher checks the lifecycle event written to the outbox.
type outboxMatcher struct {
	action    string
	requestID string
}

func matchOutbox(action, requestID string) gomock.Matcher {
	return outboxMatcher{action: action, requestID: requestID}
}

func (m outboxMatcher) Matches(x any) bool {
	e, ok := x.(kafka.OutboxEvent)
	if !ok || e.Topic != events.EmployeeLifecycleTopic || e.RequestID != m.requestID {
		return false
	}
	var payload events.EmployeeActionEvent
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return false
	}
	return payload.Action == m.action && payload.EmployeeID == e.AggregateID
}

func (m outboxMatcher) String() string {
	return fmt.Sprintf("outbox event action=%s request_id=%s", m.action, m.requestID)
}

func validRequest() employee.CreateEmployeeRequest {
	dob := "1990-04-12"
	return employee.CreateEmployeeRequest{
		Organization:     "SMRU",
		FirstNameEN:      "Somchai",
		LastNameEN:       "Jaidee",
		Gender:           "male",
		DateOfBirth:      &dob,
		Status:           employee.StatusLocalID,
		MaritalStatus:    "married",
		HasSpouse:        true,
		NumberOfChildren: 2,
		Email:            " Somchai@Example.com ",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - auto generate staff id", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "REQ-1")

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeStaffID).Return(int64(123), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000123", e.StaffID)
				assert.Equal(t, "somchai@example.com", e.Email)
				assert.True(t, e.ClaimsSpouseAllowance())
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, matchOutbox(events.EmployeeActionCreated, "REQ-1")).Return(nil)
		deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "EMP-000123", resp.StaffID)
		assert.Equal(t, "Somchai Jaidee", resp.FullName)
		assert.Equal(t, "1990-04-12", *resp.DateOfBirth)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("explicit staff id already taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		req := validRequest()
		req.StaffID = "EMP-000001"

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByStaffID(ctx, "EMP-000001", "").Return(true, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrStaffIDAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeStaffID).Return(int64(7), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_staff_id"})

		_, err := deps.service.Create(ctx, validRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrStaffIDAlreadyExists)
	})

	t.Run("spouse requires married status", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.MaritalStatus = "single"

		_, err := deps.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrSpouseNotMarried)
	})

	t.Run("counter failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeStaffID).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Create(ctx, validRequest())
		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update_KeepsStaffIDWhenBlank(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	id := uuid.New()

	existing := &employee.Employee{ID: id, StaffID: "EMP-000010", Organization: "SMRU", FirstNameEN: "Old"}

	expectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing, nil)
	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "EMP-000010", e.StaffID)
			assert.Equal(t, "Somchai", e.FirstNameEN)
			return nil
		})
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(ctx, matchOutbox(events.EmployeeActionUpdated, "")).Return(nil)
	deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

	resp, err := deps.service.Update(ctx, id.String(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "EMP-000010", resp.StaffID)
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		id := uuid.NewString()

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		err := deps.service.Delete(context.Background(), "123")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_BulkDelete(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	a := employee.Employee{ID: uuid.New(), StaffID: "EMP-000001"}
	b := employee.Employee{ID: uuid.New(), StaffID: "EMP-000002"}
	missing := uuid.NewString()
	ids := []string{a.ID.String(), b.ID.String(), missing}

	expectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDs(ctx, ids).Return([]employee.Employee{a, b}, nil)
	deps.repo.EXPECT().DeleteMany(ctx, []string{a.ID.String(), b.ID.String()}).Return(int64(2), nil)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).Times(2)
	deps.outbox.EXPECT().Create(ctx, matchOutbox(events.EmployeeActionDeleted, "")).Return(nil).Times(2)
	deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

	n, err := deps.service.BulkDelete(ctx, ids)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
