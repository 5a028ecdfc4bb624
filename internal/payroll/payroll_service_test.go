package payroll_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-hrms/internal/allocation"
	allocationMock "go-hrms/internal/allocation/mock"
	"go-hrms/internal/employee"
	employeeMock "go-hrms/internal/employee/mock"
	"go-hrms/internal/employment"
	employmentMock "go-hrms/internal/employment/mock"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/notification"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	payrollMock "go-hrms/internal/payroll/mock"
	"go-hrms/internal/realtime"
	realtimeMock "go-hrms/internal/realtime/mock"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tax"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	sqlMock     sqlmock.Sqlmock
	service     payroll.Service
	repo        *payrollMock.MockRepository
	employments *employmentMock.MockRepository
	allocations *allocationMock.MockRepository
	employees   *employeeMock.MockRepository
	taxes       *payrollMock.MockTaxConfigProvider
	outbox      *kafkaMock.MockOutboxRepository
	broadcaster *realtimeMock.MockBroadcaster
	notifier    *payrollMock.MockNotifier
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := &serviceDeps{
		sqlMock:     sqlMock,
		repo:        payrollMock.NewMockRepository(ctrl),
		employments: employmentMock.NewMockRepository(ctrl),
		allocations: allocationMock.NewMockRepository(ctrl),
		employees:   employeeMock.NewMockRepository(ctrl),
		taxes:       payrollMock.NewMockTaxConfigProvider(ctrl),
		outbox:      kafkaMock.NewMockOutboxRepository(ctrl),
		broadcaster: realtimeMock.NewMockBroadcaster(ctrl),
		notifier:    payrollMock.NewMockNotifier(ctrl),
	}
	d.service = payroll.NewService(db, d.repo, d.employments, d.allocations, d.employees,
		d.taxes, d.outbox, d.broadcaster, d.notifier)
	return d
}

func activeEmployment() *employment.Employment {
	return &employment.Employment{
		ID:                  uuid.New(),
		EmployeeID:          uuid.New(),
		StartDate:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PassProbationSalary: 3_000_000,
		ProbationStatus:     employment.ProbationPassed,
		HealthWelfare:       true,
		PVD:                 true,
		Status:              employment.StatusActive,
		Employee:            &employment.EmploymentEmployee{StaffID: "0042"},
	}
}

func allocationsFor(emp *employment.Employment, ftes ...int) []allocation.FundingAllocation {
	out := make([]allocation.FundingAllocation, len(ftes))
	for i, fte := range ftes {
		out[i] = allocation.FundingAllocation{
			ID:             uuid.New(),
			EmploymentID:   emp.ID,
			EmployeeID:     emp.EmployeeID,
			AllocationType: allocation.TypeGrant,
			FTE:            fte,
			Status:         allocation.StatusActive,
		}
	}
	return out
}

// expectGenerate wires the reads of one successful generate run up to the
// per-allocation lookups.
func (d *serviceDeps) expectGenerate(emp *employment.Employment, allocs []allocation.FundingAllocation) {
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
	d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
	d.allocations.EXPECT().WithTx(gomock.Any()).Return(d.allocations)
	d.allocations.EXPECT().FindByEmployment(gomock.Any(), emp.ID.String(), allocation.StatusActive).Return(allocs, nil)
	d.employees.EXPECT().FindByID(gomock.Any(), emp.EmployeeID.String()).
		Return(&employee.Employee{ID: emp.EmployeeID, StaffID: "0042", FirstNameEN: "Malee", Organization: "SMRU"}, nil)
	d.taxes.EXPECT().GetConfig(gomock.Any(), 2025).Return(tax.NewConfig(2025, nil, nil), nil)
}

func TestPayrollService_Create(t *testing.T) {
	t.Run("one row per allocation", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		allocs := allocationsFor(emp, 6000, 4000)
		ctx := contextutil.WithUserID(context.Background(), uuid.NewString())

		d.sqlMock.ExpectBegin()
		d.expectGenerate(emp, allocs)
		d.repo.EXPECT().FindByAllocationPeriod(gomock.Any(), gomock.Any(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
			Return(nil, nil).Times(2)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payroll.Payroll) error {
				assert.Equal(t, payroll.StatusDraft, p.Status)
				assert.NotNil(t, p.CreatedBy)
				return nil
			}).Times(2)
		d.sqlMock.ExpectCommit()

		resp, err := d.service.Create(ctx, payroll.CreatePayrollRequest{
			CalculatePayrollRequest: payroll.CalculatePayrollRequest{
				EmploymentID:  emp.ID.String(),
				PayPeriodDate: "2025-03-15",
			},
		})

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "2025-03-01", resp[0].PayPeriodDate)
		assert.Equal(t, int64(1_800_000), resp[0].GrossSalaryByFTE)
		assert.Equal(t, int64(1_610_500), resp[0].NetSalary)
		assert.Equal(t, int64(1_200_000), resp[1].GrossSalaryByFTE)
		assert.Equal(t, "0042", resp[0].StaffID)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("existing payroll for the month", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		allocs := allocationsFor(emp, 10000)

		d.sqlMock.ExpectBegin()
		d.expectGenerate(emp, allocs)
		d.repo.EXPECT().FindByAllocationPeriod(gomock.Any(), allocs[0].ID.String(), gomock.Any()).
			Return(&payroll.Payroll{ID: uuid.New(), Status: payroll.StatusDraft}, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Create(context.Background(), payroll.CreatePayrollRequest{
			CalculatePayrollRequest: payroll.CalculatePayrollRequest{
				EmploymentID:  emp.ID.String(),
				PayPeriodDate: "2025-03",
			},
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollExists)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("inactive employment", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		emp.Status = employment.StatusInactive

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Create(context.Background(), payroll.CreatePayrollRequest{
			CalculatePayrollRequest: payroll.CalculatePayrollRequest{
				EmploymentID:  emp.ID.String(),
				PayPeriodDate: "2025-03-01",
			},
		})

		assert.ErrorIs(t, err, payrollerrors.ErrEmploymentInactive)
	})

	t.Run("invalid pay period", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.service.Create(context.Background(), payroll.CreatePayrollRequest{
			CalculatePayrollRequest: payroll.CalculatePayrollRequest{
				EmploymentID:  uuid.NewString(),
				PayPeriodDate: "March 2025",
			},
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayPeriod)
	})
}

func TestPayrollService_Calculate(t *testing.T) {
	d := setupServiceTest(t)
	emp := activeEmployment()
	allocs := allocationsFor(emp, 6000, 4000)

	d.employments.EXPECT().FindByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
	d.allocations.EXPECT().FindByEmployment(gomock.Any(), emp.ID.String(), allocation.StatusActive).Return(allocs, nil)
	d.employees.EXPECT().FindByID(gomock.Any(), emp.EmployeeID.String()).
		Return(&employee.Employee{ID: emp.EmployeeID, FirstNameEN: "Malee", LastNameEN: "Wong"}, nil)
	d.taxes.EXPECT().GetConfig(gomock.Any(), 2025).Return(tax.NewConfig(2025, nil, nil), nil)

	resp, err := d.service.Calculate(context.Background(), payroll.CalculatePayrollRequest{
		EmploymentID:  emp.ID.String(),
		PayPeriodDate: "2025-06-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "Malee Wong", resp.EmployeeName)
	assert.Equal(t, employment.SalaryTypePassProbation, resp.SalaryType)
	require.Len(t, resp.Allocations, 2)
	assert.Equal(t, int64(3_000_000), resp.Totals.GrossSalaryByFTE)
	assert.Equal(t, int64(75_000), resp.Totals.EmployeeSSF)
}

func draftPayroll() *payroll.Payroll {
	p := &payroll.Payroll{
		ID:            uuid.New(),
		EmploymentID:  uuid.New(),
		EmployeeID:    uuid.New(),
		PayPeriodDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:        payroll.StatusDraft,
	}
	p.Apply(payroll.Figures{
		GrossSalary:      2_000_000,
		GrossSalaryByFTE: 2_000_000,
		EmployeeSSF:      75_000,
		EmployerSSF:      75_000,
		TotalIncome:      2_000_000,
		TotalDeduction:   75_000,
		NetSalary:        1_925_000,
	})
	return p
}

func TestPayrollService_Update(t *testing.T) {
	t.Run("refund recomputes totals", func(t *testing.T) {
		d := setupServiceTest(t)
		p := draftPayroll()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(p, nil)
		d.repo.EXPECT().Update(gomock.Any(), p).Return(nil)
		d.sqlMock.ExpectCommit()

		resp, err := d.service.Update(context.Background(), p.ID.String(), payroll.UpdatePayrollRequest{
			CompensationRefund: 100_000,
			Notes:              " back pay ",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2_100_000), resp.TotalIncome)
		assert.Equal(t, int64(2_025_000), resp.NetSalary)
		assert.Equal(t, "back pay", resp.Notes)
	})

	t.Run("approved payroll is locked", func(t *testing.T) {
		d := setupServiceTest(t)
		p := draftPayroll()
		p.Status = payroll.StatusApproved

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(p, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Update(context.Background(), p.ID.String(), payroll.UpdatePayrollRequest{})

		assert.ErrorIs(t, err, payrollerrors.ErrOnlyDraft)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_ApproveAndMarkPaid(t *testing.T) {
	approver := uuid.NewString()
	ctx := contextutil.WithUserID(context.Background(), approver)

	t.Run("approve draft", func(t *testing.T) {
		d := setupServiceTest(t)
		p := draftPayroll()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(p, nil)
		d.repo.EXPECT().Update(gomock.Any(), p).Return(nil)
		d.sqlMock.ExpectCommit()

		resp, err := d.service.Approve(ctx, p.ID.String())

		require.NoError(t, err)
		assert.Equal(t, payroll.StatusApproved, resp.Status)
		require.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, approver, *resp.ApprovedBy)
		assert.NotNil(t, resp.ApprovedAt)
	})

	t.Run("mark paid requires approval", func(t *testing.T) {
		d := setupServiceTest(t)
		p := draftPayroll()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(p, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.MarkPaid(ctx, p.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrNotApproved)
	})

	t.Run("mark approved as paid", func(t *testing.T) {
		d := setupServiceTest(t)
		p := draftPayroll()
		p.Status = payroll.StatusApproved

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(p, nil)
		d.repo.EXPECT().Update(gomock.Any(), p).Return(nil)
		d.sqlMock.ExpectCommit()

		resp, err := d.service.MarkPaid(ctx, p.ID.String())

		require.NoError(t, err)
		assert.Equal(t, payroll.StatusPaid, resp.Status)
		assert.NotNil(t, resp.PaidAt)
	})
}

func TestPayrollService_Delete_OnlyDraft(t *testing.T) {
	d := setupServiceTest(t)
	p := draftPayroll()
	p.Status = payroll.StatusPaid

	d.sqlMock.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(p, nil)
	d.sqlMock.ExpectRollback()

	err := d.service.Delete(context.Background(), p.ID.String())

	assert.ErrorIs(t, err, payrollerrors.ErrOnlyDraft)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_BulkCreate_QueuesEvent(t *testing.T) {
	d := setupServiceTest(t)
	requester := uuid.NewString()
	ctx := contextutil.WithUserID(context.Background(), requester)

	var batchID string
	d.sqlMock.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *payroll.PayrollBatch) error {
			batchID = b.ID.String()
			assert.Equal(t, payroll.BatchPending, b.Status)
			assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), b.PayPeriodDate)
			return nil
		})
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
			assert.Equal(t, events.PayrollBulkRequestedTopic, event.Topic)
			var payload events.PayrollBulkRequestedEvent
			require.NoError(t, json.Unmarshal(event.Payload, &payload))
			assert.Equal(t, batchID, payload.BatchID)
			assert.Equal(t, requester, payload.RequestedBy)
			return nil
		})
	d.sqlMock.ExpectCommit()

	resp, err := d.service.BulkCreate(ctx, payroll.BulkPayrollRequest{PayPeriodDate: "2025-04", Organization: "SMRU"})

	require.NoError(t, err)
	assert.Equal(t, batchID, resp.ID)
	assert.Equal(t, "SMRU", resp.Organization)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_ProcessBulkBatch(t *testing.T) {
	t.Run("records successes and failures", func(t *testing.T) {
		d := setupServiceTest(t)
		requester := uuid.New()
		batch := &payroll.PayrollBatch{
			ID:            uuid.New(),
			PayPeriodDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Organization:  "SMRU",
			Status:        payroll.BatchPending,
			RequestedBy:   &requester,
		}
		good := activeEmployment()
		bad := activeEmployment()
		bad.Status = employment.StatusInactive
		allocs := allocationsFor(good, 10000)

		d.repo.EXPECT().FindBatchByID(gomock.Any(), batch.ID.String()).Return(batch, nil)
		d.employments.EXPECT().FindActive(gomock.Any(), employment.ActiveFilter{Organization: "SMRU"}).
			Return([]employment.Employment{*good, *bad}, nil)
		d.repo.EXPECT().UpdateBatch(gomock.Any(), batch).Return(nil).Times(4)
		d.broadcaster.EXPECT().
			Broadcast(gomock.Any(), realtime.PayrollBulkChannel(batch.ID.String()), gomock.Any(), gomock.Any()).
			Return(nil).Times(4)

		d.sqlMock.ExpectBegin()
		d.expectGenerate(good, allocs)
		d.repo.EXPECT().FindByAllocationPeriod(gomock.Any(), allocs[0].ID.String(), batch.PayPeriodDate).Return(nil, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payroll.Payroll) error {
				require.NotNil(t, p.BatchID)
				assert.Equal(t, batch.ID, *p.BatchID)
				return nil
			})
		d.sqlMock.ExpectCommit()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), bad.ID.String()).Return(bad, nil)
		d.sqlMock.ExpectRollback()

		d.notifier.EXPECT().
			NotifyUsers(gomock.Any(), []string{requester.String()}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []string, in notification.Input) error {
				assert.Equal(t, notification.TypePayrollBulkFinished, in.Type)
				return nil
			})

		err := d.service.ProcessBulkBatch(context.Background(), batch.ID.String())

		require.NoError(t, err)
		assert.Equal(t, payroll.BatchCompleted, batch.Status)
		assert.Equal(t, 2, batch.Total)
		assert.Equal(t, 2, batch.Processed)
		assert.Equal(t, 1, batch.Succeeded)
		assert.Equal(t, 1, batch.Failed)
		require.Len(t, batch.Errors, 1)
		assert.Equal(t, bad.ID.String(), batch.Errors[0].EmploymentID)
		assert.NotNil(t, batch.FinishedAt)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("completed batch is skipped", func(t *testing.T) {
		d := setupServiceTest(t)
		batch := &payroll.PayrollBatch{ID: uuid.New(), Status: payroll.BatchCompleted}

		d.repo.EXPECT().FindBatchByID(gomock.Any(), batch.ID.String()).Return(batch, nil)

		err := d.service.ProcessBulkBatch(context.Background(), batch.ID.String())

		assert.NoError(t, err)
	})
}

func TestPayrollService_GetAll_InvalidPeriod(t *testing.T) {
	d := setupServiceTest(t)

	_, _, err := d.service.GetAll(context.Background(), payroll.ListPayrollsRequest{PayPeriod: "2025/03"})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodQuery)
}
