package allocation_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/allocation"
	allocationerrors "go-hrms/internal/allocation/errors"
	"go-hrms/internal/employment"
	"go-hrms/internal/grant"

	allocationMock "go-hrms/internal/allocation/mock"
	employmentMock "go-hrms/internal/employment/mock"
	grantMock "go-hrms/internal/grant/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock     sqlmock.Sqlmock
	service     allocation.Service
	repo        *allocationMock.MockRepository
	employments *employmentMock.MockRepository
	grants      *grantMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := allocationMock.NewMockRepository(ctrl)
	employments := employmentMock.NewMockRepository(ctrl)
	grants := grantMock.NewMockRepository(ctrl)

	return &serviceDeps{
		sqlMock:     sqlMock,
		service:     allocation.NewService(db, repo, employments, grants),
		repo:        repo,
		employments: employments,
		grants:      grants,
	}
}

func activeEmployment() *employment.Employment {
	pass := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	probation := int64(2_000_000)
	return &employment.Employment{
		ID:                  uuid.New(),
		EmployeeID:          uuid.New(),
		StartDate:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PassProbationDate:   &pass,
		ProbationSalary:     &probation,
		PassProbationSalary: 3_000_000,
		ProbationStatus:     employment.ProbationOngoing,
		Status:              employment.StatusActive,
	}
}

func TestAllocationService_Replace(t *testing.T) {
	effective := "2025-02-01"

	t.Run("fte must total 100 percent", func(t *testing.T) {
		d := setupServiceTest(t)
		_, err := d.service.Replace(context.Background(), uuid.NewString(), allocation.ReplaceAllocationsRequest{
			Allocations: []allocation.AllocationItemRequest{
				{AllocationType: allocation.TypeGrant, PositionSlotID: uuid.NewString(), FTE: 6000},
				{AllocationType: allocation.TypeGrant, PositionSlotID: uuid.NewString(), FTE: 3000},
			},
		})
		assert.ErrorIs(t, err, allocationerrors.ErrFTETotal)
	})

	t.Run("success closes old set and prices new rows on probation salary", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		id := emp.ID.String()
		slotID := uuid.NewString()
		hubID := uuid.NewString()

		d.sqlMock.ExpectBegin()
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), id).Return(emp, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.grants.EXPECT().WithTx(gomock.Any()).Return(d.grants)
		d.grants.EXPECT().FindSlotByID(gomock.Any(), slotID).Return(&grant.PositionSlot{}, nil)
		d.repo.EXPECT().SlotHeldByOther(gomock.Any(), slotID, id).Return(false, nil)
		d.grants.EXPECT().FindByID(gomock.Any(), hubID).Return(&grant.Grant{IsOrgFunded: true}, nil)
		d.repo.EXPECT().CloseActive(gomock.Any(), id, allocation.StatusHistorical, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
			Return(int64(1), nil)
		d.repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []allocation.FundingAllocation) error {
				require.Len(t, rows, 2)
				assert.Equal(t, int64(1_200_000), rows[0].AllocatedAmount)
				assert.Equal(t, employment.SalaryTypeProbation, rows[0].SalaryType)
				assert.Equal(t, slotID, rows[0].PositionSlotID.String())
				assert.Nil(t, rows[0].GrantID)
				assert.Equal(t, int64(800_000), rows[1].AllocatedAmount)
				assert.Nil(t, rows[1].PositionSlotID)
				assert.Equal(t, hubID, rows[1].GrantID.String())
				return nil
			})
		d.sqlMock.ExpectCommit()

		d.employments.EXPECT().FindByID(gomock.Any(), id).Return(emp, nil)
		d.repo.EXPECT().FindByEmployment(gomock.Any(), id, allocation.StatusActive).Return(nil, nil)

		_, err := d.service.Replace(context.Background(), id, allocation.ReplaceAllocationsRequest{
			EffectiveDate: &effective,
			Allocations: []allocation.AllocationItemRequest{
				{AllocationType: allocation.TypeGrant, PositionSlotID: slotID, FTE: 6000},
				{AllocationType: allocation.TypeOrgFunded, GrantID: hubID, FTE: 4000},
			},
		})
		require.NoError(t, err)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("slot held by another employment", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		slotID := uuid.NewString()

		d.sqlMock.ExpectBegin()
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.grants.EXPECT().WithTx(gomock.Any()).Return(d.grants)
		d.grants.EXPECT().FindSlotByID(gomock.Any(), slotID).Return(&grant.PositionSlot{}, nil)
		d.repo.EXPECT().SlotHeldByOther(gomock.Any(), slotID, emp.ID.String()).Return(true, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Replace(context.Background(), emp.ID.String(), allocation.ReplaceAllocationsRequest{
			Allocations: []allocation.AllocationItemRequest{
				{AllocationType: allocation.TypeGrant, PositionSlotID: slotID, FTE: 10000},
			},
		})
		assert.ErrorIs(t, err, allocationerrors.ErrSlotTaken)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("org funded grant must be flagged", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		grantID := uuid.NewString()

		d.sqlMock.ExpectBegin()
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.grants.EXPECT().WithTx(gomock.Any()).Return(d.grants)
		d.grants.EXPECT().FindByID(gomock.Any(), grantID).Return(&grant.Grant{IsOrgFunded: false}, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Replace(context.Background(), emp.ID.String(), allocation.ReplaceAllocationsRequest{
			Allocations: []allocation.AllocationItemRequest{
				{AllocationType: allocation.TypeOrgFunded, GrantID: grantID, FTE: 10000},
			},
		})
		assert.ErrorIs(t, err, allocationerrors.ErrGrantNotOrgFunded)
	})

	t.Run("duplicate slot", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		slotID := uuid.NewString()

		d.sqlMock.ExpectBegin()
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.grants.EXPECT().WithTx(gomock.Any()).Return(d.grants)
		d.grants.EXPECT().FindSlotByID(gomock.Any(), slotID).Return(&grant.PositionSlot{}, nil)
		d.repo.EXPECT().SlotHeldByOther(gomock.Any(), slotID, emp.ID.String()).Return(false, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Replace(context.Background(), emp.ID.String(), allocation.ReplaceAllocationsRequest{
			Allocations: []allocation.AllocationItemRequest{
				{AllocationType: allocation.TypeGrant, PositionSlotID: slotID, FTE: 5000},
				{AllocationType: allocation.TypeGrant, PositionSlotID: slotID, FTE: 5000},
			},
		})
		assert.ErrorIs(t, err, allocationerrors.ErrDuplicateSlot)
	})

	t.Run("inactive employment", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		emp.Status = employment.StatusInactive

		d.sqlMock.ExpectBegin()
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Replace(context.Background(), emp.ID.String(), allocation.ReplaceAllocationsRequest{
			Allocations: []allocation.AllocationItemRequest{
				{AllocationType: allocation.TypeGrant, PositionSlotID: uuid.NewString(), FTE: 10000},
			},
		})
		assert.ErrorIs(t, err, allocationerrors.ErrEmploymentInactive)
	})

	t.Run("slot not found", func(t *testing.T) {
		d := setupServiceTest(t)
		emp := activeEmployment()
		slotID := uuid.NewString()

		d.sqlMock.ExpectBegin()
		d.employments.EXPECT().WithTx(gomock.Any()).Return(d.employments)
		d.employments.EXPECT().LockByID(gomock.Any(), emp.ID.String()).Return(emp, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.grants.EXPECT().WithTx(gomock.Any()).Return(d.grants)
		d.grants.EXPECT().FindSlotByID(gomock.Any(), slotID).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Replace(context.Background(), emp.ID.String(), allocation.ReplaceAllocationsRequest{
			Allocations: []allocation.AllocationItemRequest{
				{AllocationType: allocation.TypeGrant, PositionSlotID: slotID, FTE: 10000},
			},
		})
		assert.ErrorIs(t, err, allocationerrors.ErrSlotNotFound)
	})
}

func TestAllocationService_RecalculateForEmployment(t *testing.T) {
	d := setupServiceTest(t)
	emp := activeEmployment()
	emp.ProbationStatus = employment.ProbationPassed

	unchanged := allocation.FundingAllocation{ID: uuid.New(), FTE: 5000, AllocatedAmount: 1_500_000, SalaryType: employment.SalaryTypePassProbation}
	stale := allocation.FundingAllocation{ID: uuid.New(), FTE: 5000, AllocatedAmount: 1_000_000, SalaryType: employment.SalaryTypeProbation}

	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindByEmployment(gomock.Any(), emp.ID.String(), allocation.StatusActive).
		Return([]allocation.FundingAllocation{unchanged, stale}, nil)
	d.repo.EXPECT().UpdateAmount(gomock.Any(), stale.ID.String(), int64(1_500_000), employment.SalaryTypePassProbation).Return(nil)

	err := d.service.RecalculateForEmployment(context.Background(), nil, *emp, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
}

func TestAllocationService_Calculate(t *testing.T) {
	d := setupServiceTest(t)
	emp := activeEmployment()
	ref := "2025-05-01"

	d.employments.EXPECT().FindByID(gomock.Any(), emp.ID.String()).Return(emp, nil)

	resp, err := d.service.Calculate(context.Background(), allocation.CalculateRequest{
		EmploymentID:  emp.ID.String(),
		ReferenceDate: &ref,
		Allocations: []allocation.AllocationItemRequest{
			{AllocationType: allocation.TypeGrant, PositionSlotID: uuid.NewString(), FTE: 7000},
			{AllocationType: allocation.TypeGrant, PositionSlotID: uuid.NewString(), FTE: 2000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3_000_000), resp.ActiveSalary)
	assert.Equal(t, employment.SalaryTypePassProbation, resp.SalaryType)
	assert.Equal(t, 9000, resp.TotalFTE)
	assert.Equal(t, int64(2_700_000), resp.TotalAmount)
	assert.False(t, resp.IsValid)
}

func TestAllocationService_EndForEmployment(t *testing.T) {
	d := setupServiceTest(t)
	id := uuid.NewString()
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().CloseActive(gomock.Any(), id, allocation.StatusInactive, end).Return(int64(2), nil)

	assert.NoError(t, d.service.EndForEmployment(context.Background(), nil, id, end))
}
