package grant_test

import (
	"context"
	"testing"

	"go-hrms/internal/grant"
	granterrors "go-hrms/internal/grant/errors"
	grantMock "go-hrms/internal/grant/mock"
	"go-hrms/internal/shared/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupServiceTest(t *testing.T) (grant.Service, *grantMock.MockRepository, sqlmock.Sqlmock) {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := grantMock.NewMockRepository(ctrl)
	return grant.NewService(db, repo, cache.New(nil)), repo, sqlMock
}

func slotsOf(itemID uuid.UUID, n int) []grant.PositionSlot {
	slots := make([]grant.PositionSlot, n)
	for i := range slots {
		slots[i] = grant.PositionSlot{ID: uuid.New(), GrantItemID: itemID, SlotNumber: i + 1}
	}
	return slots
}

func TestGrantService_CreateItem_CreatesSlots(t *testing.T) {
	svc, repo, sqlMock := setupServiceTest(t)
	grantID := uuid.New()

	var created grant.GrantItem
	sqlMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().FindByID(gomock.Any(), grantID.String()).Return(&grant.Grant{ID: grantID, Code: "G-01"}, nil)
	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *grant.GrantItem) error {
			created = *item
			return nil
		})
	repo.EXPECT().FindSlots(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().CreateSlots(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, slots []grant.PositionSlot) error {
			require.Len(t, slots, 3)
			for i, sl := range slots {
				assert.Equal(t, i+1, sl.SlotNumber)
				assert.Equal(t, "BL-100", sl.BudgetLineCode)
				assert.Equal(t, created.ID, sl.GrantItemID)
			}
			return nil
		})
	sqlMock.ExpectCommit()

	repo.EXPECT().FindItemByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) (*grant.GrantItem, error) { return &created, nil })
	repo.EXPECT().FindSlots(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ...string) ([]grant.PositionSlot, error) { return slotsOf(created.ID, 3), nil })
	repo.EXPECT().Occupants(gomock.Any(), gomock.Any()).Return(map[string]grant.Occupant{}, nil)

	resp, err := svc.CreateItem(context.Background(), grantID.String(), grant.GrantItemRequest{
		PositionTitle:  "Research Assistant",
		GrantSalary:    2_500_000,
		LevelOfEffort:  10000,
		PositionNumber: 3,
		BudgetLineCode: " BL-100 ",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 3)
	assert.Zero(t, resp.FilledSlots)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGrantService_UpdateItem_ReconcilesSlots(t *testing.T) {
	t.Run("shrinking over an occupied slot fails", func(t *testing.T) {
		svc, repo, sqlMock := setupServiceTest(t)
		item := &grant.GrantItem{ID: uuid.New(), PositionTitle: "Nurse", PositionNumber: 3, LevelOfEffort: 10000}
		slots := slotsOf(item.ID, 3)

		sqlMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindItemByID(gomock.Any(), item.ID.String()).Return(item, nil)
		repo.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().FindSlots(gomock.Any(), item.ID.String()).Return(slots, nil)
		repo.EXPECT().Occupants(gomock.Any(), slots[2].ID.String()).
			Return(map[string]grant.Occupant{slots[2].ID.String(): {SlotID: slots[2].ID.String()}}, nil)
		sqlMock.ExpectRollback()

		_, err := svc.UpdateItem(context.Background(), item.ID.String(), grant.GrantItemRequest{
			PositionTitle: "Nurse", LevelOfEffort: 10000, PositionNumber: 2,
		})
		assert.ErrorIs(t, err, granterrors.ErrSlotsOccupied)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("shrinking free slots deletes them and renames budget line", func(t *testing.T) {
		svc, repo, sqlMock := setupServiceTest(t)
		item := &grant.GrantItem{ID: uuid.New(), PositionTitle: "Nurse", PositionNumber: 3, BudgetLineCode: "OLD"}
		slots := slotsOf(item.ID, 3)

		sqlMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindItemByID(gomock.Any(), item.ID.String()).Return(item, nil)
		repo.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().FindSlots(gomock.Any(), item.ID.String()).Return(slots, nil)
		repo.EXPECT().Occupants(gomock.Any(), slots[2].ID.String()).Return(map[string]grant.Occupant{}, nil)
		repo.EXPECT().DeleteSlots(gomock.Any(), []string{slots[2].ID.String()}).Return(nil)
		repo.EXPECT().UpdateSlotBudgetLine(gomock.Any(), item.ID.String(), "NEW").Return(nil)
		repo.EXPECT().CreateSlots(gomock.Any(), gomock.Nil()).Return(nil)
		sqlMock.ExpectCommit()

		repo.EXPECT().FindItemByID(gomock.Any(), item.ID.String()).Return(item, nil)
		repo.EXPECT().FindSlots(gomock.Any(), item.ID.String()).Return(slots[:2], nil)
		repo.EXPECT().Occupants(gomock.Any(), slots[0].ID.String(), slots[1].ID.String()).
			Return(map[string]grant.Occupant{
				slots[0].ID.String(): {SlotID: slots[0].ID.String(), StaffID: "EMP-000001", EmployeeName: "Nok Saelee", FTE: 6000},
			}, nil)

		resp, err := svc.UpdateItem(context.Background(), item.ID.String(), grant.GrantItemRequest{
			PositionTitle: "Nurse", LevelOfEffort: 10000, PositionNumber: 2, BudgetLineCode: "NEW",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.PositionNumber)
		assert.Equal(t, 1, resp.FilledSlots)
		require.NotNil(t, resp.Slots[0].Occupant)
		assert.Equal(t, "EMP-000001", resp.Slots[0].Occupant.StaffID)
		assert.False(t, resp.Slots[1].Occupied)
	})
}

func TestGrantService_Delete(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		svc, repo, _ := setupServiceTest(t)
		id := uuid.NewString()
		repo.EXPECT().CountActiveAllocations(gomock.Any(), id).Return(int64(2), nil)

		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, granterrors.ErrGrantInUse)
	})

	t.Run("success", func(t *testing.T) {
		svc, repo, _ := setupServiceTest(t)
		id := uuid.NewString()
		repo.EXPECT().CountActiveAllocations(gomock.Any(), id).Return(int64(0), nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _, _ := setupServiceTest(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), "x"), granterrors.ErrInvalidGrantID)
	})
}

func TestGrantService_Create_InvalidDates(t *testing.T) {
	svc, _, _ := setupServiceTest(t)
	start, end := "2025-06-01", "2025-01-01"

	_, err := svc.Create(context.Background(), grant.CreateGrantRequest{
		Code: "g-1", Name: "Malaria", StartDate: &start, EndDate: &end,
	})
	assert.ErrorIs(t, err, granterrors.ErrInvalidEndDate)
}
