package position_test

import (
	"context"
	"testing"

	"go-hrms/internal/position"
	positionerrors "go-hrms/internal/position/errors"
	"go-hrms/internal/position/mock"
	"go-hrms/internal/shared/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func TestPositionService_Create(t *testing.T) {
	ctx := context.Background()
	deptID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		svc := position.NewService(repo, cache.New(rdb))

		parent := &position.Position{ID: uuid.New(), Title: "Head of Finance", DepartmentID: deptID}
		var created *position.Position

		repo.EXPECT().FindByID(ctx, parent.ID.String()).Return(parent, nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *position.Position) error {
				created = p
				return nil
			})
		rmock.ExpectDel(position.OptionsKey(""), position.OptionsKey(deptID.String())).SetVal(1)
		repo.EXPECT().
			FindByID(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (*position.Position, error) {
				return created, nil
			})

		res, err := svc.Create(ctx, position.CreatePositionRequest{
			Title:        "Accountant",
			DepartmentID: deptID.String(),
			ReportsToID:  ptr(parent.ID.String()),
		})

		require.NoError(t, err)
		assert.Equal(t, "Accountant", res.Title)
		assert.Equal(t, 1, res.Level)
		assert.True(t, res.IsActive)
		assert.Equal(t, parent.ID.String(), *res.ReportsToID)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("missing reporting position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := position.NewService(repo, cache.New(nil))

		missing := uuid.NewString()
		repo.EXPECT().FindByID(ctx, missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(ctx, position.CreatePositionRequest{
			Title:        "Accountant",
			DepartmentID: deptID.String(),
			ReportsToID:  &missing,
		})
		assert.ErrorIs(t, err, positionerrors.ErrReportsToNotFound)
	})

	t.Run("unknown department from foreign key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := position.NewService(repo, cache.New(nil))

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_positions_department"})

		_, err := svc.Create(ctx, position.CreatePositionRequest{Title: "Driver", DepartmentID: deptID.String()})
		assert.ErrorIs(t, err, positionerrors.ErrDepartmentNotFound)
	})
}

func TestPositionService_Update_RejectsCycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := position.NewService(repo, cache.New(nil))

	deptID := uuid.New()
	manager := &position.Position{ID: uuid.New(), Title: "Manager", DepartmentID: deptID}
	lead := &position.Position{ID: uuid.New(), Title: "Lead", DepartmentID: deptID, ReportsToID: &manager.ID}
	staff := &position.Position{ID: uuid.New(), Title: "Staff", DepartmentID: deptID, ReportsToID: &lead.ID}

	repo.EXPECT().FindByID(ctx, manager.ID.String()).Return(manager, nil)
	repo.EXPECT().FindByID(ctx, staff.ID.String()).Return(staff, nil)
	repo.EXPECT().FindByID(ctx, lead.ID.String()).Return(lead, nil)

	_, err := svc.Update(ctx, manager.ID.String(), position.UpdatePositionRequest{
		Title:        "Manager",
		DepartmentID: deptID.String(),
		ReportsToID:  ptr(staff.ID.String()),
	})

	assert.ErrorIs(t, err, positionerrors.ErrReportingCycle)
}

func TestPositionService_GetByID_Invalid(t *testing.T) {
	svc := position.NewService(mock.NewMockRepository(gomock.NewController(t)), cache.New(nil))

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, positionerrors.ErrInvalidPositionID)
}
