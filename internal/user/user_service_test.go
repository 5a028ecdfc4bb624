package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/shared/query"
	"go-hrms/internal/user"
	usererrors "go-hrms/internal/user/errors"
	mock_user "go-hrms/internal/user/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*mock_user.MockRepository, *mock_user.MockRoleAssigner, user.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRoles := mock_user.NewMockRoleAssigner(ctrl)
	return mockRepo, mockRoles, user.NewService(mockRepo, mockRoles)
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success with roles", func(t *testing.T) {
		mockRepo, mockRoles, svc := setup(t)
		id := uuid.New()

		mockRepo.EXPECT().
			FindAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req user.ListUsersRequest) ([]user.User, int64, error) {
				assert.Equal(t, 1, req.Page)
				assert.Equal(t, query.DefaultPerPage, req.PerPage)
				return []user.User{{ID: id, Email: "john@mail.com", IsActive: true}}, 1, nil
			})
		mockRoles.EXPECT().GetUserRoles(gomock.Any(), id.String()).Return([]string{"hr-manager"}, nil)

		res, total, err := svc.GetAll(ctx, user.ListUsersRequest{})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, res, 1)
		assert.Equal(t, "john@mail.com", res[0].Email)
		assert.Equal(t, []string{"hr-manager"}, res[0].Roles)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db error"))

		res, total, err := svc.GetAll(ctx, user.ListUsersRequest{})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Zero(t, total)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockRepo, mockRoles, svc := setup(t)
		empID := uuid.New()
		lastLogin := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		mockRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&user.User{
			ID:          uuid.MustParse(userID),
			EmployeeID:  &empID,
			Email:       "john@mail.com",
			IsActive:    true,
			LastLoginAt: &lastLogin,
		}, nil)
		mockRoles.EXPECT().GetUserRoles(gomock.Any(), userID).Return(nil, nil)

		res, err := svc.GetByID(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, userID, res.ID)
		require.NotNil(t, res.EmployeeID)
		assert.Equal(t, empID.String(), *res.EmployeeID)
		require.NotNil(t, res.LastLoginAt)
		assert.Equal(t, "2026-01-02T03:04:05Z", *res.LastLoginAt)
		assert.Equal(t, []string{}, res.Roles)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, userID)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, svc := setup(t)

		_, err := svc.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success hashes password and assigns roles", func(t *testing.T) {
		mockRepo, mockRoles, svc := setup(t)

		mockRepo.EXPECT().ExistsByEmployeeID(gomock.Any(), employeeID, "").Return(false, nil)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, "john@mail.com", u.Email)
				assert.True(t, u.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
				return nil
			})
		mockRoles.EXPECT().
			AssignUserRoles(gomock.Any(), gomock.Any(), []string{"employee"}).
			Return([]string{"employee"}, nil)

		res, err := svc.Create(ctx, user.CreateUserRequest{
			Name:       "John",
			Email:      "  John@Mail.com ",
			Password:   "secret123",
			EmployeeID: &employeeID,
			Roles:      []string{"employee"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "john@mail.com", res.Email)
		assert.Equal(t, []string{"employee"}, res.Roles)
	})

	t.Run("employee already linked", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().ExistsByEmployeeID(gomock.Any(), employeeID, "").Return(true, nil)

		_, err := svc.Create(ctx, user.CreateUserRequest{
			Name:       "John",
			Email:      "john@mail.com",
			Password:   "secret123",
			EmployeeID: &employeeID,
		})

		assert.ErrorIs(t, err, usererrors.ErrEmployeeAlreadyLinked)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

		_, err := svc.Create(ctx, user.CreateUserRequest{
			Name:     "John",
			Email:    "john@mail.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})

	t.Run("role assignment failure removes user", func(t *testing.T) {
		mockRepo, mockRoles, svc := setup(t)

		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockRoles.EXPECT().
			AssignUserRoles(gomock.Any(), gomock.Any(), []string{"ghost"}).
			Return(nil, errors.New("unknown role"))
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Create(ctx, user.CreateUserRequest{
			Name:     "John",
			Email:    "john@mail.com",
			Password: "secret123",
			Roles:    []string{"ghost"},
		})

		assert.EqualError(t, err, "unknown role")
	})
}

func TestUserService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&user.User{IsActive: true}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.False(t, u.IsActive)
				return nil
			})

		err := svc.ToggleStatus(ctx, uuid.New().String(), userID, false)

		assert.NoError(t, err)
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		_, _, svc := setup(t)

		err := svc.ToggleStatus(ctx, userID, userID, false)

		assert.ErrorIs(t, err, usererrors.ErrCannotDeactivateSelf)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)

	t.Run("success", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&user.User{Password: string(hashed)}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-password")))
				return nil
			})

		err := svc.ChangePassword(ctx, userID, "old-password", "new-password")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&user.User{Password: string(hashed)}, nil)

		err := svc.ChangePassword(ctx, userID, "wrong", "new-password")

		assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("cannot delete self", func(t *testing.T) {
		_, _, svc := setup(t)

		err := svc.Delete(ctx, userID, userID)

		assert.ErrorIs(t, err, usererrors.ErrCannotDeleteSelf)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Delete(gomock.Any(), userID).Return(gorm.ErrRecordNotFound)

		err := svc.Delete(ctx, uuid.New().String(), userID)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
