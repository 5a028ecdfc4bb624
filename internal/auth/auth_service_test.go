package auth_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/auth"
	autherrors "go-hrms/internal/auth/errors"
	mock_auth "go-hrms/internal/auth/mock"
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/user"
	mock_user "go-hrms/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

type deps struct {
	users  *mock_user.MockRepository
	roles  *mock_auth.MockRoleProvider
	tokens *mock_auth.MockTokenStore
	svc    auth.Service
}

func newDeps(t *testing.T) deps {
	ctrl := gomock.NewController(t)
	d := deps{
		users:  mock_user.NewMockRepository(ctrl),
		roles:  mock_auth.NewMockRoleProvider(ctrl),
		tokens: mock_auth.NewMockTokenStore(ctrl),
	}
	d.svc = auth.NewService(d.users, d.roles, d.tokens, auth.TokenConfig{
		Secret:     testSecret,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	return d
}

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	empID := uuid.New()
	return &user.User{
		ID:         uuid.New(),
		EmployeeID: &empID,
		Name:       "Jane HR",
		Email:      "jane@hrms.test",
		Password:   string(hashed),
		IsActive:   true,
	}
}

func (d deps) expectDescribe(u *user.User) {
	d.roles.EXPECT().GetUserRoles(gomock.Any(), u.ID.String()).Return([]string{domain.RoleHRManager}, nil)
	d.roles.EXPECT().GetUserPermissions(gomock.Any(), u.ID.String()).Return([]string{"employee.read"}, nil)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues access and refresh tokens", func(t *testing.T) {
		d := newDeps(t)
		u := activeUser(t, "password123")

		d.users.EXPECT().FindByEmail(gomock.Any(), "jane@hrms.test").Return(u, nil)
		d.expectDescribe(u)
		d.users.EXPECT().UpdateLastLogin(gomock.Any(), u.ID.String(), gomock.Any()).Return(nil)

		access, refresh, resp, err := d.svc.Login(ctx, " Jane@HRMS.test ", "password123")

		require.NoError(t, err)
		assert.Equal(t, u.ID.String(), resp.ID)
		assert.Equal(t, []string{domain.RoleHRManager}, resp.Roles)
		assert.Equal(t, []string{"employee.read"}, resp.Permissions)

		claims, err := middleware.ParseToken(access, testSecret)
		require.NoError(t, err)
		assert.Equal(t, domain.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, u.EmployeeID.String(), claims.EmployeeID)
		assert.NotEmpty(t, claims.ID)

		refreshClaims, err := middleware.ParseToken(refresh, testSecret)
		require.NoError(t, err)
		assert.Equal(t, domain.TokenTypeRefresh, refreshClaims.TokenType)
		assert.NotEqual(t, claims.ID, refreshClaims.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		d := newDeps(t)

		d.users.EXPECT().FindByEmail(gomock.Any(), "ghost@hrms.test").Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := d.svc.Login(ctx, "ghost@hrms.test", "password123")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newDeps(t)
		u := activeUser(t, "password123")

		d.users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(u, nil)

		_, _, _, err := d.svc.Login(ctx, u.Email, "nope")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		d := newDeps(t)
		u := activeUser(t, "password123")
		u.IsActive = false

		d.users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(u, nil)

		_, _, _, err := d.svc.Login(ctx, u.Email, "password123")

		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	login := func(t *testing.T, d deps, u *user.User) (string, string) {
		d.users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(u, nil)
		d.expectDescribe(u)
		d.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		access, refresh, _, err := d.svc.Login(ctx, u.Email, "password123")
		require.NoError(t, err)
		return access, refresh
	}

	t.Run("rotates and revokes the presented token", func(t *testing.T) {
		d := newDeps(t)
		u := activeUser(t, "password123")
		_, refresh := login(t, d, u)
		old, err := middleware.ParseToken(refresh, testSecret)
		require.NoError(t, err)

		d.tokens.EXPECT().IsRevoked(gomock.Any(), old.ID).Return(false, nil)
		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)
		d.tokens.EXPECT().
			Revoke(gomock.Any(), old.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.Greater(t, ttl, 23*time.Hour)
				return nil
			})
		d.expectDescribe(u)

		access, newRefresh, resp, err := d.svc.RefreshToken(ctx, refresh)

		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEqual(t, refresh, newRefresh)
		assert.Equal(t, u.Email, resp.Email)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		d := newDeps(t)
		u := activeUser(t, "password123")
		access, _ := login(t, d, u)

		_, _, _, err := d.svc.RefreshToken(ctx, access)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		d := newDeps(t)
		u := activeUser(t, "password123")
		_, refresh := login(t, d, u)

		d.tokens.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

		_, _, _, err := d.svc.RefreshToken(ctx, refresh)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		d := newDeps(t)

		_, _, _, err := d.svc.RefreshToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes access token until expiry", func(t *testing.T) {
		d := newDeps(t)
		expires := time.Now().Add(10 * time.Minute)

		d.tokens.EXPECT().
			Revoke(gomock.Any(), "jti-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.InDelta(t, (10 * time.Minute).Seconds(), ttl.Seconds(), 5)
				return nil
			})

		assert.NoError(t, d.svc.Logout(ctx, "jti-1", expires, ""))
	})

	t.Run("ignores an unparsable refresh token", func(t *testing.T) {
		d := newDeps(t)

		d.tokens.EXPECT().Revoke(gomock.Any(), "jti-2", gomock.Any()).Return(nil)

		assert.NoError(t, d.svc.Logout(ctx, "jti-2", time.Now().Add(time.Minute), "garbage"))
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := newDeps(t)
		u := activeUser(t, "password123")

		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)
		d.expectDescribe(u)

		resp, err := d.svc.GetMe(ctx, u.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "Jane HR", resp.Name)
		require.NotNil(t, resp.EmployeeID)
	})

	t.Run("deleted user", func(t *testing.T) {
		d := newDeps(t)

		d.users.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := d.svc.GetMe(ctx, "missing")

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
