package rbac

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"
	"go-hrms/internal/rbac/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo implements only what the service paths under test touch.
type fakeRepo struct {
	Repository
	userRoles   []UserRoleRow
	rolePerms   []RolePermissionRow
	loads       int
	roles       map[string]Role
	perms       map[string]Permission
	assigned    []uuid.UUID
	replacedFor uuid.UUID
}

func (f *fakeRepo) GetUserRoles(ctx context.Context) ([]UserRoleRow, error) {
	f.loads++
	return f.userRoles, nil
}

func (f *fakeRepo) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	return f.rolePerms, nil
}

func (f *fakeRepo) FindRolesByNames(ctx context.Context, names []string) ([]Role, error) {
	var out []Role
	for _, n := range names {
		if r, ok := f.roles[n]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ReplaceUserRoles(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error {
	f.replacedFor = userID
	f.assigned = roleIDs
	return nil
}

func (f *fakeRepo) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	for _, r := range f.roles {
		if r.ID.String() == id {
			role := r
			return &role, nil
		}
	}
	return nil, rbacerrors.ErrRoleNotFound
}

func (f *fakeRepo) FindPermissionsByNames(ctx context.Context, names []string) ([]Permission, error) {
	var out []Permission
	for _, n := range names {
		if p, ok := f.perms[n]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService(t *testing.T, repo *fakeRepo) *service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	return NewService(repo, enforcer).(*service)
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &fakeRepo{
		userRoles: []UserRoleRow{
			{UserID: "user-hr", RoleName: domain.RoleHRManager},
			{UserID: "user-admin", RoleName: domain.RoleAdmin},
		},
		rolePerms: []RolePermissionRow{
			{RoleName: domain.RoleHRManager, Resource: "employee", Action: domain.ActionRead},
			{RoleName: domain.RoleAdmin, Resource: "*", Action: "*"},
		},
	}
	svc := newTestService(t, repo)
	ctx := context.Background()

	allowed, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: "user-hr", Resource: "employee", Action: domain.ActionRead})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: "user-hr", Resource: "payroll", Action: domain.ActionDelete})
	assert.NoError(t, err)
	assert.False(t, denied)

	wildcard, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: "user-admin", Resource: "payroll", Action: domain.ActionApprove})
	assert.NoError(t, err)
	assert.True(t, wildcard)

	stranger, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: "nobody", Resource: "employee", Action: domain.ActionRead})
	assert.NoError(t, err)
	assert.False(t, stranger)

	assert.Equal(t, 1, repo.loads, "policy is cached between calls")
}

func TestRBACService_PolicyReloadAfterTTL(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, _ = svc.Enforce(context.Background(), domain.EnforceRequest{UserID: "u", Resource: "employee", Action: "read"})
	now = now.Add(policyTTL + time.Second)
	_, _ = svc.Enforce(context.Background(), domain.EnforceRequest{UserID: "u", Resource: "employee", Action: "read"})

	assert.Equal(t, 2, repo.loads)
}

func TestRBACService_AssignUserRoles(t *testing.T) {
	hrRole := Role{ID: uuid.New(), Name: domain.RoleHRManager}
	repo := &fakeRepo{roles: map[string]Role{domain.RoleHRManager: hrRole}}
	svc := newTestService(t, repo)
	userID := uuid.New()

	t.Run("success invalidates policy", func(t *testing.T) {
		svc.loadedAt = time.Now()
		roles, err := svc.AssignUserRoles(context.Background(), userID.String(), []string{domain.RoleHRManager, domain.RoleHRManager})
		assert.NoError(t, err)
		assert.Equal(t, []string{domain.RoleHRManager}, roles)
		assert.Equal(t, userID, repo.replacedFor)
		assert.Equal(t, []uuid.UUID{hrRole.ID}, repo.assigned)
		assert.True(t, svc.loadedAt.IsZero())
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.AssignUserRoles(context.Background(), userID.String(), []string{"ghost"})
		assert.ErrorIs(t, err, rbacerrors.ErrUnknownRole)
	})
}

func TestRBACService_SystemRoleLocked(t *testing.T) {
	admin := Role{ID: uuid.New(), Name: domain.RoleAdmin, IsSystem: true}
	repo := &fakeRepo{roles: map[string]Role{domain.RoleAdmin: admin}}
	svc := newTestService(t, repo)

	err := svc.DeleteRole(context.Background(), admin.ID.String())
	assert.ErrorIs(t, err, rbacerrors.ErrSystemRoleLocked)

	_, err = svc.UpdateRole(context.Background(), admin.ID.String(), UpdateRoleRequest{Name: "superuser"})
	assert.ErrorIs(t, err, rbacerrors.ErrSystemRoleLocked)
}

func TestRBACService_CreateRoleUnknownPermission(t *testing.T) {
	repo := &fakeRepo{perms: map[string]Permission{"employee.read": {ID: uuid.New(), Name: "employee.read"}}}
	svc := newTestService(t, repo)

	_, err := svc.CreateRole(context.Background(), CreateRoleRequest{
		Name:        "auditor",
		Permissions: []string{"employee.read", "payroll.nuke"},
	})
	assert.ErrorIs(t, err, rbacerrors.ErrUnknownPermission)
}
