package rbac

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// policyTTL bounds how stale a replica's in-memory policy can get after
// another replica edits roles.
const policyTTL = 30 * time.Second

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)

	GetUserRoles(ctx context.Context, userID string) ([]string, error)
	GetUserPermissions(ctx context.Context, userID string) ([]string, error)
	AssignUserRoles(ctx context.Context, userID string, roleNames []string) ([]string, error)
	UserIDsWithRoles(ctx context.Context, roleNames ...string) ([]string, error)

	ListRoles(ctx context.Context) ([]RoleResponse, error)
	GetRole(ctx context.Context, id string) (RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger

	mu       sync.Mutex
	loadedAt time.Time
	now      func() time.Time
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	userRoles, err := s.repo.GetUserRoles(ctx)
	if err != nil {
		return err
	}
	rolePerms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}

	s.enforcer.ClearPolicy()

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleName); err != nil {
			return err
		}
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleName, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt = s.now()
	s.logger.Debug("rbac policy loaded",
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) invalidate() {
	s.mu.Lock()
	s.loadedAt = time.Time{}
	s.mu.Unlock()
}

func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadedAt.IsZero() || s.now().Sub(s.loadedAt) > policyTTL {
		if err := s.loadPolicyUnlocked(ctx); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	return s.repo.RoleNamesForUser(ctx, userID)
}

func (s *service) GetUserPermissions(ctx context.Context, userID string) ([]string, error) {
	return s.repo.PermissionNamesForUser(ctx, userID)
}

func (s *service) UserIDsWithRoles(ctx context.Context, roleNames ...string) ([]string, error) {
	if len(roleNames) == 0 {
		return nil, nil
	}
	return s.repo.UserIDsByRoleNames(ctx, roleNames)
}

func (s *service) AssignUserRoles(ctx context.Context, userID string, roleNames []string) ([]string, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, rbacerrors.ErrUnknownRole
	}

	roleNames = uniqueStrings(roleNames)
	roles, err := s.repo.FindRolesByNames(ctx, roleNames)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(roleNames) {
		return nil, rbacerrors.ErrUnknownRole
	}

	roleIDs := make([]uuid.UUID, len(roles))
	for i, r := range roles {
		roleIDs[i] = r.ID
	}
	if err := s.repo.ReplaceUserRoles(ctx, uid, roleIDs); err != nil {
		return nil, err
	}

	s.invalidate()
	s.logger.Info("user roles assigned", zap.String("user_id", userID), zap.Strings("roles", roleNames))
	return roleNames, nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]RoleResponse, len(roles))
	for i, role := range roles {
		perms, err := s.repo.GetPermissionNamesByRoleID(ctx, role.ID.String())
		if err != nil {
			return nil, err
		}
		resp[i] = mapRoleResponse(role, perms)
	}
	return resp, nil
}

func (s *service) GetRole(ctx context.Context, id string) (RoleResponse, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	perms, err := s.repo.GetPermissionNamesByRoleID(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapRoleResponse(*role, perms), nil
}

func (s *service) resolvePermissionIDs(ctx context.Context, names []string) ([]uuid.UUID, error) {
	names = uniqueStrings(names)
	if len(names) == 0 {
		return nil, nil
	}
	perms, err := s.repo.FindPermissionsByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(perms) != len(names) {
		return nil, rbacerrors.ErrUnknownPermission
	}
	ids := make([]uuid.UUID, len(perms))
	for i, p := range perms {
		ids[i] = p.ID
	}
	return ids, nil
}

func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	permIDs, err := s.resolvePermissionIDs(ctx, req.Permissions)
	if err != nil {
		return RoleResponse{}, err
	}

	role := &Role{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	if err := s.repo.ReplaceRolePermissions(ctx, role.ID, permIDs); err != nil {
		return RoleResponse{}, err
	}

	s.invalidate()
	return mapRoleResponse(*role, uniqueStrings(req.Permissions)), nil
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	if req.Name != "" && req.Name != role.Name {
		if role.IsSystem {
			return RoleResponse{}, rbacerrors.ErrSystemRoleLocked
		}
		role.Name = req.Name
	}
	role.Description = req.Description

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	if req.Permissions != nil {
		permIDs, err := s.resolvePermissionIDs(ctx, req.Permissions)
		if err != nil {
			return RoleResponse{}, err
		}
		if err := s.repo.ReplaceRolePermissions(ctx, role.ID, permIDs); err != nil {
			return RoleResponse{}, err
		}
	}

	s.invalidate()

	perms, err := s.repo.GetPermissionNamesByRoleID(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapRoleResponse(*role, perms), nil
}

func (s *service) DeleteRole(ctx context.Context, id string) error {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if role.IsSystem {
		return rbacerrors.ErrSystemRoleLocked
	}
	if err := s.repo.DeleteRole(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		resp[i] = PermissionResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	return resp, nil
}

func mapRoleResponse(role Role, perms []string) RoleResponse {
	if perms == nil {
		perms = []string{}
	}
	return RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
		IsSystem:    role.IsSystem,
		Permissions: perms,
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rbacerrors.ErrRoleNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return rbacerrors.ErrRoleAlreadyExists
	}
	return err
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
