package user

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/shared/contextutil"
	usererrors "go-hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context, req ListUsersRequest) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	AssignRoles(ctx context.Context, id string, roles []string) (UserResponse, error)
	ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, id, newPassword string) error
	Delete(ctx context.Context, actorID, id string) error
}

// RoleAssigner is satisfied by rbac.Service.
type RoleAssigner interface {
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
	AssignUserRoles(ctx context.Context, userID string, roleNames []string) ([]string, error)
}

type service struct {
	repo  Repository
	roles RoleAssigner
}

func NewService(repo Repository, roles RoleAssigner) Service {
	return &service{
		repo:  repo,
		roles: roles,
	}
}

func (s *service) GetAll(ctx context.Context, req ListUsersRequest) ([]UserResponse, int64, error) {
	req.Params = req.Params.Normalize()

	users, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		roles, err := s.roles.GetUserRoles(ctx, u.ID.String())
		if err != nil {
			return nil, 0, err
		}
		resp = append(resp, mapToResponse(u, roles))
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	roles, err := s.roles.GetUserRoles(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u, roles), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	email := normalizeEmail(req.Email)
	l.Info("creating user", zap.String("email", email))

	employeeID, err := s.resolveEmployeeLink(ctx, req.EmployeeID, "")
	if err != nil {
		return UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Password:   string(hashed),
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	roles := []string{}
	if len(req.Roles) > 0 {
		roles, err = s.roles.AssignUserRoles(ctx, u.ID.String(), req.Roles)
		if err != nil {
			l.Warn("rolling back user without roles", zap.String("user_id", u.ID.String()), zap.Error(err))
			_ = s.repo.Delete(ctx, u.ID.String())
			return UserResponse{}, err
		}
	}

	l.Info("user created", zap.String("user_id", u.ID.String()))
	return mapToResponse(*u, roles), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	employeeID, err := s.resolveEmployeeLink(ctx, req.EmployeeID, id)
	if err != nil {
		return UserResponse{}, err
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Email = normalizeEmail(req.Email)
	u.EmployeeID = employeeID

	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	roles, err := s.roles.GetUserRoles(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u, roles), nil
}

func (s *service) AssignRoles(ctx context.Context, id string, roles []string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	assigned, err := s.roles.AssignUserRoles(ctx, id, roles)
	if err != nil {
		return UserResponse{}, err
	}

	contextutil.GetLogger(ctx, nil).Info("user roles replaced",
		zap.String("user_id", id),
		zap.Strings("roles", assigned),
	)
	return mapToResponse(*u, assigned), nil
}

func (s *service) ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	if actorID == id && !isActive {
		return usererrors.ErrCannotDeactivateSelf
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	u.IsActive = isActive
	if err := s.repo.Update(ctx, u); err != nil {
		contextutil.GetLogger(ctx, nil).Error("failed to update user status", zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}

	return s.setPassword(ctx, u, newPassword)
}

func (s *service) ResetPassword(ctx context.Context, id, newPassword string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	return s.setPassword(ctx, u, newPassword)
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	if actorID == id {
		return usererrors.ErrCannotDeleteSelf
	}
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) setPassword(ctx context.Context, u *User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		contextutil.GetLogger(ctx, nil).Error("failed to hash new password", zap.Error(err))
		return err
	}

	u.Password = string(hashed)
	return mapRepositoryError(s.repo.Update(ctx, u))
}

// resolveEmployeeLink validates an optional employee link. A user may be
// linked to at most one employee and vice versa.
func (s *service) resolveEmployeeLink(ctx context.Context, raw *string, excludeUserID string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, usererrors.ErrInvalidEmployeeID
	}

	linked, err := s.repo.ExistsByEmployeeID(ctx, id.String(), excludeUserID)
	if err != nil {
		return nil, err
	}
	if linked {
		return nil, usererrors.ErrEmployeeAlreadyLinked
	}
	return &id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapToResponse(u User, roles []string) UserResponse {
	if roles == nil {
		roles = []string{}
	}

	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		Roles:     roles,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.EmployeeID != nil {
		v := u.EmployeeID.String()
		resp.EmployeeID = &v
	}
	if u.LastLoginAt != nil {
		v := u.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &v
	}
	return resp
}
