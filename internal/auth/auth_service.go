package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	Logout(ctx context.Context, accessTokenID string, accessExpiresAt time.Time, refreshToken string) error
}

// RoleProvider is satisfied by rbac.Service.
type RoleProvider interface {
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
	GetUserPermissions(ctx context.Context, userID string) ([]string, error)
}

type TokenConfig struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type service struct {
	users  user.Repository
	roles  RoleProvider
	tokens TokenStore
	cfg    TokenConfig
	now    func() time.Time
}

func NewService(users user.Repository, roles RoleProvider, tokens TokenStore, cfg TokenConfig) Service {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &service{
		users:  users,
		roles:  roles,
		tokens: tokens,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", "", AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	access, refresh, resp, err := s.issuePair(ctx, u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID.String(), s.now()); err != nil {
		l.Warn("failed to record last login", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	l.Info("user logged in", zap.String("user_id", u.ID.String()))
	return access, refresh, resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	claims, err := middleware.ParseToken(refreshToken, s.cfg.Secret)
	if err != nil || claims.TokenType != domain.TokenTypeRefresh {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	if revoked {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", AuthResponse{}, autherrors.ErrUserNotFound
		}
		return "", "", AuthResponse{}, err
	}
	if !u.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	// Rotation: the presented refresh token is single use.
	if err := s.tokens.Revoke(ctx, claims.ID, s.remaining(claims)); err != nil {
		return "", "", AuthResponse{}, err
	}

	return s.issuePair(ctx, u)
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}

	resp, err := s.describe(ctx, u)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) Logout(ctx context.Context, accessTokenID string, accessExpiresAt time.Time, refreshToken string) error {
	if err := s.tokens.Revoke(ctx, accessTokenID, accessExpiresAt.Sub(s.now())); err != nil {
		return err
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := middleware.ParseToken(refreshToken, s.cfg.Secret)
	if err != nil || claims.TokenType != domain.TokenTypeRefresh {
		return nil
	}
	return s.tokens.Revoke(ctx, claims.ID, s.remaining(claims))
}

func (s *service) issuePair(ctx context.Context, u *user.User) (string, string, AuthResponse, error) {
	resp, err := s.describe(ctx, u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	employeeID := ""
	if resp.EmployeeID != nil {
		employeeID = *resp.EmployeeID
	}

	access, err := s.generateToken(resp.ID, employeeID, resp.Roles, domain.TokenTypeAccess, s.cfg.AccessTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(resp.ID, employeeID, resp.Roles, domain.TokenTypeRefresh, s.cfg.RefreshTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return access, refresh, resp, nil
}

func (s *service) describe(ctx context.Context, u *user.User) (AuthResponse, error) {
	roles, err := s.roles.GetUserRoles(ctx, u.ID.String())
	if err != nil {
		return AuthResponse{}, err
	}
	perms, err := s.roles.GetUserPermissions(ctx, u.ID.String())
	if err != nil {
		return AuthResponse{}, err
	}
	if roles == nil {
		roles = []string{}
	}
	if perms == nil {
		perms = []string{}
	}

	resp := AuthResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Roles:       roles,
		Permissions: perms,
	}
	if u.EmployeeID != nil {
		v := u.EmployeeID.String()
		resp.EmployeeID = &v
	}
	return resp, nil
}

func (s *service) generateToken(userID, employeeID string, roles []string, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := domain.TokenClaims{
		UserID:     userID,
		EmployeeID: employeeID,
		Roles:      roles,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.Secret)
}

func (s *service) remaining(claims *domain.TokenClaims) time.Duration {
	if claims.ExpiresAt == nil {
		return s.cfg.RefreshTTL
	}
	return claims.ExpiresAt.Sub(s.now())
}
