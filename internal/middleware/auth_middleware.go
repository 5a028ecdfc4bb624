package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-hrms/internal/domain"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errTokenInvalid = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	errTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
	errTokenRevoked = apperror.New(apperror.CodeUnauthorized, "Token has been revoked", http.StatusUnauthorized)
)

// TokenDenylist reports whether a token id was revoked by logout.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthConfig struct {
	Secret   []byte
	Denylist TokenDenylist
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenString string, secret []byte) (*domain.TokenClaims, error) {
	claims := &domain.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errTokenExpired
		}
		return nil, errTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errTokenInvalid
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

func AuthMiddleware(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortWith(c, errTokenMissing)
			return
		}

		claims, err := ParseToken(tokenString, cfg.Secret)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				abortWith(c, appErr)
				return
			}
			abortWith(c, errTokenInvalid)
			return
		}

		if claims.TokenType != domain.TokenTypeAccess {
			abortWith(c, errTokenInvalid)
			return
		}

		if cfg.Denylist != nil && claims.ID != "" {
			revoked, err := cfg.Denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				abortWith(c, errTokenRevoked)
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("employee_id", claims.EmployeeID)
		c.Set("roles", claims.Roles)
		c.Set("token_id", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_expires_at", claims.ExpiresAt.Time)
		}

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		ctx = contextutil.WithRoles(ctx, claims.Roles)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware allows the request when the user holds any of allowedRoles.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, role := range CurrentRoles(c) {
			for _, allowed := range allowedRoles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}

		abortWith(c, apperror.ErrForbidden)
	}
}

func CurrentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

func CurrentRoles(c *gin.Context) []string {
	roles, _ := c.Get("roles")
	if r, ok := roles.([]string); ok {
		return r
	}
	return nil
}
