package domain

import "github.com/golang-jwt/jwt/v5"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the JWT payload issued by auth and read by middleware.
type TokenClaims struct {
	UserID     string   `json:"user_id"`
	EmployeeID string   `json:"employee_id,omitempty"`
	Roles      []string `json:"roles"`
	TokenType  string   `json:"token_type"`
	jwt.RegisteredClaims
}
