package auth

import (
	"net/http"
	"strings"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
	logger  *zap.Logger
}

func NewHandler(s Service, cookies CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, cookies: cookies, logger: l}
}

// isWebClient reports whether tokens should also be delivered as HttpOnly
// cookies. Browsers opt in with X-Client-Type: web.
func isWebClient(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.GetHeader("X-Client-Type")), "web")
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeTokens(c *gin.Context, message, access, refresh string, user AuthResponse) {
	if isWebClient(c) {
		h.setCookie(c, accessCookie, access, int(h.cookies.AccessTTL.Seconds()))
		h.setCookie(c, refreshCookie, refresh, int(h.cookies.RefreshTTL.Seconds()))
	}

	response.Success(c, http.StatusOK, message, TokenResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(h.cookies.AccessTTL.Seconds()),
	}, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	access, refresh, user, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.writeTokens(c, "Login successful", access, refresh, user)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
	}

	token := strings.TrimSpace(req.RefreshToken)
	if token == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			token = cookie
		}
	}
	if token == "" {
		response.FromError(c, autherrors.ErrMissingRefreshToken)
		return
	}

	access, refresh, user, err := h.service.RefreshToken(c.Request.Context(), token)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.writeTokens(c, "Token refreshed", access, refresh, user)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.GetMe(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Authenticated user", resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	var req LogoutRequest
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&req)
	}
	refresh := strings.TrimSpace(req.RefreshToken)
	if refresh == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			refresh = cookie
		}
	}

	expiresAt := c.GetTime("token_expires_at")
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	if err := h.service.Logout(ctx, c.GetString("token_id"), expiresAt, refresh); err != nil {
		response.FromError(c, err)
		return
	}

	h.setCookie(c, accessCookie, "", -1)
	h.setCookie(c, refreshCookie, "", -1)
	response.Success(c, http.StatusOK, "Logout successful", nil, nil)
}
