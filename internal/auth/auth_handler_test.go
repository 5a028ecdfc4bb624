package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/auth"
	autherrors "go-hrms/internal/auth/errors"
	mock_auth "go-hrms/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupAuthRouter(t *testing.T) (*mock_auth.MockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock_auth.NewMockService(ctrl)
	handler := auth.NewHandler(svc, auth.CookieConfig{
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, zap.NewNop())

	router := gin.New()
	router.POST("/login", handler.Login)
	router.POST("/refresh", handler.RefreshToken)
	router.POST("/logout", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("token_id", "jti-1")
		c.Set("token_expires_at", time.Unix(2000000000, 0))
		c.Next()
	}, handler.Logout)
	router.GET("/me", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, handler.Me)
	return svc, router
}

func TestHandler_Login(t *testing.T) {
	t.Run("web client receives cookies", func(t *testing.T) {
		svc, router := setupAuthRouter(t)

		svc.EXPECT().
			Login(gomock.Any(), "test@example.com", "password123").
			Return("access-token", "refresh-token", auth.AuthResponse{ID: "user-1", Email: "test@example.com"}, nil)

		body, _ := json.Marshal(auth.LoginRequest{Email: "test@example.com", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "WEB")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, "refresh_token", cookies[1].Name)

		var res struct {
			Data auth.TokenResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "test@example.com", res.Data.User.Email)
		assert.Equal(t, "Bearer", res.Data.TokenType)
		assert.Equal(t, int64(900), res.Data.ExpiresIn)
	})

	t.Run("mobile client gets no cookies", func(t *testing.T) {
		svc, router := setupAuthRouter(t)

		svc.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("a", "r", auth.AuthResponse{}, nil)

		body, _ := json.Marshal(auth.LoginRequest{Email: "test@example.com", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc, router := setupAuthRouter(t)

		svc.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{Email: "wrong@test.com", Password: "123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	t.Run("reads token from cookie", func(t *testing.T) {
		svc, router := setupAuthRouter(t)

		svc.EXPECT().
			RefreshToken(gomock.Any(), "cookie-refresh").
			Return("new-access", "new-refresh", auth.AuthResponse{ID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "cookie-refresh"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		_, router := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	svc, router := setupAuthRouter(t)

	svc.EXPECT().
		Logout(gomock.Any(), "jti-1", time.Unix(2000000000, 0), "body-refresh").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", bytes.NewBufferString(`{"refresh_token":"body-refresh"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestHandler_Me(t *testing.T) {
	svc, router := setupAuthRouter(t)

	svc.EXPECT().GetMe(gomock.Any(), "user-1").Return(&auth.AuthResponse{ID: "user-1", Roles: []string{"admin"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"roles":["admin"]`)
}
