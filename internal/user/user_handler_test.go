package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/user"
	usererrors "go-hrms/internal/user/errors"
	mock_user "go-hrms/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Code       string          `json:"code"`
	Data       json.RawMessage `json:"data"`
	Pagination map[string]any  `json:"pagination"`
	Errors     map[string]any  `json:"errors"`
}

func newTestRouter(t *testing.T) (*mock_user.MockService, *gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	ctrl := gomock.NewController(t)
	svc := mock_user.NewMockService(ctrl)
	h := user.NewHandler(svc, zap.NewNop())

	actorID := uuid.New().String()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Next()
	})
	r.GET("/users", h.GetAll)
	r.GET("/users/:id", h.GetById)
	r.POST("/users", h.Create)
	r.PATCH("/users/:id/status", h.ToggleStatus)
	r.PUT("/profile/password", h.ChangePassword)
	r.DELETE("/users/:id", h.Delete)
	return svc, r, actorID
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestUserHandler_GetAll(t *testing.T) {
	svc, r, _ := newTestRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req user.ListUsersRequest) ([]user.UserResponse, int64, error) {
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 1, req.PerPage)
			assert.Equal(t, "john", req.Search)
			return []user.UserResponse{{ID: uuid.New().String(), Email: "john@mail.com"}}, 3, nil
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users?page=2&per_page=1&search=john", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.EqualValues(t, 3, env.Pagination["total"])
	assert.EqualValues(t, 3, env.Pagination["last_page"])
	assert.Equal(t, true, env.Pagination["has_more_pages"])
}

func TestUserHandler_GetById_NotFound(t *testing.T) {
	svc, r, _ := newTestRouter(t)
	id := uuid.New().String()

	svc.EXPECT().GetByID(gomock.Any(), id).Return(user.UserResponse{}, usererrors.ErrUserNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/"+id, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r, _ := newTestRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(user.UserResponse{ID: uuid.New().String(), Email: "john@mail.com"}, nil)

		body := `{"name":"John","email":"john@mail.com","password":"secret123","roles":["employee"]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decode(t, w).Success)
	})

	t.Run("validation error", func(t *testing.T) {
		_, r, _ := newTestRouter(t)

		body := `{"name":"John","email":"not-an-email","password":"short"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decode(t, w)
		assert.Equal(t, "VALIDATION_ERROR", env.Code)
		assert.Contains(t, env.Errors, "email")
		assert.Contains(t, env.Errors, "password")
	})
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	svc, r, actorID := newTestRouter(t)
	id := uuid.New().String()

	svc.EXPECT().ToggleStatus(gomock.Any(), actorID, id, false).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+id+"/status", strings.NewReader(`{"is_active":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_ChangePassword(t *testing.T) {
	t.Run("uses authenticated user", func(t *testing.T) {
		svc, r, actorID := newTestRouter(t)

		svc.EXPECT().ChangePassword(gomock.Any(), actorID, "old-password", "new-password").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/profile/password",
			strings.NewReader(`{"current_password":"old-password","new_password":"new-password"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password is 422", func(t *testing.T) {
		svc, r, actorID := newTestRouter(t)

		svc.EXPECT().
			ChangePassword(gomock.Any(), actorID, "bad-password", "new-password").
			Return(usererrors.ErrWrongPassword)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/profile/password",
			strings.NewReader(`{"current_password":"bad-password","new_password":"new-password"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decode(t, w).Errors, "current_password")
	})
}

func TestUserHandler_Delete_Self(t *testing.T) {
	svc, r, actorID := newTestRouter(t)

	svc.EXPECT().Delete(gomock.Any(), actorID, actorID).Return(usererrors.ErrCannotDeleteSelf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/"+actorID, nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_STATE", decode(t, w).Code)
}
