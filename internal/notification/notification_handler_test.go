package notification_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/notification"
	notificationerrors "go-hrms/internal/notification/errors"
	notificationMock "go-hrms/internal/notification/mock"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const userID = "8d3c1b2a-0f4e-4c55-9d1a-7b6e5f4a3c21"

func setupRouter(svc notification.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := notification.NewHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.GET("/notifications", h.GetAll)
	r.GET("/notifications/unread-count", h.UnreadCount)
	r.POST("/notifications/read-all", h.MarkAllRead)
	r.POST("/notifications/:id/read", h.MarkRead)
	r.DELETE("/notifications/:id", h.Delete)
	return r
}

func TestNotificationHandler_GetAll_UnreadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().
		List(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req notification.ListNotificationsRequest) ([]notification.NotificationResponse, int64, error) {
			assert.True(t, req.Unread)
			return []notification.NotificationResponse{{ID: "n-1", Title: "Payroll ready"}}, 1, nil
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Payroll ready"`)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().UnreadCount(gomock.Any(), userID).Return(int64(4), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":4`)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().MarkAllRead(gomock.Any(), userID).Return(int64(3), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":3`)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().MarkRead(gomock.Any(), userID, "n-9").Return(notificationerrors.ErrNotificationNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/n-9/read", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().Delete(gomock.Any(), userID, "n-1").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications/n-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
