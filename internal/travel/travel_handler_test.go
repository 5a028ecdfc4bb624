package travel_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/travel"
	travelerrors "go-hrms/internal/travel/errors"
	travelMock "go-hrms/internal/travel/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc travel.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := travel.NewHandler(svc)
	r := gin.New()
	r.POST("/travel-requests", h.Create)
	r.POST("/travel-requests/:id/approve", h.Approve)
	r.POST("/travel-requests/:id/acknowledge", h.Acknowledge)
	r.DELETE("/travel-requests/:id", h.Delete)
	return r
}

func TestTravelHandler_Create(t *testing.T) {
	t.Run("unknown transportation", func(t *testing.T) {
		r := setupRouter(travelMock.NewMockService(gomock.NewController(t)))

		body := `{"employee_id":"5b0d1e7e-8f4a-4d2a-9a55-1c1f2f0d3c11","destination":"Yangon","start_date":"2025-04-02","end_date":"2025-04-03","purpose":"Workshop","transportation":"bicycle","accommodation":"self_arrangement"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/travel-requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"transportation"`)
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := travelMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(travel.TravelResponse{ID: "t-1", Status: travel.StatusPending}, nil)

		body := `{"employee_id":"5b0d1e7e-8f4a-4d2a-9a55-1c1f2f0d3c11","destination":"Yangon","start_date":"2025-04-02","end_date":"2025-04-03","purpose":"Workshop","transportation":"air","accommodation":"self_arrangement"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/travel-requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"t-1"`)
	})
}

func TestTravelHandler_Approve_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := travelMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().
		Approve(gomock.Any(), "t-1", travel.DecisionRequest{}).
		Return(travel.TravelResponse{ID: "t-1", Status: travel.StatusApproved}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/travel-requests/t-1/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"approved"`)
}

func TestTravelHandler_Acknowledge_NotApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := travelMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().
		Acknowledge(gomock.Any(), "t-1", travel.DecisionRequest{Remarks: "seen"}).
		Return(travel.TravelResponse{}, travelerrors.ErrNotApproved)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/travel-requests/t-1/acknowledge", strings.NewReader(`{"remarks":"seen"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTravelHandler_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := travelMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().Delete(gomock.Any(), "t-9").Return(travelerrors.ErrTravelNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/travel-requests/t-9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
