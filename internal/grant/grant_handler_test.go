package grant_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/grant"
	granterrors "go-hrms/internal/grant/errors"
	grantMock "go-hrms/internal/grant/mock"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc grant.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := grant.NewHandler(svc)
	r := gin.New()
	r.POST("/grants", h.Create)
	r.POST("/grants/:id/items", h.CreateItem)
	r.PUT("/grant-items/:id", h.UpdateItem)
	r.GET("/grant-items/:id/slots", h.GetSlots)
	r.DELETE("/grants/:id", h.Delete)
	return r
}

func TestGrantHandler_Create(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		r := setupRouter(grantMock.NewMockService(gomock.NewController(t)))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grants", strings.NewReader(`{"name":"Malaria Research"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code"`)
	})

	t.Run("duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := grantMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().
			Create(gomock.Any(), grant.CreateGrantRequest{Code: "G-001", Name: "Malaria Research"}).
			Return(grant.GrantResponse{}, granterrors.ErrGrantCodeAlreadyExists)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grants", strings.NewReader(`{"code":"G-001","name":"Malaria Research"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGrantHandler_CreateItem(t *testing.T) {
	t.Run("level of effort above 100%", func(t *testing.T) {
		r := setupRouter(grantMock.NewMockService(gomock.NewController(t)))

		body := `{"position_title":"Field Officer","grant_salary":2500000,"level_of_effort":12000,"position_number":2}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grants/g-1/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"level_of_effort"`)
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := grantMock.NewMockService(ctrl)
		r := setupRouter(svc)

		in := grant.GrantItemRequest{PositionTitle: "Field Officer", GrantSalary: 2_500_000, LevelOfEffort: 10000, PositionNumber: 2}
		svc.EXPECT().
			CreateItem(gomock.Any(), "g-1", in).
			Return(grant.GrantItemResponse{ID: "i-1", GrantID: "g-1", PositionNumber: 2}, nil)

		body := `{"position_title":"Field Officer","grant_salary":2500000,"level_of_effort":10000,"position_number":2}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grants/g-1/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"i-1"`)
	})
}

func TestGrantHandler_UpdateItem_SlotsOccupied(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := grantMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().
		UpdateItem(gomock.Any(), "i-1", gomock.Any()).
		Return(grant.GrantItemResponse{}, granterrors.ErrSlotsOccupied)

	body := `{"position_title":"Field Officer","level_of_effort":10000,"position_number":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/grant-items/i-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGrantHandler_GetSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := grantMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().GetSlots(gomock.Any(), "i-1").Return([]grant.SlotResponse{
		{ID: "s-1", SlotNumber: 1, Occupied: true, Occupant: &grant.OccupantResponse{StaffID: "EMP-000001", FTE: 6000}},
		{ID: "s-2", SlotNumber: 2},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/grant-items/i-1/slots", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"EMP-000001"`)
	assert.Contains(t, w.Body.String(), `"occupant":null`)
}

func TestGrantHandler_Delete_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := grantMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().Delete(gomock.Any(), "g-1").Return(granterrors.ErrGrantInUse)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/grants/g-1", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}
