package employment_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/employment"
	employmenterrors "go-hrms/internal/employment/errors"
	employmentMock "go-hrms/internal/employment/mock"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc employment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := employment.NewHandler(svc)
	r := gin.New()
	r.POST("/employments", h.Create)
	r.POST("/employments/:id/probation/complete", h.CompleteProbation)
	r.POST("/employments/:id/probation/extend", h.ExtendProbation)
	return r
}

func TestEmploymentHandler_Create_Validation(t *testing.T) {
	r := setupRouter(employmentMock.NewMockService(gomock.NewController(t)))

	body := `{"employee_id":"not-a-uuid","employment_type":"Seasonal","start_date":"2025-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_id"`)
	assert.Contains(t, w.Body.String(), `"employment_type"`)
}

func TestEmploymentHandler_CompleteProbation(t *testing.T) {
	t.Run("empty body uses defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employmentMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().
			CompleteProbation(gomock.Any(), "emp-1", employment.ProbationDecisionRequest{}).
			Return(employment.EmploymentResponse{ID: "emp-1", ProbationStatus: employment.ProbationPassed}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employments/emp-1/probation/complete", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"probation_status":"passed"`)
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employmentMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().
			CompleteProbation(gomock.Any(), "emp-1", gomock.Any()).
			Return(employment.EmploymentResponse{}, employmenterrors.ErrProbationAlreadyDecided)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employments/emp-1/probation/complete", strings.NewReader(`{"reason":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "already been decided")
	})
}

func TestEmploymentHandler_ExtendProbation_RequiresReason(t *testing.T) {
	r := setupRouter(employmentMock.NewMockService(gomock.NewController(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employments/emp-1/probation/extend",
		strings.NewReader(`{"new_pass_probation_date":"2025-05-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"reason"`)
}
