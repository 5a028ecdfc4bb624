package interview_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/interview"
	interviewerrors "go-hrms/internal/interview/errors"
	interviewMock "go-hrms/internal/interview/mock"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc interview.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := interview.NewHandler(svc)
	r := gin.New()
	r.GET("/interviews/by-candidate", h.GetByCandidate)
	r.POST("/interviews", h.Create)
	return r
}

func TestInterviewHandler_GetByCandidate(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		r := setupRouter(interviewMock.NewMockService(gomock.NewController(t)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interviews/by-candidate", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"name"`)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := interviewMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().GetByCandidate(gomock.Any(), "Nobody").Return(nil, interviewerrors.ErrCandidateNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interviews/by-candidate?name=Nobody", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInterviewHandler_Create_ScoreOutOfRange(t *testing.T) {
	r := setupRouter(interviewMock.NewMockService(gomock.NewController(t)))

	body := `{"candidate_name":"Mya","job_position":"Nurse","interview_date":"2025-05-12","interview_mode":"online","technical_score":11}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"technical_score"`)
}

func TestInterviewHandler_Create_BadTime(t *testing.T) {
	r := setupRouter(interviewMock.NewMockService(gomock.NewController(t)))

	body := `{"candidate_name":"Mya","job_position":"Nurse","interview_date":"2025-05-12","interview_mode":"online","start_time":"9am"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
