package department_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	department.Service
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn  func(ctx context.Context, req department.ListDepartmentsRequest) ([]department.DepartmentResponse, int64, error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context, req department.ListDepartmentsRequest) ([]department.DepartmentResponse, int64, error) {
	return f.GetAllFn(ctx, req)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(h *department.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/departments", h.GetAll)
	r.POST("/departments", h.Create)
	r.GET("/departments/:id", h.GetById)
	r.DELETE("/departments/:id", h.Delete)
	return r
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.NewString(), Name: req.Name}, nil
			},
		}
		r := setupRouter(department.NewHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"HR"`)
	})

	t.Run("validation error", func(t *testing.T) {
		r := setupRouter(department.NewHandler(&fakeDepartmentService{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context, req department.ListDepartmentsRequest) ([]department.DepartmentResponse, int64, error) {
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 10, req.PerPage)
			return []department.DepartmentResponse{{Name: "HR"}}, 11, nil
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments?page=2&per_page=10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"last_page":2`)
}

func TestDepartmentHandler_GetById_NotFound(t *testing.T) {
	svc := &fakeDepartmentService{
		GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
			return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDepartmentHandler_Delete_InUse(t *testing.T) {
	svc := &fakeDepartmentService{
		DeleteFn: func(ctx context.Context, id string) error {
			return departmenterrors.ErrDepartmentInUse
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/departments/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}
