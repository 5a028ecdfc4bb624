package department

import (
	"context"
	"strings"
	"time"

	departmenterrors "go-hrms/internal/department/errors"
	"go-hrms/internal/shared/cache"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const OptionsCacheKey = "departments:options"

const optionsTTL = time.Hour

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, req ListDepartmentsRequest) ([]DepartmentResponse, int64, error)
	GetOptions(ctx context.Context) ([]DepartmentOption, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		contextutil.GetLogger(ctx, nil).Error("failed to create department", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	return mapToResponse(*dept, 0), nil
}

func (s *service) GetAll(ctx context.Context, req ListDepartmentsRequest) ([]DepartmentResponse, int64, error) {
	req.Params = req.Params.Normalize()

	depts, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, len(depts))
	for i, d := range depts {
		ids[i] = d.ID.String()
	}
	counts, err := s.repo.CountPositions(ctx, ids...)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		resp[i] = mapToResponse(d, counts[d.ID.String()])
	}
	return resp, total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]DepartmentOption, error) {
	return cache.Remember(ctx, s.cache, OptionsCacheKey, optionsTTL, func(ctx context.Context) ([]DepartmentOption, error) {
		depts, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]DepartmentOption, len(depts))
		for i, d := range depts {
			opts[i] = DepartmentOption{ID: d.ID.String(), Name: d.Name}
		}
		return opts, nil
	})
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	counts, err := s.repo.CountPositions(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept, counts[id]), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = strings.TrimSpace(req.Name)
	dept.Description = req.Description
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	return mapToResponse(*dept, 0), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	counts, err := s.repo.CountPositions(ctx, id)
	if err != nil {
		return err
	}
	if counts[id] > 0 {
		return departmenterrors.ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	return nil
}

func mapToResponse(dept Department, positions int64) DepartmentResponse {
	resp := DepartmentResponse{
		ID:            dept.ID.String(),
		Name:          dept.Name,
		Description:   dept.Description,
		IsActive:      dept.IsActive,
		PositionCount: positions,
	}
	if !dept.CreatedAt.IsZero() {
		resp.CreatedAt = dept.CreatedAt.Format(time.RFC3339)
	}
	if !dept.UpdatedAt.IsZero() {
		resp.UpdatedAt = dept.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
