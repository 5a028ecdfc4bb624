package position

import (
	"context"
	"errors"
	"strings"
	"time"

	positionerrors "go-hrms/internal/position/errors"
	"go-hrms/internal/shared/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OptionsKeyPrefix = "positions:options:"
	optionsTTL       = 30 * time.Minute
	maxChainDepth    = 64
)

// OptionsKey is the cache key for a department's options, or all of them
// when departmentID is empty.
func OptionsKey(departmentID string) string {
	if departmentID == "" {
		return OptionsKeyPrefix + "all"
	}
	return OptionsKeyPrefix + departmentID
}

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, req ListPositionsRequest) ([]PositionResponse, int64, error)
	GetOptions(ctx context.Context, departmentID string) ([]PositionOption, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	pos := &Position{ID: uuid.New(), IsActive: true}
	if err := s.apply(ctx, pos, req); err != nil {
		return PositionResponse{}, err
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, pos.DepartmentID.String())
	return s.GetByID(ctx, pos.ID.String())
}

func (s *service) GetAll(ctx context.Context, req ListPositionsRequest) ([]PositionResponse, int64, error) {
	req.Params = req.Params.Normalize()

	positions, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(positions), total, nil
}

func (s *service) GetOptions(ctx context.Context, departmentID string) ([]PositionOption, error) {
	return cache.Remember(ctx, s.cache, OptionsKey(departmentID), optionsTTL, func(ctx context.Context) ([]PositionOption, error) {
		positions, err := s.repo.FindActive(ctx, departmentID)
		if err != nil {
			return nil, err
		}
		opts := make([]PositionOption, len(positions))
		for i, p := range positions {
			opts[i] = PositionOption{
				ID:           p.ID.String(),
				Title:        p.Title,
				DepartmentID: p.DepartmentID.String(),
				Level:        p.Level,
			}
		}
		return opts, nil
	})
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pos), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	oldDepartment := pos.DepartmentID.String()

	if err := s.apply(ctx, pos, req); err != nil {
		return PositionResponse{}, err
	}
	pos.Department = nil
	pos.ReportsTo = nil

	if err := s.repo.Update(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, oldDepartment, pos.DepartmentID.String())
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidate(ctx, pos.DepartmentID.String())
	return nil
}

func (s *service) apply(ctx context.Context, pos *Position, req CreatePositionRequest) error {
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return positionerrors.ErrDepartmentNotFound
	}

	pos.Title = strings.TrimSpace(req.Title)
	pos.DepartmentID = departmentID
	pos.Level = req.Level
	if pos.Level == 0 {
		pos.Level = 1
	}
	pos.IsManager = req.IsManager
	if req.IsActive != nil {
		pos.IsActive = *req.IsActive
	}

	pos.ReportsToID = nil
	if req.ReportsToID != nil && *req.ReportsToID != "" {
		parent, err := uuid.Parse(*req.ReportsToID)
		if err != nil {
			return positionerrors.ErrReportsToNotFound
		}
		if err := s.checkChain(ctx, pos.ID, parent); err != nil {
			return err
		}
		pos.ReportsToID = &parent
	}
	return nil
}

// checkChain walks up from parent and fails if it reaches self.
func (s *service) checkChain(ctx context.Context, self, parent uuid.UUID) error {
	current := parent
	for depth := 0; depth < maxChainDepth; depth++ {
		if current == self {
			return positionerrors.ErrReportingCycle
		}

		p, err := s.repo.FindByID(ctx, current.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if depth == 0 {
					return positionerrors.ErrReportsToNotFound
				}
				return nil
			}
			return err
		}
		if p.ReportsToID == nil {
			return nil
		}
		current = *p.ReportsToID
	}
	return positionerrors.ErrReportingCycle
}

func (s *service) invalidate(ctx context.Context, departmentIDs ...string) {
	keys := []string{OptionsKey("")}
	for _, id := range departmentIDs {
		keys = append(keys, OptionsKey(id))
	}
	s.cache.Invalidate(ctx, keys...)
}

func mapToResponse(pos Position) PositionResponse {
	resp := PositionResponse{
		ID:           pos.ID.String(),
		Title:        pos.Title,
		DepartmentID: pos.DepartmentID.String(),
		Level:        pos.Level,
		IsManager:    pos.IsManager,
		IsActive:     pos.IsActive,
	}
	if pos.Department != nil {
		resp.DepartmentName = pos.Department.Name
	}
	if pos.ReportsToID != nil {
		v := pos.ReportsToID.String()
		resp.ReportsToID = &v
	}
	if pos.ReportsTo != nil {
		resp.ReportsToTitle = pos.ReportsTo.Title
	}
	if !pos.CreatedAt.IsZero() {
		resp.CreatedAt = pos.CreatedAt.Format(time.RFC3339)
	}
	if !pos.UpdatedAt.IsZero() {
		resp.UpdatedAt = pos.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
