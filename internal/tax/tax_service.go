package tax

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/shared/cache"
	"go-hrms/internal/shared/contextutil"
	taxerrors "go-hrms/internal/tax/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const configTTL = 6 * time.Hour

//go:generate mockgen -source=tax_service.go -destination=mock/tax_service_mock.go -package=mock
type Service interface {
	GetBrackets(ctx context.Context, req ListBracketsRequest) ([]BracketResponse, int64, error)
	GetBracket(ctx context.Context, id string) (BracketResponse, error)
	CreateBracket(ctx context.Context, req BracketRequest) (BracketResponse, error)
	UpdateBracket(ctx context.Context, id string, req BracketRequest) (BracketResponse, error)
	DeleteBracket(ctx context.Context, id string) error

	GetSettings(ctx context.Context, req ListSettingsRequest) ([]SettingResponse, int64, error)
	GetSetting(ctx context.Context, id string) (SettingResponse, error)
	CreateSetting(ctx context.Context, req SettingRequest) (SettingResponse, error)
	UpdateSetting(ctx context.Context, id string, req SettingRequest) (SettingResponse, error)
	DeleteSetting(ctx context.Context, id string) error

	GetConfig(ctx context.Context, year int) (Config, error)
	Calculate(ctx context.Context, req CalculateRequest) (Breakdown, error)
}

type service struct {
	repo   Repository
	cache  *cache.Cache
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, c *cache.Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("tax.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tax.service")
	}
	return &service{repo: repo, cache: c, logger: l, now: time.Now}
}

func configKey(year int) string {
	return fmt.Sprintf("tax:config:%d", year)
}

func (s *service) GetConfig(ctx context.Context, year int) (Config, error) {
	if year == 0 {
		year = s.now().Year()
	}
	return cache.Remember(ctx, s.cache, configKey(year), configTTL, func(ctx context.Context) (Config, error) {
		brackets, err := s.repo.FindBracketsByYear(ctx, year)
		if err != nil {
			return Config{}, err
		}
		settings, err := s.repo.FindSettingsByYear(ctx, year)
		if err != nil {
			return Config{}, err
		}
		if len(brackets) == 0 {
			s.logger.Warn("no tax brackets configured, using defaults", zap.Int("year", year))
		}
		return NewConfig(year, brackets, settings), nil
	})
}

func (s *service) Calculate(ctx context.Context, req CalculateRequest) (Breakdown, error) {
	cfg, err := s.GetConfig(ctx, req.Year)
	if err != nil {
		return Breakdown{}, err
	}

	ssf := true
	if req.ContributesToSSF != nil {
		ssf = *req.ContributesToSSF
	}
	return Calculate(cfg, Input{
		MonthlyIncome:    req.MonthlyIncome,
		HasSpouse:        req.HasSpouse,
		SpouseHasIncome:  req.SpouseHasIncome,
		Children:         req.Children,
		PVD:              req.PVD,
		SavingFund:       req.SavingFund,
		ContributesToSSF: ssf,
	}), nil
}

func (s *service) GetBrackets(ctx context.Context, req ListBracketsRequest) ([]BracketResponse, int64, error) {
	req.Params = req.Params.Normalize()
	rows, total, err := s.repo.FindBrackets(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]BracketResponse, 0, len(rows))
	for _, b := range rows {
		resp = append(resp, mapBracket(b))
	}
	return resp, total, nil
}

func (s *service) GetBracket(ctx context.Context, id string) (BracketResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BracketResponse{}, taxerrors.ErrInvalidBracketID
	}
	b, err := s.repo.FindBracketByID(ctx, id)
	if err != nil {
		return BracketResponse{}, mapRepositoryError(err, taxerrors.ErrBracketNotFound)
	}
	return mapBracket(*b), nil
}

func (s *service) CreateBracket(ctx context.Context, req BracketRequest) (BracketResponse, error) {
	b := &TaxBracket{ID: uuid.New(), IsActive: true}
	applyBracket(b, req)

	if err := s.checkOverlap(ctx, b); err != nil {
		return BracketResponse{}, err
	}
	if err := s.repo.CreateBracket(ctx, b); err != nil {
		return BracketResponse{}, mapRepositoryError(err, taxerrors.ErrBracketNotFound)
	}

	s.cache.Invalidate(ctx, configKey(b.Year))
	contextutil.GetLogger(ctx, s.logger).Info("tax bracket created",
		zap.String("bracket_id", b.ID.String()),
		zap.Int("year", b.Year),
	)
	return mapBracket(*b), nil
}

func (s *service) UpdateBracket(ctx context.Context, id string, req BracketRequest) (BracketResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BracketResponse{}, taxerrors.ErrInvalidBracketID
	}
	b, err := s.repo.FindBracketByID(ctx, id)
	if err != nil {
		return BracketResponse{}, mapRepositoryError(err, taxerrors.ErrBracketNotFound)
	}

	prevYear := b.Year
	applyBracket(b, req)
	if err := s.checkOverlap(ctx, b); err != nil {
		return BracketResponse{}, err
	}
	if err := s.repo.UpdateBracket(ctx, b); err != nil {
		return BracketResponse{}, mapRepositoryError(err, taxerrors.ErrBracketNotFound)
	}

	s.cache.Invalidate(ctx, configKey(prevYear), configKey(b.Year))
	return mapBracket(*b), nil
}

func (s *service) DeleteBracket(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taxerrors.ErrInvalidBracketID
	}
	b, err := s.repo.FindBracketByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err, taxerrors.ErrBracketNotFound)
	}
	if err := s.repo.DeleteBracket(ctx, id); err != nil {
		return mapRepositoryError(err, taxerrors.ErrBracketNotFound)
	}

	s.cache.Invalidate(ctx, configKey(b.Year))
	return nil
}

// checkOverlap rejects an active bracket whose income range intersects
// another active bracket of the same year.
func (s *service) checkOverlap(ctx context.Context, b *TaxBracket) error {
	if !b.IsActive {
		return nil
	}
	existing, err := s.repo.FindBracketsByYear(ctx, b.Year)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == b.ID || !other.IsActive {
			continue
		}
		if overlaps(b.MinIncome, b.MaxIncome, other.MinIncome, other.MaxIncome) {
			return taxerrors.ErrBracketOverlap
		}
	}
	return nil
}

func overlaps(aMin int64, aMax *int64, bMin int64, bMax *int64) bool {
	aBelowB := aMax != nil && *aMax <= bMin
	bBelowA := bMax != nil && *bMax <= aMin
	return !aBelowB && !bBelowA
}

func (s *service) GetSettings(ctx context.Context, req ListSettingsRequest) ([]SettingResponse, int64, error) {
	req.Params = req.Params.Normalize()
	rows, total, err := s.repo.FindSettings(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]SettingResponse, 0, len(rows))
	for _, st := range rows {
		resp = append(resp, mapSetting(st))
	}
	return resp, total, nil
}

func (s *service) GetSetting(ctx context.Context, id string) (SettingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SettingResponse{}, taxerrors.ErrInvalidSettingID
	}
	st, err := s.repo.FindSettingByID(ctx, id)
	if err != nil {
		return SettingResponse{}, mapRepositoryError(err, taxerrors.ErrSettingNotFound)
	}
	return mapSetting(*st), nil
}

func (s *service) CreateSetting(ctx context.Context, req SettingRequest) (SettingResponse, error) {
	st := &TaxSetting{ID: uuid.New(), IsActive: true}
	if err := applySetting(st, req); err != nil {
		return SettingResponse{}, err
	}
	if err := s.repo.CreateSetting(ctx, st); err != nil {
		return SettingResponse{}, mapRepositoryError(err, taxerrors.ErrSettingNotFound)
	}

	s.cache.Invalidate(ctx, configKey(st.Year))
	contextutil.GetLogger(ctx, s.logger).Info("tax setting created",
		zap.String("key", st.Key),
		zap.Int("year", st.Year),
	)
	return mapSetting(*st), nil
}

func (s *service) UpdateSetting(ctx context.Context, id string, req SettingRequest) (SettingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SettingResponse{}, taxerrors.ErrInvalidSettingID
	}
	st, err := s.repo.FindSettingByID(ctx, id)
	if err != nil {
		return SettingResponse{}, mapRepositoryError(err, taxerrors.ErrSettingNotFound)
	}

	prevYear := st.Year
	if err := applySetting(st, req); err != nil {
		return SettingResponse{}, err
	}
	if err := s.repo.UpdateSetting(ctx, st); err != nil {
		return SettingResponse{}, mapRepositoryError(err, taxerrors.ErrSettingNotFound)
	}

	s.cache.Invalidate(ctx, configKey(prevYear), configKey(st.Year))
	return mapSetting(*st), nil
}

func (s *service) DeleteSetting(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taxerrors.ErrInvalidSettingID
	}
	st, err := s.repo.FindSettingByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err, taxerrors.ErrSettingNotFound)
	}
	if err := s.repo.DeleteSetting(ctx, id); err != nil {
		return mapRepositoryError(err, taxerrors.ErrSettingNotFound)
	}

	s.cache.Invalidate(ctx, configKey(st.Year))
	return nil
}

func applyBracket(b *TaxBracket, req BracketRequest) {
	b.Year = req.Year
	b.BracketOrder = req.BracketOrder
	b.MinIncome = req.MinIncome
	b.MaxIncome = req.MaxIncome
	b.Rate = req.Rate
	b.Description = strings.TrimSpace(req.Description)
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
}

func applySetting(st *TaxSetting, req SettingRequest) error {
	key := strings.ToUpper(strings.TrimSpace(req.Key))
	if _, ok := DefaultSettings[key]; !ok {
		return taxerrors.ErrUnknownSettingKey
	}
	st.Year = req.Year
	st.Key = key
	st.Value = req.Value
	st.Description = strings.TrimSpace(req.Description)
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
	return nil
}

func mapBracket(b TaxBracket) BracketResponse {
	return BracketResponse{
		ID:           b.ID.String(),
		Year:         b.Year,
		BracketOrder: b.BracketOrder,
		MinIncome:    b.MinIncome,
		MaxIncome:    b.MaxIncome,
		Rate:         b.Rate,
		Description:  b.Description,
		IsActive:     b.IsActive,
	}
}

func mapSetting(st TaxSetting) SettingResponse {
	return SettingResponse{
		ID:          st.ID.String(),
		Year:        st.Year,
		Key:         st.Key,
		Value:       st.Value,
		Description: st.Description,
		IsActive:    st.IsActive,
	}
}
