package tax

import (
	"context"

	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

var bracketSortColumns = map[string]string{
	"year":          "year",
	"bracket_order": "bracket_order",
	"min_income":    "min_income",
	"created_at":    "created_at",
}

var settingSortColumns = map[string]string{
	"year":       "year",
	"key":        "setting_key",
	"created_at": "created_at",
}

//go:generate mockgen -source=tax_repo.go -destination=mock/tax_repo_mock.go -package=mock
type Repository interface {
	FindBrackets(ctx context.Context, req ListBracketsRequest) ([]TaxBracket, int64, error)
	FindBracketsByYear(ctx context.Context, year int) ([]TaxBracket, error)
	FindBracketByID(ctx context.Context, id string) (*TaxBracket, error)
	CreateBracket(ctx context.Context, b *TaxBracket) error
	UpdateBracket(ctx context.Context, b *TaxBracket) error
	DeleteBracket(ctx context.Context, id string) error

	FindSettings(ctx context.Context, req ListSettingsRequest) ([]TaxSetting, int64, error)
	FindSettingsByYear(ctx context.Context, year int) ([]TaxSetting, error)
	FindSettingByID(ctx context.Context, id string) (*TaxSetting, error)
	CreateSetting(ctx context.Context, s *TaxSetting) error
	UpdateSetting(ctx context.Context, s *TaxSetting) error
	DeleteSetting(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func yearFilter(year int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if year == 0 {
			return db
		}
		return db.Where("year = ?", year)
	}
}

func (r *repository) FindBrackets(ctx context.Context, req ListBracketsRequest) ([]TaxBracket, int64, error) {
	var (
		brackets []TaxBracket
		total    int64
	)
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&TaxBracket{}).Scopes(yearFilter(req.Year))
	}
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base().
		Scopes(query.Sort(req.Params, bracketSortColumns, "year"), query.Paginate(req.Params)).
		Order("bracket_order ASC").
		Find(&brackets).Error
	return brackets, total, err
}

func (r *repository) FindBracketsByYear(ctx context.Context, year int) ([]TaxBracket, error) {
	var brackets []TaxBracket
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("bracket_order ASC").
		Find(&brackets).Error
	return brackets, err
}

func (r *repository) FindBracketByID(ctx context.Context, id string) (*TaxBracket, error) {
	var b TaxBracket
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) CreateBracket(ctx context.Context, b *TaxBracket) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) UpdateBracket(ctx context.Context, b *TaxBracket) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) DeleteBracket(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaxBracket{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindSettings(ctx context.Context, req ListSettingsRequest) ([]TaxSetting, int64, error) {
	var (
		settings []TaxSetting
		total    int64
	)
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&TaxSetting{}).
			Scopes(yearFilter(req.Year), query.Search(req.Search, "setting_key", "description"))
	}
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base().
		Scopes(query.Sort(req.Params, settingSortColumns, "year"), query.Paginate(req.Params)).
		Find(&settings).Error
	return settings, total, err
}

func (r *repository) FindSettingsByYear(ctx context.Context, year int) ([]TaxSetting, error) {
	var settings []TaxSetting
	err := r.db.WithContext(ctx).Where("year = ?", year).Find(&settings).Error
	return settings, err
}

func (r *repository) FindSettingByID(ctx context.Context, id string) (*TaxSetting, error) {
	var s TaxSetting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) CreateSetting(ctx context.Context, s *TaxSetting) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) UpdateSetting(ctx context.Context, s *TaxSetting) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) DeleteSetting(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaxSetting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
