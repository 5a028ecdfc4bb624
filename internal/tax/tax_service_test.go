package tax_test

import (
	"context"
	"testing"

	"go-hrms/internal/shared/cache"
	"go-hrms/internal/tax"
	taxerrors "go-hrms/internal/tax/errors"
	taxMock "go-hrms/internal/tax/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }

func TestTaxService_GetConfig_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := taxMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := tax.NewService(repo, cache.New(rdb))

	redisMock.ExpectGet("tax:config:2025").
		SetVal(`{"year":2025,"brackets":[{"order":1,"min_income":0,"max_income":null,"rate":1000}],"settings":{"PERSONAL_ALLOWANCE":0}}`)

	cfg, err := svc.GetConfig(context.Background(), 2025)

	require.NoError(t, err)
	require.Len(t, cfg.Brackets, 1)
	assert.Equal(t, 1000, cfg.Brackets[0].Rate)
	assert.Zero(t, cfg.Setting(tax.KeyPersonalAllowance))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestTaxService_Calculate_LoadsYearConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := taxMock.NewMockRepository(ctrl)
	svc := tax.NewService(repo, cache.New(nil))

	repo.EXPECT().FindBracketsByYear(gomock.Any(), 2024).Return([]tax.TaxBracket{
		{ID: uuid.New(), Year: 2024, BracketOrder: 1, MinIncome: 0, Rate: 1000, IsActive: true},
	}, nil)
	repo.EXPECT().FindSettingsByYear(gomock.Any(), 2024).Return([]tax.TaxSetting{
		{ID: uuid.New(), Year: 2024, Key: tax.KeyEmploymentExpenseCap, Value: 0, IsActive: true},
		{ID: uuid.New(), Year: 2024, Key: tax.KeyPersonalAllowance, Value: 0, IsActive: true},
	}, nil)

	off := false
	got, err := svc.Calculate(context.Background(), tax.CalculateRequest{
		Year:             2024,
		MonthlyIncome:    1_000_000,
		ContributesToSSF: &off,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1_200_000), got.AnnualTax)
	assert.Equal(t, int64(100_000), got.MonthlyTax)
}

func TestTaxService_CreateBracket(t *testing.T) {
	t.Run("success invalidates year config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taxMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := tax.NewService(repo, cache.New(rdb))

		repo.EXPECT().FindBracketsByYear(gomock.Any(), 2025).Return([]tax.TaxBracket{
			{ID: uuid.New(), Year: 2025, BracketOrder: 1, MinIncome: 0, MaxIncome: int64Ptr(15_000_000), IsActive: true},
		}, nil)
		repo.EXPECT().CreateBracket(gomock.Any(), gomock.Any()).Return(nil)
		redisMock.ExpectDel("tax:config:2025").SetVal(1)

		resp, err := svc.CreateBracket(context.Background(), tax.BracketRequest{
			Year:         2025,
			BracketOrder: 2,
			MinIncome:    15_000_000,
			MaxIncome:    int64Ptr(30_000_000),
			Rate:         500,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.BracketOrder)
		assert.True(t, resp.IsActive)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("overlapping range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taxMock.NewMockRepository(ctrl)
		svc := tax.NewService(repo, cache.New(nil))

		repo.EXPECT().FindBracketsByYear(gomock.Any(), 2025).Return([]tax.TaxBracket{
			{ID: uuid.New(), Year: 2025, BracketOrder: 1, MinIncome: 0, MaxIncome: int64Ptr(15_000_000), IsActive: true},
		}, nil)

		_, err := svc.CreateBracket(context.Background(), tax.BracketRequest{
			Year:         2025,
			BracketOrder: 2,
			MinIncome:    10_000_000,
			Rate:         500,
		})

		assert.ErrorIs(t, err, taxerrors.ErrBracketOverlap)
	})
}

func TestTaxService_CreateSetting_UnknownKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := taxMock.NewMockRepository(ctrl)
	svc := tax.NewService(repo, cache.New(nil))

	_, err := svc.CreateSetting(context.Background(), tax.SettingRequest{Year: 2025, Key: "BONUS_RATE", Value: 1})

	assert.ErrorIs(t, err, taxerrors.ErrUnknownSettingKey)
}

func TestTaxService_UpdateSetting_NormalizesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := taxMock.NewMockRepository(ctrl)
	svc := tax.NewService(repo, cache.New(nil))
	id := uuid.New()

	repo.EXPECT().FindSettingByID(gomock.Any(), id.String()).
		Return(&tax.TaxSetting{ID: id, Year: 2025, Key: tax.KeySSFRate, Value: 500, IsActive: true}, nil)
	repo.EXPECT().UpdateSetting(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *tax.TaxSetting) error {
			assert.Equal(t, tax.KeySSFRate, st.Key)
			assert.Equal(t, int64(400), st.Value)
			return nil
		})

	resp, err := svc.UpdateSetting(context.Background(), id.String(), tax.SettingRequest{Year: 2025, Key: " ssf_rate ", Value: 400})

	require.NoError(t, err)
	assert.Equal(t, int64(400), resp.Value)
}

func TestTaxService_DeleteBracket_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := tax.NewService(taxMock.NewMockRepository(ctrl), cache.New(nil))

	err := svc.DeleteBracket(context.Background(), "nope")

	assert.ErrorIs(t, err, taxerrors.ErrInvalidBracketID)
}
