package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return NewConfig(2025, nil, nil)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		deductions int64
		taxable    int64
		annualTax  int64
		monthlyTax int64
	}{
		{
			name:       "single mid income",
			in:         Input{MonthlyIncome: 3_000_000, ContributesToSSF: true},
			deductions: 16_900_000,
			taxable:    19_100_000,
			annualTax:  205_000,
			monthlyTax: 17_083,
		},
		{
			name:       "deductions exceed income",
			in:         Input{MonthlyIncome: 1_000_000, ContributesToSSF: true},
			deductions: 12_600_000,
			taxable:    0,
			annualTax:  0,
			monthlyTax: 0,
		},
		{
			name: "family with provident fund",
			in: Input{
				MonthlyIncome:    20_000_000,
				HasSpouse:        true,
				Children:         2,
				PVD:              true,
				ContributesToSSF: true,
			},
			deductions: 46_900_000,
			taxable:    193_100_000,
			annualTax:  34_775_000,
			monthlyTax: 2_897_917,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(defaultConfig(), tt.in)

			assert.Equal(t, tt.in.MonthlyIncome*12, got.AnnualIncome)
			assert.Equal(t, tt.deductions, got.TotalDeductions)
			assert.Equal(t, tt.taxable, got.TaxableIncome)
			assert.Equal(t, tt.annualTax, got.AnnualTax)
			assert.Equal(t, tt.monthlyTax, got.MonthlyTax)
			assert.Len(t, got.Brackets, len(DefaultBrackets))
		})
	}
}

func TestCalculate_Allowances(t *testing.T) {
	cfg := defaultConfig()

	t.Run("spouse with income gets no allowance", func(t *testing.T) {
		got := Calculate(cfg, Input{MonthlyIncome: 5_000_000, HasSpouse: true, SpouseHasIncome: true})
		assert.Zero(t, got.SpouseAllowance)
	})

	t.Run("children multiply the allowance", func(t *testing.T) {
		got := Calculate(cfg, Input{MonthlyIncome: 5_000_000, Children: 3})
		assert.Equal(t, int64(9_000_000), got.ChildAllowance)
	})

	t.Run("expense capped", func(t *testing.T) {
		got := Calculate(cfg, Input{MonthlyIncome: 5_000_000})
		assert.Equal(t, int64(10_000_000), got.EmploymentExpense)
	})

	t.Run("expense below cap", func(t *testing.T) {
		got := Calculate(cfg, Input{MonthlyIncome: 1_000_000})
		assert.Equal(t, int64(6_000_000), got.EmploymentExpense)
	})

	t.Run("fund contribution capped annually", func(t *testing.T) {
		got := Calculate(cfg, Input{MonthlyIncome: 100_000_000, PVD: true})
		assert.Equal(t, int64(7_500_000), got.MonthlyFund)
		assert.Equal(t, int64(50_000_000), got.AnnualFund)
	})

	t.Run("no social security when not contributing", func(t *testing.T) {
		got := Calculate(cfg, Input{MonthlyIncome: 3_000_000})
		assert.Zero(t, got.MonthlySSF)
		assert.Zero(t, got.AnnualSSF)
	})
}

func TestCalculate_CustomConfig(t *testing.T) {
	cfg := Config{
		Year:     2026,
		Brackets: []Bracket{{Order: 1, MinIncome: 0, Rate: 1000}},
		Settings: map[string]int64{
			KeyEmploymentExpenseCap: 0,
			KeyPersonalAllowance:    0,
		},
	}

	got := Calculate(cfg, Input{MonthlyIncome: 1_000_000})

	assert.Equal(t, int64(12_000_000), got.TaxableIncome)
	assert.Equal(t, int64(1_200_000), got.AnnualTax)
	assert.Equal(t, int64(100_000), got.MonthlyTax)
	assert.Equal(t, 1000, got.EffectiveRate)
}

func TestSocialSecurity(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, int64(50_000), SocialSecurity(cfg, 1_000_000))
	assert.Equal(t, int64(75_000), SocialSecurity(cfg, 1_500_000))
	assert.Equal(t, int64(75_000), SocialSecurity(cfg, 9_000_000))
	assert.Zero(t, SocialSecurity(cfg, 0))
}

func TestFundContribution(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, int64(150_000), FundContribution(cfg, 2_000_000, true, false))
	assert.Equal(t, int64(100_000), FundContribution(cfg, 2_000_000, false, true))
	assert.Equal(t, int64(150_000), FundContribution(cfg, 2_000_000, true, true))
	assert.Zero(t, FundContribution(cfg, 2_000_000, false, false))
}

func TestNewConfig(t *testing.T) {
	t.Run("falls back to default brackets", func(t *testing.T) {
		cfg := NewConfig(2025, nil, nil)
		require.Len(t, cfg.Brackets, len(DefaultBrackets))
		assert.Equal(t, int64(6_000_000), cfg.Setting(KeyPersonalAllowance))
	})

	t.Run("orders stored brackets and skips inactive rows", func(t *testing.T) {
		max1 := int64(10_000_000)
		cfg := NewConfig(2025,
			[]TaxBracket{
				{BracketOrder: 2, MinIncome: 10_000_000, Rate: 2000, IsActive: true},
				{BracketOrder: 1, MinIncome: 0, MaxIncome: &max1, Rate: 0, IsActive: true},
				{BracketOrder: 3, MinIncome: 50_000_000, Rate: 3000, IsActive: false},
			},
			[]TaxSetting{
				{Key: KeyPersonalAllowance, Value: 1_000, IsActive: true},
				{Key: KeyChildAllowance, Value: 9, IsActive: false},
			},
		)

		require.Len(t, cfg.Brackets, 2)
		assert.Equal(t, 1, cfg.Brackets[0].Order)
		assert.Equal(t, 2, cfg.Brackets[1].Order)
		assert.Equal(t, int64(1_000), cfg.Setting(KeyPersonalAllowance))
		assert.Equal(t, int64(3_000_000), cfg.Setting(KeyChildAllowance))
	})
}
