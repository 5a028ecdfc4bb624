package payroll

import (
	"testing"

	"go-hrms/internal/tax"

	"github.com/stretchr/testify/assert"
)

func TestHealthWelfare(t *testing.T) {
	tests := []struct {
		salary   int64
		employee int64
		employer int64
	}{
		{salary: 1_000_000, employee: 6_000, employer: 12_000},
		{salary: 1_500_000, employee: 6_000, employer: 12_000},
		{salary: 1_500_001, employee: 8_000, employer: 16_000},
		{salary: 2_000_000, employee: 8_000, employer: 16_000},
		{salary: 2_500_000, employee: 10_000, employer: 20_000},
	}

	for _, tt := range tests {
		ee, er := HealthWelfare(tt.salary)
		assert.Equal(t, tt.employee, ee, "salary %d", tt.salary)
		assert.Equal(t, tt.employer, er, "salary %d", tt.salary)
	}
}

func TestCompute(t *testing.T) {
	cfg := tax.NewConfig(2025, nil, nil)

	t.Run("partial FTE after probation", func(t *testing.T) {
		f := Compute(cfg, CalcInput{
			Salary:        3_000_000,
			FTE:           6000,
			HealthWelfare: true,
			PVD:           true,
		})

		assert.Equal(t, int64(3_000_000), f.GrossSalary)
		assert.Equal(t, int64(1_800_000), f.GrossSalaryByFTE)
		assert.Equal(t, int64(135_000), f.PVD)
		assert.Zero(t, f.SavingFund)
		assert.Equal(t, int64(45_000), f.EmployeeSSF)
		assert.Equal(t, int64(45_000), f.EmployerSSF)
		assert.Equal(t, int64(6_000), f.EmployeeHealthWelfare)
		assert.Equal(t, int64(12_000), f.EmployerHealthWelfare)
		assert.Equal(t, int64(3_500), f.Tax)
		assert.Equal(t, int64(150_000), f.ThirteenthMonthSalary)
		assert.Equal(t, int64(1_800_000), f.TotalIncome)
		assert.Equal(t, int64(189_500), f.TotalDeduction)
		assert.Equal(t, int64(1_610_500), f.NetSalary)
		assert.Equal(t, int64(342_000), f.EmployerContribution)
	})

	t.Run("on probation with refund", func(t *testing.T) {
		f := Compute(cfg, CalcInput{
			Salary:             1_000_000,
			FTE:                10000,
			CompensationRefund: 50_000,
			OnProbation:        true,
		})

		assert.Zero(t, f.ThirteenthMonthSalary)
		assert.Zero(t, f.Tax)
		assert.Zero(t, f.EmployeeHealthWelfare)
		assert.Equal(t, int64(50_000), f.EmployeeSSF)
		assert.Equal(t, int64(1_050_000), f.TotalIncome)
		assert.Equal(t, int64(50_000), f.TotalDeduction)
		assert.Equal(t, int64(1_000_000), f.NetSalary)
		assert.Equal(t, int64(50_000), f.EmployerContribution)
	})

	t.Run("saving fund when not in PVD", func(t *testing.T) {
		f := Compute(cfg, CalcInput{Salary: 2_000_000, FTE: 10000, SavingFund: true})

		assert.Zero(t, f.PVD)
		assert.Equal(t, int64(100_000), f.SavingFund)
	})

	t.Run("allocation rows add up to the whole", func(t *testing.T) {
		in := CalcInput{Salary: 5_000_000, HealthWelfare: true}
		in.FTE = 5000
		a := Compute(cfg, in)
		b := Compute(cfg, in)
		in.FTE = 10000
		whole := Compute(cfg, in)

		assert.Equal(t, whole.GrossSalaryByFTE, a.GrossSalaryByFTE+b.GrossSalaryByFTE)
		assert.Equal(t, whole.EmployeeSSF, a.EmployeeSSF+b.EmployeeSSF)
		assert.InDelta(t, whole.Tax, a.Tax+b.Tax, 1)
	})
}
