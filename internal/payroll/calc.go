package payroll

import (
	"go-hrms/internal/allocation"
	"go-hrms/internal/tax"
)

// HealthWelfareTier applies to salaries up to MaxSalary. Zero MaxSalary is
// the open top tier.
type HealthWelfareTier struct {
	MaxSalary int64
	Employee  int64
	Employer  int64
}

var HealthWelfareTiers = []HealthWelfareTier{
	{MaxSalary: 1_500_000, Employee: 6_000, Employer: 12_000},
	{MaxSalary: 2_000_000, Employee: 8_000, Employer: 16_000},
	{MaxSalary: 0, Employee: 10_000, Employer: 20_000},
}

// HealthWelfare returns the monthly employee and employer contributions for
// a full-time salary.
func HealthWelfare(salary int64) (employee, employer int64) {
	for _, t := range HealthWelfareTiers {
		if t.MaxSalary == 0 || salary <= t.MaxSalary {
			return t.Employee, t.Employer
		}
	}
	return 0, 0
}

type CalcInput struct {
	// Salary is the full monthly salary in force for the pay period.
	Salary             int64
	FTE                int
	CompensationRefund int64
	OnProbation        bool

	HealthWelfare bool
	PVD           bool
	SavingFund    bool

	HasSpouse       bool
	SpouseHasIncome bool
	Children        int
}

type Figures struct {
	GrossSalary           int64 `json:"gross_salary"`
	GrossSalaryByFTE      int64 `json:"gross_salary_by_fte"`
	CompensationRefund    int64 `json:"compensation_refund"`
	ThirteenthMonthSalary int64 `json:"thirteen_month_salary"`
	PVD                   int64 `json:"pvd"`
	SavingFund            int64 `json:"saving_fund"`
	EmployeeSSF           int64 `json:"employee_ssf"`
	EmployerSSF           int64 `json:"employer_ssf"`
	EmployeeHealthWelfare int64 `json:"employee_health_welfare"`
	EmployerHealthWelfare int64 `json:"employer_health_welfare"`
	Tax                   int64 `json:"tax"`
	TotalIncome           int64 `json:"total_income"`
	TotalDeduction        int64 `json:"total_deduction"`
	NetSalary             int64 `json:"net_salary"`
	EmployerContribution  int64 `json:"employer_contribution"`
}

// Compute prices one allocation. Capped per-person amounts (SSF, tax,
// health welfare) are computed on the full salary and then shared by FTE so
// the rows of one employee add up to the person's total.
func Compute(cfg tax.Config, in CalcInput) Figures {
	f := Figures{
		GrossSalary:        in.Salary,
		GrossSalaryByFTE:   allocation.AllocatedAmount(in.Salary, in.FTE),
		CompensationRefund: max(in.CompensationRefund, 0),
	}

	f.PVD = tax.FundContribution(cfg, f.GrossSalaryByFTE, in.PVD, false)
	if !in.PVD {
		f.SavingFund = tax.FundContribution(cfg, f.GrossSalaryByFTE, false, in.SavingFund)
	}

	breakdown := tax.Calculate(cfg, tax.Input{
		MonthlyIncome:    in.Salary,
		HasSpouse:        in.HasSpouse,
		SpouseHasIncome:  in.SpouseHasIncome,
		Children:         in.Children,
		PVD:              in.PVD,
		SavingFund:       in.SavingFund,
		ContributesToSSF: true,
	})
	f.Tax = share(breakdown.MonthlyTax, in.FTE)
	f.EmployeeSSF = share(breakdown.MonthlySSF, in.FTE)
	f.EmployerSSF = f.EmployeeSSF

	if in.HealthWelfare {
		ee, er := HealthWelfare(in.Salary)
		f.EmployeeHealthWelfare = share(ee, in.FTE)
		f.EmployerHealthWelfare = share(er, in.FTE)
	}

	// 13th month accrues only once probation is over.
	if !in.OnProbation {
		f.ThirteenthMonthSalary = (f.GrossSalaryByFTE + 6) / 12
	}

	f.Totals()
	return f
}

// Totals recomputes the derived sums from the individual components.
func (f *Figures) Totals() {
	f.TotalIncome = f.GrossSalaryByFTE + f.CompensationRefund
	f.TotalDeduction = f.PVD + f.SavingFund + f.EmployeeSSF + f.EmployeeHealthWelfare + f.Tax
	f.NetSalary = f.TotalIncome - f.TotalDeduction
	f.EmployerContribution = f.EmployerSSF + f.EmployerHealthWelfare + f.PVD + f.SavingFund + f.ThirteenthMonthSalary
}

func share(amount int64, fte int) int64 {
	return allocation.AllocatedAmount(amount, fte)
}

// figuresOf reads the stored components of a payroll row.
func figuresOf(p Payroll) Figures {
	return Figures{
		GrossSalary:           p.GrossSalary,
		GrossSalaryByFTE:      p.GrossSalaryByFTE,
		CompensationRefund:    p.CompensationRefund,
		ThirteenthMonthSalary: p.ThirteenthMonthSalary,
		PVD:                   p.PVD,
		SavingFund:            p.SavingFund,
		EmployeeSSF:           p.EmployeeSSF,
		EmployerSSF:           p.EmployerSSF,
		EmployeeHealthWelfare: p.EmployeeHealthWelfare,
		EmployerHealthWelfare: p.EmployerHealthWelfare,
		Tax:                   p.Tax,
		TotalIncome:           p.TotalIncome,
		TotalDeduction:        p.TotalDeduction,
		NetSalary:             p.NetSalary,
		EmployerContribution:  p.EmployerContribution,
	}
}
