package tax

// Input is one employee's monthly position for tax purposes. Amounts are
// satang.
type Input struct {
	MonthlyIncome    int64 `json:"monthly_income"`
	HasSpouse        bool  `json:"has_spouse"`
	SpouseHasIncome  bool  `json:"spouse_has_income"`
	Children         int   `json:"children"`
	PVD              bool  `json:"pvd"`
	SavingFund       bool  `json:"saving_fund"`
	ContributesToSSF bool  `json:"contributes_to_ssf"`
}

type BracketTax struct {
	Order     int    `json:"order"`
	MinIncome int64  `json:"min_income"`
	MaxIncome *int64 `json:"max_income"`
	Rate      int    `json:"rate"`
	Taxable   int64  `json:"taxable"`
	Tax       int64  `json:"tax"`
}

type Breakdown struct {
	Year              int          `json:"year"`
	MonthlyIncome     int64        `json:"monthly_income"`
	AnnualIncome      int64        `json:"annual_income"`
	EmploymentExpense int64        `json:"employment_expense"`
	PersonalAllowance int64        `json:"personal_allowance"`
	SpouseAllowance   int64        `json:"spouse_allowance"`
	ChildAllowance    int64        `json:"child_allowance"`
	MonthlySSF        int64        `json:"monthly_ssf"`
	AnnualSSF         int64        `json:"annual_ssf"`
	MonthlyFund       int64        `json:"monthly_fund"`
	AnnualFund        int64        `json:"annual_fund"`
	TotalDeductions   int64        `json:"total_deductions"`
	TaxableIncome     int64        `json:"taxable_income"`
	AnnualTax         int64        `json:"annual_tax"`
	MonthlyTax        int64        `json:"monthly_tax"`
	EffectiveRate     int          `json:"effective_rate"`
	Brackets          []BracketTax `json:"brackets"`
}

// Calculate runs the annual pipeline and derives the monthly figure:
// income, employment expense, allowances, SSF and fund contributions,
// taxable income, then progressive brackets.
func Calculate(cfg Config, in Input) Breakdown {
	b := Breakdown{Year: cfg.Year, MonthlyIncome: max(in.MonthlyIncome, 0)}
	b.AnnualIncome = b.MonthlyIncome * 12

	b.EmploymentExpense = min(
		percent(b.AnnualIncome, cfg.Setting(KeyEmploymentExpenseRate)),
		cfg.Setting(KeyEmploymentExpenseCap),
	)

	b.PersonalAllowance = cfg.Setting(KeyPersonalAllowance)
	if in.HasSpouse && !in.SpouseHasIncome {
		b.SpouseAllowance = cfg.Setting(KeySpouseAllowance)
	}
	if in.Children > 0 {
		b.ChildAllowance = cfg.Setting(KeyChildAllowance) * int64(in.Children)
	}

	if in.ContributesToSSF {
		b.MonthlySSF = SocialSecurity(cfg, b.MonthlyIncome)
		b.AnnualSSF = b.MonthlySSF * 12
	}

	b.MonthlyFund = FundContribution(cfg, b.MonthlyIncome, in.PVD, in.SavingFund)
	b.AnnualFund = min(b.MonthlyFund*12, cfg.Setting(KeyPVDAnnualCap))

	b.TotalDeductions = b.EmploymentExpense + b.PersonalAllowance + b.SpouseAllowance +
		b.ChildAllowance + b.AnnualSSF + b.AnnualFund
	b.TaxableIncome = max(b.AnnualIncome-b.TotalDeductions, 0)

	b.Brackets = make([]BracketTax, 0, len(cfg.Brackets))
	for _, br := range cfg.Brackets {
		bt := BracketTax{Order: br.Order, MinIncome: br.MinIncome, MaxIncome: br.MaxIncome, Rate: br.Rate}
		if b.TaxableIncome > br.MinIncome {
			upper := b.TaxableIncome
			if br.MaxIncome != nil && *br.MaxIncome < upper {
				upper = *br.MaxIncome
			}
			bt.Taxable = upper - br.MinIncome
			bt.Tax = percent(bt.Taxable, int64(br.Rate))
		}
		b.AnnualTax += bt.Tax
		b.Brackets = append(b.Brackets, bt)
	}

	b.MonthlyTax = divRound(b.AnnualTax, 12)
	if b.AnnualIncome > 0 {
		b.EffectiveRate = int(divRound(b.AnnualTax*10000, b.AnnualIncome))
	}
	return b
}

// SocialSecurity is the employee's monthly contribution: rate on salary
// capped at SSF_MAX_SALARY, then capped at SSF_MAX_MONTHLY.
func SocialSecurity(cfg Config, monthly int64) int64 {
	base := min(monthly, cfg.Setting(KeySSFMaxSalary))
	return min(percent(base, cfg.Setting(KeySSFRate)), cfg.Setting(KeySSFMaxMonthly))
}

// FundContribution is the monthly provident or saving fund deduction. PVD
// wins when both flags are set.
func FundContribution(cfg Config, monthly int64, pvd, savingFund bool) int64 {
	switch {
	case pvd:
		return percent(monthly, cfg.Setting(KeyPVDRate))
	case savingFund:
		return percent(monthly, cfg.Setting(KeySavingFundRate))
	}
	return 0
}

// percent applies a basis-point rate, rounding half up.
func percent(amount, bp int64) int64 {
	if amount <= 0 || bp <= 0 {
		return 0
	}
	return divRound(amount*bp, 10000)
}

func divRound(n, d int64) int64 {
	if n < 0 {
		return -divRound(-n, d)
	}
	return (n + d/2) / d
}
