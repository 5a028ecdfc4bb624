package tax

import "sort"

// Setting keys. Rates are basis points, amounts are satang.
const (
	KeyEmploymentExpenseRate = "EMPLOYMENT_EXPENSE_RATE"
	KeyEmploymentExpenseCap  = "EMPLOYMENT_EXPENSE_CAP"
	KeyPersonalAllowance     = "PERSONAL_ALLOWANCE"
	KeySpouseAllowance       = "SPOUSE_ALLOWANCE"
	KeyChildAllowance        = "CHILD_ALLOWANCE"
	KeySSFRate               = "SSF_RATE"
	KeySSFMaxMonthly         = "SSF_MAX_MONTHLY"
	KeySSFMaxSalary          = "SSF_MAX_SALARY"
	KeyPVDRate               = "PVD_RATE"
	KeySavingFundRate        = "SAVING_FUND_RATE"
	KeyPVDAnnualCap          = "PVD_ANNUAL_CAP"
)

// DefaultSettings fill in any key a year has not configured.
var DefaultSettings = map[string]int64{
	KeyEmploymentExpenseRate: 5000,
	KeyEmploymentExpenseCap:  10_000_000,
	KeyPersonalAllowance:     6_000_000,
	KeySpouseAllowance:       6_000_000,
	KeyChildAllowance:        3_000_000,
	KeySSFRate:               500,
	KeySSFMaxMonthly:         75_000,
	KeySSFMaxSalary:          1_500_000,
	KeyPVDRate:               750,
	KeySavingFundRate:        500,
	KeyPVDAnnualCap:          50_000_000,
}

func ptr(v int64) *int64 { return &v }

// DefaultBrackets is the progressive personal income tax table used when a
// year has no brackets stored.
var DefaultBrackets = []Bracket{
	{Order: 1, MinIncome: 0, MaxIncome: ptr(15_000_000), Rate: 0},
	{Order: 2, MinIncome: 15_000_000, MaxIncome: ptr(30_000_000), Rate: 500},
	{Order: 3, MinIncome: 30_000_000, MaxIncome: ptr(50_000_000), Rate: 1000},
	{Order: 4, MinIncome: 50_000_000, MaxIncome: ptr(75_000_000), Rate: 1500},
	{Order: 5, MinIncome: 75_000_000, MaxIncome: ptr(100_000_000), Rate: 2000},
	{Order: 6, MinIncome: 100_000_000, MaxIncome: ptr(200_000_000), Rate: 2500},
	{Order: 7, MinIncome: 200_000_000, MaxIncome: ptr(500_000_000), Rate: 3000},
	{Order: 8, MinIncome: 500_000_000, MaxIncome: nil, Rate: 3500},
}

type Bracket struct {
	Order     int    `json:"order"`
	MinIncome int64  `json:"min_income"`
	MaxIncome *int64 `json:"max_income"`
	Rate      int    `json:"rate"`
}

// Config is everything the calculator needs for one tax year. It is cached
// as JSON per year.
type Config struct {
	Year     int              `json:"year"`
	Brackets []Bracket        `json:"brackets"`
	Settings map[string]int64 `json:"settings"`
}

// Setting returns the configured value or the default for key.
func (c Config) Setting(key string) int64 {
	if v, ok := c.Settings[key]; ok {
		return v
	}
	return DefaultSettings[key]
}

// NewConfig builds a Config from stored rows, falling back to defaults.
func NewConfig(year int, brackets []TaxBracket, settings []TaxSetting) Config {
	cfg := Config{Year: year, Settings: make(map[string]int64, len(settings))}
	for _, s := range settings {
		if s.IsActive {
			cfg.Settings[s.Key] = s.Value
		}
	}
	for _, b := range brackets {
		if !b.IsActive {
			continue
		}
		cfg.Brackets = append(cfg.Brackets, Bracket{
			Order:     b.BracketOrder,
			MinIncome: b.MinIncome,
			MaxIncome: b.MaxIncome,
			Rate:      b.Rate,
		})
	}
	if len(cfg.Brackets) == 0 {
		cfg.Brackets = append([]Bracket(nil), DefaultBrackets...)
	}
	sort.SliceStable(cfg.Brackets, func(i, j int) bool { return cfg.Brackets[i].Order < cfg.Brackets[j].Order })
	return cfg
}
