package tax

import "go-hrms/internal/shared/query"

type ListBracketsRequest struct {
	query.Params
	Year int `form:"year"`
}

type ListSettingsRequest struct {
	query.Params
	Year int `form:"year"`
}

type BracketRequest struct {
	Year         int    `json:"year" binding:"required,gte=2000,lte=2100"`
	BracketOrder int    `json:"bracket_order" binding:"required,gte=1"`
	MinIncome    int64  `json:"min_income" binding:"gte=0,lte=1000000000000000"`
	MaxIncome    *int64 `json:"max_income" binding:"omitempty,gtfield=MinIncome,lte=1000000000000000"`
	Rate         int    `json:"rate" binding:"gte=0,lte=10000"`
	Description  string `json:"description" binding:"max=255"`
	IsActive     *bool  `json:"is_active"`
}

type SettingRequest struct {
	Year        int    `json:"year" binding:"required,gte=2000,lte=2100"`
	Key         string `json:"key" binding:"required,max=50"`
	Value       int64  `json:"value" binding:"gte=0,lte=10000000000000"`
	Description string `json:"description" binding:"max=255"`
	IsActive    *bool  `json:"is_active"`
}

type CalculateRequest struct {
	Year            int   `json:"year" binding:"omitempty,gte=2000,lte=2100"`
	MonthlyIncome   int64 `json:"monthly_income" binding:"gte=0,lte=10000000000000"`
	HasSpouse       bool  `json:"has_spouse"`
	SpouseHasIncome bool  `json:"spouse_has_income"`
	Children        int   `json:"children" binding:"gte=0,lte=20"`
	PVD             bool  `json:"pvd"`
	SavingFund      bool  `json:"saving_fund"`
	// ContributesToSSF defaults to true.
	ContributesToSSF *bool `json:"contributes_to_ssf"`
}

type BracketResponse struct {
	ID           string `json:"id"`
	Year         int    `json:"year"`
	BracketOrder int    `json:"bracket_order"`
	MinIncome    int64  `json:"min_income"`
	MaxIncome    *int64 `json:"max_income"`
	Rate         int    `json:"rate"`
	Description  string `json:"description"`
	IsActive     bool   `json:"is_active"`
}

type SettingResponse struct {
	ID          string `json:"id"`
	Year        int    `json:"year"`
	Key         string `json:"key"`
	Value       int64  `json:"value"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}
