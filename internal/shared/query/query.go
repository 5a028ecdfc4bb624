package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Params are the list parameters accepted by every index endpoint.
type Params struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	p.Search = strings.TrimSpace(p.Search)
	p.SortOrder = strings.ToLower(strings.TrimSpace(p.SortOrder))
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Paginate applies LIMIT/OFFSET for normalized params.
func Paginate(p Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}

// Search matches term case-insensitively against any of the columns.
func Search(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		like := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			clauses[i] = fmt.Sprintf("LOWER(%s) LIKE ?", col)
			args[i] = like
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// Sort orders by the column mapped from p.SortBy; unknown keys fall back to
// fallback so user input never reaches the ORDER BY clause.
func Sort(p Params, allowed map[string]string, fallback string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col, ok := allowed[p.SortBy]
		if !ok {
			col = fallback
		}
		order := "DESC"
		if p.SortOrder == "asc" {
			order = "ASC"
		}
		return db.Order(col + " " + order)
	}
}

// Eq adds "column = value" when value is non-empty.
func Eq(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}
