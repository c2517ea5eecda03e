package contracts

import (
	"Caixa/internal/domain/revenue"
	"Caixa/internal/pkg"
)

type RevenueCreateRequest struct {
	Description string    `json:"description" binding:"required,notblank,max=255"`
	Amount      *float64  `json:"amount" binding:"required,gte=0"`
	Category    string    `json:"category" binding:"required,revenue_category"`
	Date        *pkg.Date `json:"date"`
	Notes       string    `json:"notes" binding:"omitempty,max=1000"`
}

func (r RevenueCreateRequest) ToDomain() *revenue.Revenue {
	rev := &revenue.Revenue{
		Description: r.Description,
		Category:    revenue.Category(r.Category),
		Notes:       r.Notes,
	}
	if r.Amount != nil {
		rev.Amount = *r.Amount
	}
	if r.Date != nil {
		rev.Date = r.Date.Time
	}
	return rev
}

type RevenueUpdateRequest struct {
	Description *string   `json:"description" binding:"omitempty,notblank,max=255"`
	Amount      *float64  `json:"amount" binding:"omitempty,gte=0"`
	Category    *string   `json:"category" binding:"omitempty,revenue_category"`
	Date        *pkg.Date `json:"date"`
	Notes       *string   `json:"notes" binding:"omitempty,max=1000"`
}

func (r RevenueUpdateRequest) ToPatch() revenue.Patch {
	patch := revenue.Patch{
		Description: r.Description,
		Amount:      r.Amount,
		Notes:       r.Notes,
	}
	if r.Category != nil {
		category := revenue.Category(*r.Category)
		patch.Category = &category
	}
	if r.Date != nil {
		date := r.Date.Time
		patch.Date = &date
	}
	return patch
}

type RevenueListQuery struct {
	Month    int    `form:"month" binding:"omitempty,gte=1,lte=12"`
	Year     int    `form:"year" binding:"omitempty,gte=1900,lte=9999"`
	Category string `form:"category" binding:"omitempty,revenue_category"`
}

func (q RevenueListQuery) ToFilter() revenue.Filter {
	return revenue.Filter{
		Month:    q.Month,
		Year:     q.Year,
		Category: revenue.Category(q.Category),
	}
}
