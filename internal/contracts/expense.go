package contracts

import (
	"Caixa/internal/domain/expense"
	"Caixa/internal/pkg"
)

type ExpenseCreateRequest struct {
	Description string    `json:"description" binding:"required,notblank,max=255"`
	Amount      *float64  `json:"amount" binding:"required,gte=0"`
	Category    string    `json:"category" binding:"required,expense_category"`
	IsFixed     bool      `json:"isFixed"`
	Date        *pkg.Date `json:"date"`
	Notes       string    `json:"notes" binding:"omitempty,max=1000"`
}

func (r ExpenseCreateRequest) ToDomain() *expense.Expense {
	e := &expense.Expense{
		Description: r.Description,
		Category:    expense.Category(r.Category),
		IsFixed:     r.IsFixed,
		Notes:       r.Notes,
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.Date != nil {
		e.Date = r.Date.Time
	}
	return e
}

// ExpenseUpdateRequest aceita qualquer subconjunto dos campos.
type ExpenseUpdateRequest struct {
	Description *string   `json:"description" binding:"omitempty,notblank,max=255"`
	Amount      *float64  `json:"amount" binding:"omitempty,gte=0"`
	Category    *string   `json:"category" binding:"omitempty,expense_category"`
	IsFixed     *bool     `json:"isFixed"`
	Date        *pkg.Date `json:"date"`
	Notes       *string   `json:"notes" binding:"omitempty,max=1000"`
}

func (r ExpenseUpdateRequest) ToPatch() expense.Patch {
	patch := expense.Patch{
		Description: r.Description,
		Amount:      r.Amount,
		IsFixed:     r.IsFixed,
		Notes:       r.Notes,
	}
	if r.Category != nil {
		category := expense.Category(*r.Category)
		patch.Category = &category
	}
	if r.Date != nil {
		date := r.Date.Time
		patch.Date = &date
	}
	return patch
}

type ExpenseListQuery struct {
	Month    int    `form:"month" binding:"omitempty,gte=1,lte=12"`
	Year     int    `form:"year" binding:"omitempty,gte=1900,lte=9999"`
	Category string `form:"category" binding:"omitempty,expense_category"`
}

func (q ExpenseListQuery) ToFilter() expense.Filter {
	return expense.Filter{
		Month:    q.Month,
		Year:     q.Year,
		Category: expense.Category(q.Category),
	}
}
