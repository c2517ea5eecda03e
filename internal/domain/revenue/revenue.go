package revenue

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Category string

const (
	CategorySales      Category = "vendas"
	CategoryServices   Category = "servicos"
	CategoryProducts   Category = "produtos"
	CategoryConsulting Category = "consultoria"
	CategoryOther      Category = "outros"
)

var Categories = []Category{
	CategorySales,
	CategoryServices,
	CategoryProducts,
	CategoryConsulting,
	CategoryOther,
}

func (c Category) IsValid() bool {
	switch c {
	case CategorySales, CategoryServices, CategoryProducts, CategoryConsulting, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

type Revenue struct {
	Id          ulid.ULID `json:"id"`
	UserId      ulid.ULID `json:"userId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Filter struct {
	Month    int
	Year     int
	Category Category
}

func (f Filter) HasPeriod() bool {
	return f.Month != 0 && f.Year != 0
}

type Patch struct {
	Description *string
	Amount      *float64
	Category    *Category
	Date        *time.Time
	Notes       *string
}

func (p Patch) Apply(r *Revenue) {
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Date != nil {
		r.Date = p.Date.UTC()
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
