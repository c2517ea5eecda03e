package expense

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Category string

const (
	CategoryRent      Category = "aluguel"
	CategorySuppliers Category = "fornecedores"
	CategoryTaxes     Category = "impostos"
	CategorySalaries  Category = "salarios"
	CategoryMarketing Category = "marketing"
	CategoryEquipment Category = "equipamentos"
	CategoryUtilities Category = "utilitarios"
	CategoryTransport Category = "transportes"
	CategoryOther     Category = "outros"
)

var Categories = []Category{
	CategoryRent,
	CategorySuppliers,
	CategoryTaxes,
	CategorySalaries,
	CategoryMarketing,
	CategoryEquipment,
	CategoryUtilities,
	CategoryTransport,
	CategoryOther,
}

func (c Category) IsValid() bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

type Expense struct {
	Id          ulid.ULID `json:"id"`
	UserId      ulid.ULID `json:"userId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	IsFixed     bool      `json:"isFixed"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter só restringe por período quando Month e Year estão presentes.
type Filter struct {
	Month    int
	Year     int
	Category Category
}

func (f Filter) HasPeriod() bool {
	return f.Month != 0 && f.Year != 0
}

// Patch representa uma atualização parcial: campos nil não são alterados.
type Patch struct {
	Description *string
	Amount      *float64
	Category    *Category
	IsFixed     *bool
	Date        *time.Time
	Notes       *string
}

func (p Patch) Apply(e *Expense) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.IsFixed != nil {
		e.IsFixed = *p.IsFixed
	}
	if p.Date != nil {
		e.Date = p.Date.UTC()
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
}
