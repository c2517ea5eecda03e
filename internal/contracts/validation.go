package contracts

import (
	"sync"

	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/revenue"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// RegisterValidators instala no validator do gin as tags usadas nos
// contratos: notblank, expense_category e revenue_category.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = Register(v)
	})
	return err
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("expense_category", func(fl validator.FieldLevel) bool {
		return expense.Category(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("revenue_category", func(fl validator.FieldLevel) bool {
		return revenue.Category(fl.Field().String()).IsValid()
	})
}
