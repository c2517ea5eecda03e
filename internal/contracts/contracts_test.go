package contracts_test

import (
	"testing"
	"time"

	"Caixa/internal/contracts"
	"Caixa/internal/domain/expense"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, contracts.Register(v))
	return v
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestExpenseCreateRequest_Validation(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	tests := []struct {
		name    string
		req     contracts.ExpenseCreateRequest
		wantErr bool
	}{
		{"válida", contracts.ExpenseCreateRequest{Description: "Luz", Amount: floatPtr(0), Category: "utilitarios"}, false},
		{"sem valor", contracts.ExpenseCreateRequest{Description: "Luz", Category: "utilitarios"}, true},
		{"valor negativo", contracts.ExpenseCreateRequest{Description: "Luz", Amount: floatPtr(-1), Category: "utilitarios"}, true},
		{"descrição em branco", contracts.ExpenseCreateRequest{Description: "   ", Amount: floatPtr(1), Category: "outros"}, true},
		{"categoria de receita", contracts.ExpenseCreateRequest{Description: "x", Amount: floatPtr(1), Category: "vendas"}, true},
	}

	for _, tt := range tests {
		err := v.Struct(tt.req)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
		} else {
			assert.NoError(t, err, tt.name)
		}
	}
}

func TestUpdateRequests_OptionalFields(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	assert.NoError(t, v.Struct(contracts.ExpenseUpdateRequest{}))
	assert.NoError(t, v.Struct(contracts.RevenueUpdateRequest{Category: strPtr("consultoria")}))
	assert.Error(t, v.Struct(contracts.RevenueUpdateRequest{Category: strPtr("aluguel")}))
	assert.Error(t, v.Struct(contracts.ExpenseUpdateRequest{Description: strPtr("")}))
	assert.Error(t, v.Struct(contracts.ProfileUpdateRequest{Email: strPtr("não-é-email")}))
	assert.NoError(t, v.Struct(contracts.ProfileUpdateRequest{CNPJ: strPtr("")}))
}

func TestRegisterRequest_PasswordLength(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	assert.Error(t, v.Struct(contracts.RegisterRequest{Name: "A", Email: "a@b.com", Password: "12345"}))
	assert.NoError(t, v.Struct(contracts.RegisterRequest{Name: "A", Email: "a@b.com", Password: "123456"}))
}

func TestExpenseRequests_ToDomain(t *testing.T) {
	t.Parallel()

	var req contracts.ExpenseCreateRequest
	body := `{"description":"Aluguel","amount":1200,"category":"aluguel","isFixed":true,"date":"2024-03-05"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	e := req.ToDomain()
	assert.Equal(t, expense.CategoryRent, e.Category)
	assert.Equal(t, 1200.0, e.Amount)
	assert.True(t, e.IsFixed)
	assert.True(t, e.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))

	var upd contracts.ExpenseUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category":"impostos","date":"2024-04-01T10:00:00Z"}`), &upd))
	patch := upd.ToPatch()
	require.NotNil(t, patch.Category)
	assert.Equal(t, expense.CategoryTaxes, *patch.Category)
	require.NotNil(t, patch.Date)
	assert.Nil(t, patch.Amount)
	assert.Nil(t, patch.Description)

	q := contracts.ExpenseListQuery{Month: 3, Year: 2024, Category: "marketing"}
	assert.Equal(t, expense.Filter{Month: 3, Year: 2024, Category: expense.CategoryMarketing}, q.ToFilter())
}
