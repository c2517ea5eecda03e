package routes_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Caixa/config"
	"Caixa/internal/contracts"
	"Caixa/internal/domain/auth"
	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/report"
	"Caixa/internal/domain/revenue"
	"Caixa/internal/domain/user"
	"Caixa/internal/events"
	"Caixa/internal/infrastructure"
	"Caixa/internal/middleware"
	"Caixa/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	require.NoError(t, contracts.RegisterValidators())

	cfg := config.NewDefaultConfig()
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
	cfg.Log.Level = "error"
	cfg.JWT.Secret = "segredo-de-teste-com-tamanho-suficiente"
	cfg.JWT.Expiration = config.Duration(time.Hour)

	db, err := infrastructure.NewDb(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	expenses := &infrastructure.ExpenseRepository{DB: db}
	revenues := &infrastructure.RevenueRepository{DB: db}
	users := user.NewService(&infrastructure.UserRepository{DB: db})

	jwtSvc, err := middleware.NewJwtService(cfg.JWT, user.NewUserServiceAdapter(users))
	require.NoError(t, err)

	handler := &routes.Handler{
		UserService:    users,
		AuthService:    auth.NewService(users, nil),
		JwtService:     jwtSvc,
		ExpenseService: expense.NewService(expenses, events.NoopPublisher{}),
		RevenueService: revenue.NewService(revenues, events.NoopPublisher{}),
		ReportService:  report.NewService(expenses, revenues),
		HealthCheck:    &infrastructure.RecordCounter{DB: db},
	}

	router := gin.New()
	routes.Register(router, handler, routes.Limiters{})
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func register(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := do(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Padaria Central",
		"email":    email,
		"password": "segredo123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp contracts.AuthResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	decode(t, w, &body)
	code, _ := body["error"].(string)
	return code
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":         "Oficina do Zé",
		"email":        "Ze@Oficina.com",
		"password":     "segredo123",
		"cnpj":         "12.345.678/0001-90",
		"businessType": "oficina",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	var created contracts.AuthResponse
	decode(t, w, &created)
	assert.Equal(t, "ze@oficina.com", created.Email)
	assert.Equal(t, "oficina", created.BusinessType)

	w = do(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Outro", "email": "ze@oficina.com", "password": "segredo123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", errorCode(t, w))

	w = do(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ze@oficina.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))

	w = do(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ninguem@oficina.com", "password": "segredo123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ze@oficina.com", "password": "segredo123"})
	require.Equal(t, http.StatusOK, w.Code)
	var logged contracts.AuthResponse
	decode(t, w, &logged)
	assert.Equal(t, created.Id, logged.Id)
	assert.NotEmpty(t, logged.Token)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "A", "email": "a@b.com", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestPrivateRoutes_RequireToken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/expenses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodGet, "/api/expenses", "não-é-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpenseCRUD(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := register(t, router, "dono@loja.com")

	w := do(t, router, http.MethodPost, "/api/expenses", token, gin.H{
		"description": "Aluguel da loja",
		"amount":      1500,
		"category":    "aluguel",
		"isFixed":     true,
		"date":        "2024-03-05",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created expense.Expense
	decode(t, w, &created)
	assert.Equal(t, expense.CategoryRent, created.Category)
	assert.True(t, created.IsFixed)

	path := "/api/expenses/" + created.Id.String()

	w = do(t, router, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPut, path, token, gin.H{"amount": 1600})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated expense.Expense
	decode(t, w, &updated)
	assert.Equal(t, 1600.0, updated.Amount)
	assert.Equal(t, "Aluguel da loja", updated.Description)

	w = do(t, router, http.MethodPut, path, token, gin.H{"amount": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodGet, "/api/expenses?month=3&year=2024", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []expense.Expense
	decode(t, w, &listed)
	assert.Len(t, listed, 1)

	w = do(t, router, http.MethodGet, "/api/expenses?month=4&year=2024", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Despesa removida com sucesso"}`, w.Body.String())

	w = do(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "EXPENSE_NOT_FOUND", errorCode(t, w))
}

func TestExpense_Validation(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := register(t, router, "val@loja.com")

	tests := []struct {
		name string
		body gin.H
	}{
		{"valor negativo", gin.H{"description": "x", "amount": -5, "category": "outros"}},
		{"sem valor", gin.H{"description": "x", "category": "outros"}},
		{"categoria de receita", gin.H{"description": "x", "amount": 5, "category": "vendas"}},
		{"data inválida", gin.H{"description": "x", "amount": 5, "category": "outros", "date": "05/03/2024"}},
	}

	for _, tt := range tests {
		w := do(t, router, http.MethodPost, "/api/expenses", token, tt.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.name)
	}

	w := do(t, router, http.MethodGet, "/api/expenses/nao-e-id", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodGet, "/api/expenses?month=13&year=2024", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecords_AreOwnerScoped(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	alice := register(t, router, "alice@loja.com")
	bob := register(t, router, "bob@loja.com")

	w := do(t, router, http.MethodPost, "/api/revenues", alice, gin.H{
		"description": "Venda balcão", "amount": 300, "category": "vendas",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var rev revenue.Revenue
	decode(t, w, &rev)
	path := "/api/revenues/" + rev.Id.String()

	w = do(t, router, http.MethodGet, path, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "REVENUE_NOT_FOUND", errorCode(t, w))

	w = do(t, router, http.MethodPut, path, bob, gin.H{"amount": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodGet, "/api/revenues", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, router, http.MethodGet, path, alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMonthlyReport(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := register(t, router, "relatorio@loja.com")

	records := []struct {
		path string
		body gin.H
	}{
		{"/api/expenses", gin.H{"description": "Aluguel", "amount": 100, "category": "aluguel", "date": "2024-03-01"}},
		{"/api/expenses", gin.H{"description": "Anúncios", "amount": 50, "category": "marketing", "date": "2024-03-31T23:00:00Z"}},
		{"/api/revenues", gin.H{"description": "Vendas", "amount": 120, "category": "vendas", "date": "2024-03-15"}},
		{"/api/expenses", gin.H{"description": "Fora do mês", "amount": 999, "category": "outros", "date": "2024-04-01"}},
	}
	for _, r := range records {
		w := do(t, router, http.MethodPost, r.path, token, r.body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, router, http.MethodGet, "/api/reports/monthly?month=3&year=2024", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got report.MonthlyReport
	decode(t, w, &got)
	assert.Equal(t, report.Summary{TotalExpenses: 150, TotalRevenues: 120, NetProfit: -30, ProfitMargin: -25}, got.Summary)
	assert.Equal(t, map[string]float64{"aluguel": 100, "marketing": 50}, got.ExpensesByCategory)
	assert.Equal(t, map[string]float64{"vendas": 120}, got.RevenuesByCategory)
	assert.Equal(t, 2, got.ExpensesCount)
	assert.Equal(t, 1, got.RevenuesCount)
	require.Len(t, got.Suggestions, 3)
	assert.Equal(t, report.SuggestionAlert, got.Suggestions[0].Type)

	w = do(t, router, http.MethodGet, "/api/reports/monthly?month=0&year=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverview(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := register(t, router, "overview@loja.com")

	now := time.Now().UTC()
	oldest := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC).AddDate(0, -5, 0)

	records := []struct {
		path string
		body gin.H
	}{
		{"/api/expenses", gin.H{"description": "Insumos", "amount": 40, "category": "fornecedores", "date": now.Format(time.RFC3339)}},
		{"/api/revenues", gin.H{"description": "Vendas", "amount": 100, "category": "vendas", "date": now.Format(time.RFC3339)}},
		{"/api/expenses", gin.H{"description": "Aluguel antigo", "amount": 70, "category": "aluguel", "date": oldest.Format(time.RFC3339)}},
	}
	for _, r := range records {
		w := do(t, router, http.MethodPost, r.path, token, r.body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, router, http.MethodGet, "/api/reports/overview", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got report.Overview
	decode(t, w, &got)
	require.Len(t, got.Months, report.OverviewMonths)

	for i := 1; i < len(got.Months); i++ {
		prev, cur := got.Months[i-1], got.Months[i]
		assert.Less(t, prev.Year*12+prev.Month, cur.Year*12+cur.Month, "meses do mais antigo para o mais recente")
	}

	first := got.Months[0]
	assert.Equal(t, int(oldest.Month()), first.Month)
	assert.Equal(t, oldest.Year(), first.Year)
	assert.Equal(t, 70.0, first.TotalExpenses)
	assert.Equal(t, 0.0, first.TotalRevenues)
	assert.Equal(t, -70.0, first.NetProfit)

	last := got.Months[5]
	assert.Equal(t, int(now.Month()), last.Month)
	assert.Equal(t, now.Year(), last.Year)
	assert.Equal(t, 40.0, last.TotalExpenses)
	assert.Equal(t, 100.0, last.TotalRevenues)
	assert.Equal(t, 60.0, last.NetProfit)

	for _, m := range got.Months[1:5] {
		assert.Zero(t, m.TotalExpenses+m.TotalRevenues, "%d/%d deveria estar vazio", m.Month, m.Year)
	}
}

func TestProfile(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := register(t, router, "perfil@loja.com")
	register(t, router, "ocupado@loja.com")

	w := do(t, router, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	w = do(t, router, http.MethodPut, "/api/user/profile", token, gin.H{"name": "Padaria Nova", "cnpj": "11.222.333/0001-44"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated user.User
	decode(t, w, &updated)
	assert.Equal(t, "Padaria Nova", updated.Name)
	assert.Equal(t, "perfil@loja.com", updated.Email)

	w = do(t, router, http.MethodPut, "/api/user/profile", token, gin.H{"email": "ocupado@loja.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_IN_USE", errorCode(t, w))
}

func TestGoogleRoutes_WithoutProvider(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/auth/google/url", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "OAUTH_NOT_CONFIGURED", errorCode(t, w))

	w = do(t, router, http.MethodPost, "/api/auth/google", "", gin.H{"credential": "abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodPost, "/api/auth/google/callback", "", gin.H{"code": "c", "state": "s"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "OAUTH_STATE_INVALID", errorCode(t, w))
}

func TestHealth(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, w.Body.String())
}
