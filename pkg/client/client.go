// Package client é um cliente Go para a API HTTP do Caixa.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Caixa/internal/contracts"
	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/report"
	"Caixa/internal/domain/revenue"
	"Caixa/internal/domain/user"

	"github.com/goccy/go-json"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client guarda o token no próprio valor; use WithToken para trocar de usuário.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: BaseURL é obrigatório")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("client: BaseURL inválido: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Token() string { return c.token }

// APIError é a resposta de erro padrão da API.
type APIError struct {
	Status  int                    `json:"-"`
	Code    string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("caixa api: %s (%s, status %d)", e.Message, e.Code, e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("falha ao serializar requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("falha ao criar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("falha ao executar requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Code == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("falha ao decodificar resposta: %w", err)
	}
	return nil
}

func periodQuery(month, year int, category string) url.Values {
	q := url.Values{}
	if month > 0 {
		q.Set("month", strconv.Itoa(month))
	}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	if category != "" {
		q.Set("category", category)
	}
	return q
}

func (c *Client) Register(ctx context.Context, req contracts.RegisterRequest) (*contracts.AuthResponse, error) {
	var resp contracts.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*contracts.AuthResponse, error) {
	var resp contracts.AuthResponse
	body := contracts.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Profile(ctx context.Context) (*user.User, error) {
	var resp user.User
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req contracts.ProfileUpdateRequest) (*user.User, error) {
	var resp user.User
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListExpenses(ctx context.Context, filter expense.Filter) ([]*expense.Expense, error) {
	var resp []*expense.Expense
	q := periodQuery(filter.Month, filter.Year, string(filter.Category))
	if err := c.do(ctx, http.MethodGet, "/api/expenses", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateExpense(ctx context.Context, req contracts.ExpenseCreateRequest) (*expense.Expense, error) {
	var resp expense.Expense
	if err := c.do(ctx, http.MethodPost, "/api/expenses", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id string, req contracts.ExpenseUpdateRequest) (*expense.Expense, error) {
	var resp expense.Expense
	if err := c.do(ctx, http.MethodPut, "/api/expenses/"+url.PathEscape(id), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/expenses/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ListRevenues(ctx context.Context, filter revenue.Filter) ([]*revenue.Revenue, error) {
	var resp []*revenue.Revenue
	q := periodQuery(filter.Month, filter.Year, string(filter.Category))
	if err := c.do(ctx, http.MethodGet, "/api/revenues", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateRevenue(ctx context.Context, req contracts.RevenueCreateRequest) (*revenue.Revenue, error) {
	var resp revenue.Revenue
	if err := c.do(ctx, http.MethodPost, "/api/revenues", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateRevenue(ctx context.Context, id string, req contracts.RevenueUpdateRequest) (*revenue.Revenue, error) {
	var resp revenue.Revenue
	if err := c.do(ctx, http.MethodPut, "/api/revenues/"+url.PathEscape(id), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteRevenue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/revenues/"+url.PathEscape(id), nil, nil, nil)
}

// MonthlyReport aceita zero em month/year para o mês corrente do servidor.
func (c *Client) MonthlyReport(ctx context.Context, month, year int) (*report.MonthlyReport, error) {
	var resp report.MonthlyReport
	if err := c.do(ctx, http.MethodGet, "/api/reports/monthly", periodQuery(month, year, ""), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Overview(ctx context.Context) (*report.Overview, error) {
	var resp report.Overview
	if err := c.do(ctx, http.MethodGet, "/api/reports/overview", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
