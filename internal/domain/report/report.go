package report

type SuggestionType string

const (
	SuggestionAlert   SuggestionType = "alert"
	SuggestionWarning SuggestionType = "warning"
	SuggestionInfo    SuggestionType = "info"
)

type Suggestion struct {
	Type    SuggestionType `json:"type"`
	Message string         `json:"message"`
}

type Summary struct {
	TotalExpenses float64 `json:"totalExpenses"`
	TotalRevenues float64 `json:"totalRevenues"`
	NetProfit     float64 `json:"netProfit"`
	ProfitMargin  float64 `json:"profitMargin"`
}

type MonthlyReport struct {
	Month              int                `json:"month"`
	Year               int                `json:"year"`
	Summary            Summary            `json:"summary"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
	RevenuesByCategory map[string]float64 `json:"revenuesByCategory"`
	Suggestions        []Suggestion       `json:"suggestions"`
	ExpensesCount      int                `json:"expensesCount"`
	RevenuesCount      int                `json:"revenuesCount"`
}

type MonthSummary struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	MonthName     string  `json:"monthName"`
	TotalExpenses float64 `json:"totalExpenses"`
	TotalRevenues float64 `json:"totalRevenues"`
	NetProfit     float64 `json:"netProfit"`
}

type Overview struct {
	Months []MonthSummary `json:"months"`
}
