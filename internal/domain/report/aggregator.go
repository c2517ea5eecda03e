package report

import (
	"fmt"

	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/revenue"
	"Caixa/internal/pkg"

	"github.com/shopspring/decimal"
)

const OverviewMonths = 6

const (
	msgExpensesExceedRevenues = "⚠️ Atenção: Despesas superam receitas este mês!"
	msgLowProfitMargin        = "Margem de lucro abaixo de 10%. Considere revisar custos."
	msgDominantCategory       = "A categoria \"%s\" representa mais de 40%% das despesas. Considere otimizar."
)

var (
	hundred            = decimal.NewFromInt(100)
	lowMarginThreshold = decimal.NewFromInt(10)
	dominantShare      = decimal.NewFromFloat(0.4)
)

// categoryTotals preserva a ordem em que cada categoria apareceu.
type categoryTotals struct {
	total decimal.Decimal
	sums  map[string]decimal.Decimal
	order []string
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{sums: make(map[string]decimal.Decimal)}
}

func (c *categoryTotals) add(category string, amount float64) {
	value := decimal.NewFromFloat(amount)
	c.total = c.total.Add(value)
	if _, seen := c.sums[category]; !seen {
		c.order = append(c.order, category)
	}
	c.sums[category] = c.sums[category].Add(value)
}

// largest devolve a categoria de maior soma; em caso de empate vence a
// que apareceu primeiro.
func (c *categoryTotals) largest() (string, decimal.Decimal, bool) {
	if len(c.order) == 0 {
		return "", decimal.Zero, false
	}
	best := c.order[0]
	for _, category := range c.order[1:] {
		if c.sums[category].GreaterThan(c.sums[best]) {
			best = category
		}
	}
	return best, c.sums[best], true
}

func (c *categoryTotals) asFloats() map[string]float64 {
	out := make(map[string]float64, len(c.sums))
	for category, sum := range c.sums {
		out[category] = sum.InexactFloat64()
	}
	return out
}

func foldExpenses(items []*expense.Expense) *categoryTotals {
	totals := newCategoryTotals()
	for _, e := range items {
		totals.add(e.Category.String(), e.Amount)
	}
	return totals
}

func foldRevenues(items []*revenue.Revenue) *categoryTotals {
	totals := newCategoryTotals()
	for _, r := range items {
		totals.add(r.Category.String(), r.Amount)
	}
	return totals
}

func profitMargin(net, revenues decimal.Decimal) decimal.Decimal {
	if !revenues.IsPositive() {
		return decimal.Zero
	}
	return net.Div(revenues).Mul(hundred)
}

// BuildMonthly agrega os lançamentos de um mês já filtrados pela janela.
func BuildMonthly(month, year int, expenses []*expense.Expense, revenues []*revenue.Revenue) *MonthlyReport {
	exp := foldExpenses(expenses)
	rev := foldRevenues(revenues)

	net := rev.total.Sub(exp.total)
	margin := profitMargin(net, rev.total)

	return &MonthlyReport{
		Month: month,
		Year:  year,
		Summary: Summary{
			TotalExpenses: exp.total.InexactFloat64(),
			TotalRevenues: rev.total.InexactFloat64(),
			NetProfit:     net.InexactFloat64(),
			ProfitMargin:  margin.Round(2).InexactFloat64(),
		},
		ExpensesByCategory: exp.asFloats(),
		RevenuesByCategory: rev.asFloats(),
		Suggestions:        suggest(exp, rev, margin),
		ExpensesCount:      len(expenses),
		RevenuesCount:      len(revenues),
	}
}

func suggest(exp, rev *categoryTotals, margin decimal.Decimal) []Suggestion {
	suggestions := make([]Suggestion, 0, 3)

	if exp.total.GreaterThan(rev.total) {
		suggestions = append(suggestions, Suggestion{Type: SuggestionAlert, Message: msgExpensesExceedRevenues})
	}

	if rev.total.IsPositive() && margin.LessThan(lowMarginThreshold) {
		suggestions = append(suggestions, Suggestion{Type: SuggestionWarning, Message: msgLowProfitMargin})
	}

	if category, sum, ok := exp.largest(); ok && sum.GreaterThan(exp.total.Mul(dominantShare)) {
		suggestions = append(suggestions, Suggestion{
			Type:    SuggestionInfo,
			Message: fmt.Sprintf(msgDominantCategory, category),
		})
	}

	return suggestions
}

func BuildMonthSummary(ym pkg.YearMonth, expenses []*expense.Expense, revenues []*revenue.Revenue) MonthSummary {
	exp := foldExpenses(expenses)
	rev := foldRevenues(revenues)

	return MonthSummary{
		Month:         ym.Month,
		Year:          ym.Year,
		MonthName:     ym.Name(),
		TotalExpenses: exp.total.InexactFloat64(),
		TotalRevenues: rev.total.InexactFloat64(),
		NetProfit:     rev.total.Sub(exp.total).InexactFloat64(),
	}
}
