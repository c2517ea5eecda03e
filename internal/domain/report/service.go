package report

import (
	"context"
	"time"

	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/revenue"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	Expenses expense.Repository
	Revenues revenue.Repository
	Now      func() time.Time
}

func NewService(expenses expense.Repository, revenues revenue.Repository) *Service {
	return &Service{
		Expenses: expenses,
		Revenues: revenues,
		Now:      time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// GetMonthlyReport usa o mês/ano corrente para valores zerados.
func (s *Service) GetMonthlyReport(ctx context.Context, userID ulid.ULID, month, year int) (*MonthlyReport, error) {
	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	if !pkg.ValidMonth(month) {
		return nil, appErrors.NewValidationError("month", "Mês deve estar entre 1 e 12")
	}
	if !pkg.ValidYear(year) {
		return nil, appErrors.NewValidationError("year", "Ano inválido")
	}

	ym := pkg.YearMonth{Year: year, Month: month}
	expenses, revenues, err := s.fetchWindow(ctx, userID, ym)
	if err != nil {
		return nil, err
	}

	return BuildMonthly(month, year, expenses, revenues), nil
}

// GetOverview resume os seis meses que terminam no mês de ref, do mais
// antigo para o mais recente. As janelas são consultadas em paralelo.
func (s *Service) GetOverview(ctx context.Context, userID ulid.ULID, ref time.Time) (*Overview, error) {
	if ref.IsZero() {
		ref = s.now()
	}

	months := pkg.TrailingMonths(ref, OverviewMonths)
	summaries := make([]MonthSummary, len(months))

	g, gctx := errgroup.WithContext(ctx)
	for i, ym := range months {
		i, ym := i, ym
		g.Go(func() error {
			expenses, revenues, err := s.fetchWindow(gctx, userID, ym)
			if err != nil {
				return err
			}
			summaries[i] = BuildMonthSummary(ym, expenses, revenues)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{Months: summaries}, nil
}

func (s *Service) fetchWindow(ctx context.Context, userID ulid.ULID, ym pkg.YearMonth) ([]*expense.Expense, []*revenue.Revenue, error) {
	from, to := ym.Window()

	expenses, err := s.Expenses.ForOwner(userID).ListBetween(ctx, from, to)
	if err != nil {
		return nil, nil, err
	}

	revenues, err := s.Revenues.ForOwner(userID).ListBetween(ctx, from, to)
	if err != nil {
		return nil, nil, err
	}

	return expenses, revenues, nil
}
