package main

import (
	"context"
	"flag"
	"time"

	"Caixa/config"
	"Caixa/internal/domain/auth"
	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/revenue"
	"Caixa/internal/domain/user"
	"Caixa/internal/events"
	"Caixa/internal/infrastructure"
	"Caixa/internal/logger"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
)

// seed popula o banco com um usuário de demonstração e lançamentos dos
// últimos meses.
func main() {
	email := flag.String("email", "demo@caixa.local", "email do usuário de demonstração")
	password := flag.String("password", "demo1234", "senha do usuário de demonstração")
	months := flag.Int("months", 6, "quantidade de meses com lançamentos")
	perMonth := flag.Int("per-month", 12, "lançamentos por mês")
	seed := flag.Int64("seed", 0, "semente do gerador (0 usa aleatória)")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Falha ao carregar configuração")
	}
	logger.Init(cfg)

	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Falha ao conectar ao banco de dados")
	}

	faker := gofakeit.New(*seed)
	ctx := context.Background()

	users := user.NewService(&infrastructure.UserRepository{DB: db})
	authSvc := auth.NewService(users, nil)
	expenses := expense.NewService(&infrastructure.ExpenseRepository{DB: db}, events.NoopPublisher{})
	revenues := revenue.NewService(&infrastructure.RevenueRepository{DB: db}, events.NoopPublisher{})

	owner, err := users.GetByEmail(ctx, *email)
	if err != nil {
		owner = &user.User{
			Name:         faker.Company(),
			Email:        *email,
			Password:     *password,
			BusinessType: faker.RandomString([]string{"padaria", "oficina", "salão", "loja", "restaurante"}),
		}
		if err := authSvc.Register(ctx, owner); err != nil {
			logger.Fatal().Err(err).Str("email", *email).Msg("Falha ao criar usuário de demonstração")
		}
	}

	now := time.Now().UTC()
	for m := 0; m < *months; m++ {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -m, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Second)

		for i := 0; i < *perMonth; i++ {
			date := faker.DateRange(start, end)
			if i%3 == 0 {
				r := &revenue.Revenue{
					Description: faker.ProductName(),
					Amount:      faker.Price(200, 5000),
					Category:    revenue.Categories[faker.Number(0, len(revenue.Categories)-1)],
					Date:        date,
				}
				if err := revenues.Create(ctx, owner.Id, r); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao criar receita")
				}
				continue
			}

			category := expense.Categories[faker.Number(0, len(expense.Categories)-1)]
			e := &expense.Expense{
				Description: faker.Sentence(3),
				Amount:      faker.Price(20, 2000),
				Category:    category,
				IsFixed:     category == expense.CategoryRent || category == expense.CategorySalaries,
				Date:        date,
			}
			if err := expenses.Create(ctx, owner.Id, e); err != nil {
				logger.Fatal().Err(err).Msg("Falha ao criar despesa")
			}
		}
	}

	counter := &infrastructure.RecordCounter{DB: db}
	counts, err := counter.CountForUser(ctx, owner.Id)
	if err != nil {
		logger.Fatal().Err(err).Msg("Falha ao contar lançamentos")
	}

	logger.Info().
		Str("email", owner.Email).
		Int64("expenses", counts.Expenses).
		Int64("revenues", counts.Revenues).
		Msg("Seed concluído")

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
