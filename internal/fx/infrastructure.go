package fx

import (
	"context"

	"Caixa/config"
	"Caixa/internal/events"
	"Caixa/internal/infrastructure"
	"Caixa/internal/logger"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newExpenseRepository,
		newRevenueRepository,
		newRecordCounter,
		newEventPublisher,
	),
)

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return db, nil
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newExpenseRepository(db *gorm.DB) *infrastructure.ExpenseRepository {
	return &infrastructure.ExpenseRepository{DB: db}
}

func newRevenueRepository(db *gorm.DB) *infrastructure.RevenueRepository {
	return &infrastructure.RevenueRepository{DB: db}
}

func newRecordCounter(db *gorm.DB) *infrastructure.RecordCounter {
	return &infrastructure.RecordCounter{DB: db}
}

// newEventPublisher usa AMQP quando EVENTS_AMQP_URL está definido.
func newEventPublisher(lc fx.Lifecycle, cfg *config.Config) (events.Publisher, error) {
	if cfg.Events.AMQPURL == "" {
		logger.Info().Msg("Publicação de eventos desabilitada (EVENTS_AMQP_URL vazio)")
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		logger.Error().Err(err).Str("exchange", cfg.Events.Exchange).Msg("Falha ao conectar ao broker de eventos")
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
