package infrastructure

import (
	"context"

	appErrors "Caixa/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// RecordCounter conta os lançamentos de um usuário, usado pelo seed e pelo health.
type RecordCounter struct {
	DB *gorm.DB
}

type RecordCounts struct {
	Expenses int64 `json:"expenses"`
	Revenues int64 `json:"revenues"`
}

func (r *RecordCounter) count(ctx context.Context, table string, userID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table(table).Where("user_id = ?", userID.String()).Count(&count).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *RecordCounter) CountForUser(ctx context.Context, userID ulid.ULID) (RecordCounts, error) {
	expenses, err := r.count(ctx, "expenses", userID)
	if err != nil {
		return RecordCounts{}, err
	}
	revenues, err := r.count(ctx, "revenues", userID)
	if err != nil {
		return RecordCounts{}, err
	}
	return RecordCounts{Expenses: expenses, Revenues: revenues}, nil
}

// Ping verifica se o banco responde.
func (r *RecordCounter) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
