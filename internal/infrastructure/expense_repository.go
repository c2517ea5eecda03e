package infrastructure

import (
	"context"
	"errors"
	"time"

	"Caixa/internal/domain/expense"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/pkg"
	"Caixa/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

var _ expense.Repository = (*ExpenseRepository)(nil)

type expenseDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId      string    `gorm:"type:varchar(26);not null;index:idx_expenses_user_date,priority:1;column:user_id"`
	Description string    `gorm:"type:varchar(255);not null;column:description"`
	Amount      float64   `gorm:"type:decimal(15,2);not null;column:amount"`
	Category    string    `gorm:"type:varchar(20);not null;index;column:category"`
	IsFixed     bool      `gorm:"not null;default:false;column:is_fixed"`
	Date        time.Time `gorm:"not null;index:idx_expenses_user_date,priority:2;column:date"`
	Notes       string    `gorm:"type:text;column:notes"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`
	UpdatedAt   time.Time `gorm:"not null;column:updated_at"`
}

func (expenseDB) TableName() string {
	return "expenses"
}

func toDomainExpense(edb *expenseDB) (*expense.Expense, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(edb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &expense.Expense{
		Id:          id,
		UserId:      uid,
		Description: edb.Description,
		Amount:      edb.Amount,
		Category:    expense.Category(edb.Category),
		IsFixed:     edb.IsFixed,
		Date:        edb.Date.UTC(),
		Notes:       edb.Notes,
		CreatedAt:   edb.CreatedAt.UTC(),
		UpdatedAt:   edb.UpdatedAt.UTC(),
	}, nil
}

func toDBExpense(e *expense.Expense) *expenseDB {
	return &expenseDB{
		Id:          e.Id.String(),
		UserId:      e.UserId.String(),
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category.String(),
		IsFixed:     e.IsFixed,
		Date:        e.Date.UTC(),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *ExpenseRepository) ForOwner(userID ulid.ULID) expense.Store {
	return &expenseStore{db: r.DB, owner: userID}
}

// expenseStore filtra toda consulta por user_id; um id de outro dono se
// comporta como inexistente.
type expenseStore struct {
	db    *gorm.DB
	owner ulid.ULID
}

func (s *expenseStore) Owner() ulid.ULID {
	return s.owner
}

func (s *expenseStore) query(ctx context.Context) *query.Query[expenseDB] {
	return query.New[expenseDB](s.db, "expenses").
		Context(ctx).
		Where("user_id = ?", s.owner.String())
}

func (s *expenseStore) Create(ctx context.Context, e *expense.Expense) error {
	e.UserId = s.owner
	edb := toDBExpense(e)
	if err := s.db.WithContext(ctx).Table("expenses").Create(edb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *expenseStore) Update(ctx context.Context, e *expense.Expense) error {
	edb := toDBExpense(e)
	result := s.query(ctx).
		Where("id = ?", edb.Id).
		DB().
		Updates(map[string]interface{}{
			"description": edb.Description,
			"amount":      edb.Amount,
			"category":    edb.Category,
			"is_fixed":    edb.IsFixed,
			"date":        edb.Date,
			"notes":       edb.Notes,
			"updated_at":  edb.UpdatedAt,
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrExpenseNotFound
	}
	return nil
}

func (s *expenseStore) Delete(ctx context.Context, id ulid.ULID) error {
	result := s.query(ctx).Where("id = ?", id.String()).DB().Delete(&expenseDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrExpenseNotFound
	}
	return nil
}

func (s *expenseStore) GetByID(ctx context.Context, id ulid.ULID) (*expense.Expense, error) {
	e, err := query.ExecuteFirst(s.query(ctx).Where("id = ?", id.String()), toDomainExpense)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrExpenseNotFound.WithError(err)
		}
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return e, nil
}

func (s *expenseStore) List(ctx context.Context, filter expense.Filter) ([]*expense.Expense, error) {
	q := s.query(ctx).
		WhereIf(filter.Category != "", "category = ?", filter.Category.String())
	if filter.HasPeriod() {
		from, to := pkg.MonthWindow(filter.Month, filter.Year)
		q = q.Between("date", from, to)
	}
	return s.find(q, "date DESC", "created_at DESC")
}

// ListBetween devolve na ordem de gravação; o relatório depende dela no desempate.
func (s *expenseStore) ListBetween(ctx context.Context, from, to time.Time) ([]*expense.Expense, error) {
	return s.find(s.query(ctx).Between("date", from.UTC(), to.UTC()), "created_at ASC", "id ASC")
}

func (s *expenseStore) find(q *query.Query[expenseDB], orders ...string) ([]*expense.Expense, error) {
	for _, order := range orders {
		q = q.Order(order)
	}
	items, err := query.ExecuteAll(q, toDomainExpense)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}
