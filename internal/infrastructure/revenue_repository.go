package infrastructure

import (
	"context"
	"errors"
	"time"

	"Caixa/internal/domain/revenue"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/pkg"
	"Caixa/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type RevenueRepository struct {
	DB *gorm.DB
}

var _ revenue.Repository = (*RevenueRepository)(nil)

type revenueDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId      string    `gorm:"type:varchar(26);not null;index:idx_revenues_user_date,priority:1;column:user_id"`
	Description string    `gorm:"type:varchar(255);not null;column:description"`
	Amount      float64   `gorm:"type:decimal(15,2);not null;column:amount"`
	Category    string    `gorm:"type:varchar(20);not null;index;column:category"`
	Date        time.Time `gorm:"not null;index:idx_revenues_user_date,priority:2;column:date"`
	Notes       string    `gorm:"type:text;column:notes"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`
	UpdatedAt   time.Time `gorm:"not null;column:updated_at"`
}

func (revenueDB) TableName() string {
	return "revenues"
}

func toDomainRevenue(rdb *revenueDB) (*revenue.Revenue, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(rdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &revenue.Revenue{
		Id:          id,
		UserId:      uid,
		Description: rdb.Description,
		Amount:      rdb.Amount,
		Category:    revenue.Category(rdb.Category),
		Date:        rdb.Date.UTC(),
		Notes:       rdb.Notes,
		CreatedAt:   rdb.CreatedAt.UTC(),
		UpdatedAt:   rdb.UpdatedAt.UTC(),
	}, nil
}

func toDBRevenue(rev *revenue.Revenue) *revenueDB {
	return &revenueDB{
		Id:          rev.Id.String(),
		UserId:      rev.UserId.String(),
		Description: rev.Description,
		Amount:      rev.Amount,
		Category:    rev.Category.String(),
		Date:        rev.Date.UTC(),
		Notes:       rev.Notes,
		CreatedAt:   rev.CreatedAt,
		UpdatedAt:   rev.UpdatedAt,
	}
}

func (r *RevenueRepository) ForOwner(userID ulid.ULID) revenue.Store {
	return &revenueStore{db: r.DB, owner: userID}
}

// revenueStore filtra toda consulta por user_id; um id de outro dono se
// comporta como inexistente.
type revenueStore struct {
	db    *gorm.DB
	owner ulid.ULID
}

func (s *revenueStore) Owner() ulid.ULID {
	return s.owner
}

func (s *revenueStore) query(ctx context.Context) *query.Query[revenueDB] {
	return query.New[revenueDB](s.db, "revenues").
		Context(ctx).
		Where("user_id = ?", s.owner.String())
}

func (s *revenueStore) Create(ctx context.Context, rev *revenue.Revenue) error {
	rev.UserId = s.owner
	rdb := toDBRevenue(rev)
	if err := s.db.WithContext(ctx).Table("revenues").Create(rdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *revenueStore) Update(ctx context.Context, rev *revenue.Revenue) error {
	rdb := toDBRevenue(rev)
	result := s.query(ctx).
		Where("id = ?", rdb.Id).
		DB().
		Updates(map[string]interface{}{
			"description": rdb.Description,
			"amount":      rdb.Amount,
			"category":    rdb.Category,
			"date":        rdb.Date,
			"notes":       rdb.Notes,
			"updated_at":  rdb.UpdatedAt,
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrRevenueNotFound
	}
	return nil
}

func (s *revenueStore) Delete(ctx context.Context, id ulid.ULID) error {
	result := s.query(ctx).Where("id = ?", id.String()).DB().Delete(&revenueDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrRevenueNotFound
	}
	return nil
}

func (s *revenueStore) GetByID(ctx context.Context, id ulid.ULID) (*revenue.Revenue, error) {
	rev, err := query.ExecuteFirst(s.query(ctx).Where("id = ?", id.String()), toDomainRevenue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRevenueNotFound.WithError(err)
		}
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return rev, nil
}

func (s *revenueStore) List(ctx context.Context, filter revenue.Filter) ([]*revenue.Revenue, error) {
	q := s.query(ctx).
		WhereIf(filter.Category != "", "category = ?", filter.Category.String())
	if filter.HasPeriod() {
		from, to := pkg.MonthWindow(filter.Month, filter.Year)
		q = q.Between("date", from, to)
	}
	return s.find(q, "date DESC", "created_at DESC")
}

// ListBetween devolve na ordem de gravação; o relatório depende dela no desempate.
func (s *revenueStore) ListBetween(ctx context.Context, from, to time.Time) ([]*revenue.Revenue, error) {
	return s.find(s.query(ctx).Between("date", from.UTC(), to.UTC()), "created_at ASC", "id ASC")
}

func (s *revenueStore) find(q *query.Query[revenueDB], orders ...string) ([]*revenue.Revenue, error) {
	for _, order := range orders {
		q = q.Order(order)
	}
	items, err := query.ExecuteAll(q, toDomainRevenue)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}
