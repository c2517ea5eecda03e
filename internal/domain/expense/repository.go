package expense

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Repository só entrega acesso aos dados através de ForOwner: não existe
// operação sobre despesas sem o dono.
type Repository interface {
	ForOwner(userID ulid.ULID) Store
}

// Store opera sempre sobre as despesas de um único usuário.
type Store interface {
	Owner() ulid.ULID
	Create(ctx context.Context, e *Expense) error
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Expense, error)
	List(ctx context.Context, filter Filter) ([]*Expense, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*Expense, error)
}
