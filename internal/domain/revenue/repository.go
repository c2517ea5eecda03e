package revenue

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	ForOwner(userID ulid.ULID) Store
}

type Store interface {
	Owner() ulid.ULID
	Create(ctx context.Context, r *Revenue) error
	Update(ctx context.Context, r *Revenue) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Revenue, error)
	List(ctx context.Context, filter Filter) ([]*Revenue, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*Revenue, error)
}
