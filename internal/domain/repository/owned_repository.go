package repository

import (
	"context"

	"github.com/oksasatya/records-api/internal/domain/entity"
)

// OwnedRepository is the CRUD contract shared by every per-user resource.
// owner is the caller's identity; rows of other owners behave as missing.
type OwnedRepository[T any] interface {
	List(ctx context.Context, owner int64) ([]T, error)
	Create(ctx context.Context, owner int64, v *T) (int64, error)
	Update(ctx context.Context, owner, id int64, v *T) (int64, error)
	Delete(ctx context.Context, owner, id int64) error
}

type EventRepository interface {
	OwnedRepository[entity.CalendarEvent]
}

type FinanceRepository interface {
	OwnedRepository[entity.FinanceTransaction]
	Summary(ctx context.Context, owner int64) (entity.FinanceSummary, error)
}
