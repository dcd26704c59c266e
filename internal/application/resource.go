package application

import (
	"context"

	"github.com/oksasatya/records-api/internal/domain/repository"
)

// Input is a request payload that can be trimmed and turned into a row.
type Input[T any] interface {
	Normalize()
	// Build validates the payload and returns the row to write. Failures
	// are *validation.Errors.
	Build() (*T, error)
}

// Resource runs the scoped CRUD operations of one owned resource. The owner
// is always the authenticated identity passed in by the caller.
type Resource[T any, In Input[T]] struct {
	repo repository.OwnedRepository[T]
}

func NewResource[T any, In Input[T]](repo repository.OwnedRepository[T]) Resource[T, In] {
	return Resource[T, In]{repo: repo}
}

func (r Resource[T, In]) List(ctx context.Context, owner int64) ([]T, error) {
	return r.repo.List(ctx, owner)
}

// Create validates in before touching the database; invalid input never
// acquires a connection.
func (r Resource[T, In]) Create(ctx context.Context, owner int64, in In) (int64, error) {
	v, err := build[T](in)
	if err != nil {
		return 0, err
	}
	return r.repo.Create(ctx, owner, v)
}

func (r Resource[T, In]) Update(ctx context.Context, owner, id int64, in In) (int64, error) {
	v, err := build[T](in)
	if err != nil {
		return 0, err
	}
	return r.repo.Update(ctx, owner, id, v)
}

func (r Resource[T, In]) Delete(ctx context.Context, owner, id int64) error {
	return r.repo.Delete(ctx, owner, id)
}

func build[T any, In Input[T]](in In) (*T, error) {
	in.Normalize()
	return in.Build()
}
