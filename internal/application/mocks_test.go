package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/pkg/mailer"
)

type mockOwnedRepo[T any] struct{ mock.Mock }

func (m *mockOwnedRepo[T]) List(ctx context.Context, owner int64) ([]T, error) {
	args := m.MethodCalled("List", ctx, owner)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *mockOwnedRepo[T]) Create(ctx context.Context, owner int64, v *T) (int64, error) {
	args := m.MethodCalled("Create", ctx, owner, v)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOwnedRepo[T]) Update(ctx context.Context, owner, id int64, v *T) (int64, error) {
	args := m.MethodCalled("Update", ctx, owner, id, v)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOwnedRepo[T]) Delete(ctx context.Context, owner, id int64) error {
	return m.MethodCalled("Delete", ctx, owner, id).Error(0)
}

type mockFinanceRepo struct {
	mockOwnedRepo[entity.FinanceTransaction]
}

func (m *mockFinanceRepo) Summary(ctx context.Context, owner int64) (entity.FinanceSummary, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(entity.FinanceSummary), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 1
		u.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type mockTokens struct{ mock.Mock }

func (m *mockTokens) Issue(userID int64) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishEmail(ctx context.Context, job mailer.EmailJob) error {
	return m.Called(ctx, job).Error(0)
}
