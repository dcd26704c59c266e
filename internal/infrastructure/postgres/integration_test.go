package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
)

// newIntegrationPool connects to TEST_DATABASE_URL and applies db/schema.sql.
// The test is skipped when the variable is unset.
func newIntegrationPool(t *testing.T) *Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, Options{
		DSN:            dsn,
		MinConns:       1,
		MaxConns:       5,
		AcquireTimeout: 5 * time.Second,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ddl, err := os.ReadFile("../../../db/schema.sql")
	require.NoError(t, err)
	_, err = pool.raw.Exec(ctx, string(ddl))
	require.NoError(t, err)
	return pool
}

func newIntegrationUser(t *testing.T, pool *Pool) int64 {
	t.Helper()
	u := &entity.User{
		Email:        fmt.Sprintf("it-%s@example.com", uuid.NewString()),
		Name:         "Integration",
		PasswordHash: "x",
	}
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), u))
	return u.ID
}

func TestIntegration_CalendarLifecycle(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	repo := NewCalendarRepository(pool)
	owner := newIntegrationUser(t, pool)
	stranger := newIntegrationUser(t, pool)

	ev := sampleEvent()
	id, err := repo.Create(ctx, owner, &ev)
	require.NoError(t, err)

	list, err := repo.List(ctx, owner)
	require.NoError(t, err)
	matches := 0
	for _, got := range list {
		if got.ID == id {
			matches++
			assert.Equal(t, ev.Title, got.Title)
			assert.True(t, ev.StartAt.Equal(got.StartAt))
			assert.True(t, ev.EndAt.Equal(got.EndAt))
		}
	}
	assert.Equal(t, 1, matches)

	changed := ev
	changed.Title = "hijacked"
	_, err = repo.Update(ctx, stranger, id, &changed)
	require.ErrorIs(t, err, repository.ErrNotFound)

	list, err = repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ev.Title, list[0].Title)

	strangers, err := repo.List(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, strangers)

	require.NoError(t, repo.Delete(ctx, owner, id))
	require.ErrorIs(t, repo.Delete(ctx, owner, id), repository.ErrNotFound)
}

func TestIntegration_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewCalendarRepository(pool)
	owner := newIntegrationUser(t, pool)

	const workers = 20
	var (
		mu  sync.Mutex
		ids = map[int64]bool{}
		wg  sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev := sampleEvent()
			id, err := repo.Create(context.Background(), owner, &ev)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			ids[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, ids, workers)
}

func TestIntegration_FinanceSummary(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	repo := NewFinanceRepository(pool)
	owner := newIntegrationUser(t, pool)

	empty, err := repo.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.FinanceSummary{}, empty)

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, tx := range []entity.FinanceTransaction{
		{Amount: 100, Type: entity.TransactionIncome, Category: "salary", TransactionDate: day},
		{Amount: 30, Type: entity.TransactionExpense, Category: "food", TransactionDate: day},
	} {
		_, err := repo.Create(ctx, owner, &tx)
		require.NoError(t, err)
	}

	got, err := repo.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.FinanceSummary{TotalTransactions: 2, Income: 100, Expense: 30, Balance: 70}, got)
}

func TestIntegration_DuplicateEmailIsConflict(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewUserRepository(pool)
	email := fmt.Sprintf("dup-%s@example.com", uuid.NewString())

	require.NoError(t, repo.Create(context.Background(), &entity.User{Email: email, PasswordHash: "x"}))
	err := repo.Create(context.Background(), &entity.User{Email: email, PasswordHash: "x"})
	var conflict *repository.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)
}
