package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
)

type ownedRow[T any] struct {
	owner int64
	v     T
}

// memStore is an in-memory OwnedRepository with the same ownership rules
// as the SQL store.
type memStore[T any] struct {
	mu    sync.Mutex
	next  int64
	rows  map[int64]ownedRow[T]
	setID func(*T, int64)
	calls int
}

func newMemStore[T any](setID func(*T, int64)) *memStore[T] {
	return &memStore[T]{rows: map[int64]ownedRow[T]{}, setID: setID}
}

func (s *memStore[T]) List(ctx context.Context, owner int64) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	ids := make([]int64, 0, len(s.rows))
	for id, r := range s.rows {
		if r.owner == owner {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.rows[id].v)
	}
	return out, nil
}

func (s *memStore[T]) Create(ctx context.Context, owner int64, v *T) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.next++
	row := *v
	s.setID(&row, s.next)
	s.rows[s.next] = ownedRow[T]{owner: owner, v: row}
	return s.next, nil
}

func (s *memStore[T]) Update(ctx context.Context, owner, id int64, v *T) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	r, ok := s.rows[id]
	if !ok || r.owner != owner {
		return 0, repository.ErrNotFound
	}
	row := *v
	s.setID(&row, id)
	s.rows[id] = ownedRow[T]{owner: owner, v: row}
	return id, nil
}

func (s *memStore[T]) Delete(ctx context.Context, owner, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	r, ok := s.rows[id]
	if !ok || r.owner != owner {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *memStore[T]) get(id int64) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	return r.v, ok
}

func (s *memStore[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type memFinance struct {
	*memStore[entity.FinanceTransaction]
}

func (m memFinance) Summary(ctx context.Context, owner int64) (entity.FinanceSummary, error) {
	rows, _ := m.List(ctx, owner)
	var s entity.FinanceSummary
	for _, t := range rows {
		s.TotalTransactions++
		switch t.Type {
		case entity.TransactionIncome:
			s.Income += t.Amount
			s.Balance += t.Amount
		case entity.TransactionExpense:
			s.Expense += t.Amount
			s.Balance -= t.Amount
		default:
			s.Balance -= t.Amount
		}
	}
	return s, nil
}

type memUsers struct {
	mu    sync.Mutex
	next  int64
	byID  map[int64]entity.User
	calls int
}

func newMemUsers() *memUsers { return &memUsers{byID: map[int64]entity.User{}} }

func (m *memUsers) Create(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, existing := range m.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return &repository.ConflictError{Table: "users", Constraint: "users_email_key", Field: "email"}
		}
	}
	m.next++
	u.ID = m.next
	u.CreatedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type stubPinger struct {
	val string
	err error
}

func (p stubPinger) Ping(ctx context.Context) (string, error) { return p.val, p.err }
