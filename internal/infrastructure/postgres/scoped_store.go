package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/records-api/internal/domain/repository"
)

// Schema describes a table whose rows belong to one user through user_id.
type Schema[T any] struct {
	Table string
	// Columns are written by Create and Update, in the order Values returns them.
	Columns []string
	// ReadOnly columns are selected after id, user_id and Columns.
	ReadOnly []string
	OrderBy  string
	// Touch sets updated_at = now() on every update.
	Touch  bool
	Values func(v *T) []any
	// Scan reads id, user_id, Columns then ReadOnly.
	Scan func(row pgx.Row) (T, error)
}

// ScopedStore implements repository.OwnedRepository for any Schema. Every
// statement carries the owner predicate so the database enforces ownership
// at the moment of the read or write.
type ScopedStore[T any] struct {
	pool   *Pool
	schema Schema[T]

	listSQL   string
	insertSQL string
	updateSQL string
	deleteSQL string
}

func NewScopedStore[T any](pool *Pool, s Schema[T]) *ScopedStore[T] {
	selected := append([]string{"id", "user_id"}, s.Columns...)
	selected = append(selected, s.ReadOnly...)

	placeholders := make([]string, 0, len(s.Columns)+1)
	sets := make([]string, 0, len(s.Columns)+1)
	placeholders = append(placeholders, "$1")
	for i, c := range s.Columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+1))
	}
	if s.Touch {
		sets = append(sets, "updated_at = now()")
	}
	n := len(s.Columns)

	return &ScopedStore[T]{
		pool:   pool,
		schema: s,
		listSQL: fmt.Sprintf("SELECT %s FROM %s WHERE user_id = $1 ORDER BY %s",
			strings.Join(selected, ", "), s.Table, s.OrderBy),
		insertSQL: fmt.Sprintf("INSERT INTO %s (user_id, %s) VALUES (%s) RETURNING id",
			s.Table, strings.Join(s.Columns, ", "), strings.Join(placeholders, ", ")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND user_id = $%d RETURNING id",
			s.Table, strings.Join(sets, ", "), n+1, n+2),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2", s.Table),
	}
}

// List returns every row of owner. It is a single read, no transaction.
func (s *ScopedStore[T]) List(ctx context.Context, owner int64) ([]T, error) {
	var out []T
	err := s.pool.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, s.listSQL, owner)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
			return s.schema.Scan(row)
		})
		return err
	})
	if err != nil {
		return nil, translate(s.schema.Table, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create inserts v for owner and returns the id generated by the same statement.
func (s *ScopedStore[T]) Create(ctx context.Context, owner int64, v *T) (int64, error) {
	var id int64
	err := s.pool.WithTx(ctx, func(q Querier) error {
		args := append([]any{owner}, s.schema.Values(v)...)
		return q.QueryRow(ctx, s.insertSQL, args...).Scan(&id)
	})
	if err != nil {
		return 0, translate(s.schema.Table, err)
	}
	return id, nil
}

// Update overwrites row id when it belongs to owner. Missing and foreign
// rows both yield repository.ErrNotFound and the transaction rolls back.
func (s *ScopedStore[T]) Update(ctx context.Context, owner, id int64, v *T) (int64, error) {
	var updated int64
	err := s.pool.WithTx(ctx, func(q Querier) error {
		args := append(s.schema.Values(v), id, owner)
		err := q.QueryRow(ctx, s.updateSQL, args...).Scan(&updated)
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	})
	if err != nil {
		return 0, translate(s.schema.Table, err)
	}
	return updated, nil
}

// Delete removes row id when it belongs to owner.
func (s *ScopedStore[T]) Delete(ctx context.Context, owner, id int64) error {
	err := s.pool.WithTx(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, s.deleteSQL, id, owner)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	return translate(s.schema.Table, err)
}
