package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
)

const usersTable = "users"

type UserRepository struct {
	pool *Pool
}

func NewUserRepository(pool *Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	err := r.pool.WithTx(ctx, func(q Querier) error {
		return q.QueryRow(ctx, `
			INSERT INTO users (email, password_hash, name)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, u.Email, u.PasswordHash, u.Name).Scan(&u.ID, &u.CreatedAt)
	})
	return translate(usersTable, err)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	err := r.pool.WithConn(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	})
	if err != nil {
		return nil, translate(usersTable, err)
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
