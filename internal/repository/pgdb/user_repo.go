package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/repository/pgdb/converter"
	"github.com/my-shop/go-backend/pkg/e"
)

// UserRepo implements the customer repository over PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	query := `
		INSERT INTO users (full_name, username, password_hash, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := u.pool.QueryRow(ctx, query,
		user.FullName, user.Username, user.PasswordHash, user.Phone,
	).Scan(&id)
	if err != nil {
		if postgresDuplicate(err) {
			return 0, e.Wrap(whereami.WhereAmI(), e.ErrUsernameTaken)
		}

		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

func (u *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, full_name, username, password_hash, phone, created_at
		FROM users
		WHERE username = $1
	`

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query, username).Scan(
		&model.ID, &model.FullName, &model.Username,
		&model.PasswordHash, &model.Phone, &model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, full_name, username, password_hash, phone, created_at
		FROM users
		ORDER BY id DESC
	`

	rows, err := u.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.User, 0)
	for rows.Next() {
		var model converter.UserModel
		err := rows.Scan(
			&model.ID, &model.FullName, &model.Username,
			&model.PasswordHash, &model.Phone, &model.CreatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *u.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (u *UserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := u.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
