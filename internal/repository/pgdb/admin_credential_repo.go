package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/e"
)

// AdminCredentialRepo stores the admin logins in PostgreSQL.
type AdminCredentialRepo struct {
	pool *pgxpool.Pool
}

func NewAdminCredentialRepo(pool *pgxpool.Pool) *AdminCredentialRepo {
	return &AdminCredentialRepo{
		pool: pool,
	}
}

// Upsert idempotently writes the credential for a username, replacing the
// password hash on repeated startups.
func (a *AdminCredentialRepo) Upsert(ctx context.Context, username, passwordHash string) error {
	query := `
		INSERT INTO admin_credentials (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username)
		DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			updated_at = NOW()
	`

	if _, err := a.pool.Exec(ctx, query, username, passwordHash); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (a *AdminCredentialRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminCredential, error) {
	query := `
		SELECT id, username, password_hash
		FROM admin_credentials
		WHERE username = $1
	`

	var cred domain.AdminCredential
	err := a.pool.QueryRow(ctx, query, username).Scan(&cred.ID, &cred.Username, &cred.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &cred, nil
}
