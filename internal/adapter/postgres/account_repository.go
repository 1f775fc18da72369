package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"budget-tracker/internal/core/domain"
)

// uniqueViolation is the SQLSTATE raised for duplicate keys.
const uniqueViolation = "23505"

// AccountRepository implements port.AccountRepository using pgxpool.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// CreateAccount inserts an account. Duplicate handles or emails are reported
// as domain.ErrDuplicateAccount.
func (r *AccountRepository) CreateAccount(ctx context.Context, acc *domain.Account) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO accounts (handle, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`,
		acc.Handle, acc.Email, acc.PasswordHash,
	).Scan(&acc.ID, &acc.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicateAccount
	}
	return err
}

// GetAccountByHandle returns the account with the given handle.
func (r *AccountRepository) GetAccountByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	var acc domain.Account
	err := r.pool.QueryRow(ctx, `SELECT id, handle, email, password_hash, created_at FROM accounts WHERE handle = $1`, handle).
		Scan(&acc.ID, &acc.Handle, &acc.Email, &acc.PasswordHash, &acc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
