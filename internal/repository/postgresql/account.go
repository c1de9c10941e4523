package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/account"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/database"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

// GetByUsername implements account.AccountRepository. The username match is
// exact and case-sensitive.
func (r *accountRepository) GetByUsername(ctx context.Context, username string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.user_id, u.username, u.password_hash, u.role, u.employee_id,
			   u.last_login, u.created_at, u.updated_at,
			   CASE WHEN e.employee_id IS NULL THEN NULL
					ELSE TRIM(e.first_name || ' ' || e.last_name) END AS employee_name
		FROM user_account u
		LEFT JOIN employee e ON e.employee_id = u.employee_id
		WHERE u.username = $1
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, username).Scan(
		&acc.UserID, &acc.Username, &acc.PasswordHash, &acc.Role, &acc.EmployeeID,
		&acc.LastLogin, &acc.CreatedAt, &acc.UpdatedAt,
		&acc.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	return acc, nil
}

// GetByID implements account.AccountRepository.
func (r *accountRepository) GetByID(ctx context.Context, userID string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.user_id, u.username, u.password_hash, u.role, u.employee_id,
			   u.last_login, u.created_at, u.updated_at,
			   CASE WHEN e.employee_id IS NULL THEN NULL
					ELSE TRIM(e.first_name || ' ' || e.last_name) END AS employee_name
		FROM user_account u
		LEFT JOIN employee e ON e.employee_id = u.employee_id
		WHERE u.user_id = $1
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, userID).Scan(
		&acc.UserID, &acc.Username, &acc.PasswordHash, &acc.Role, &acc.EmployeeID,
		&acc.LastLogin, &acc.CreatedAt, &acc.UpdatedAt,
		&acc.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return acc, nil
}

// UpdateLastLogin implements account.AccountRepository.
func (r *accountRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE user_account
		SET last_login = $1, updated_at = NOW()
		WHERE user_id = $2
	`

	tag, err := q.Exec(ctx, query, at, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}
