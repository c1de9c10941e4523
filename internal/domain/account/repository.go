package account

import (
	"context"
	"time"
)

type AccountRepository interface {
	// GetByUsername retrieves an account by exact, case-sensitive username,
	// joined with the linked employee's display name when one exists.
	GetByUsername(ctx context.Context, username string) (Account, error)

	GetByID(ctx context.Context, userID string) (Account, error)

	// UpdateLastLogin stamps the account's last successful login time.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
