package postgresql

import (
	"context"
	"fmt"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/audit"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/database"
)

type loginAttemptRepository struct {
	db *database.DB
}

func NewLoginAttemptRepository(db *database.DB) audit.LoginAttemptRepository {
	return &loginAttemptRepository{db: db}
}

// Record implements audit.Recorder. Append-only.
func (r *loginAttemptRepository) Record(ctx context.Context, attempt audit.LoginAttempt) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO login_attempts (username, source_address, success, failure_reason, attempted_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query,
		attempt.Username,
		attempt.SourceAddress,
		attempt.Success,
		attempt.FailureReason,
		attempt.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}

	return nil
}

const (
	defaultAttemptLimit = 100
	maxAttemptLimit     = 500
)

// clampAttemptLimit applies the default and ceiling for audit listing.
func clampAttemptLimit(limit int) int {
	if limit <= 0 {
		return defaultAttemptLimit
	}
	if limit > maxAttemptLimit {
		return maxAttemptLimit
	}
	return limit
}

// ListRecent implements audit.LoginAttemptRepository.
func (r *loginAttemptRepository) ListRecent(ctx context.Context, limit int) ([]audit.LoginAttempt, error) {
	q := GetQuerier(ctx, r.db)

	limit = clampAttemptLimit(limit)

	query := `
		SELECT id, username, source_address, success, failure_reason, attempted_at
		FROM login_attempts
		ORDER BY attempted_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list login attempts: %w", err)
	}
	defer rows.Close()

	var attempts []audit.LoginAttempt
	for rows.Next() {
		var attempt audit.LoginAttempt
		if err := rows.Scan(
			&attempt.ID, &attempt.Username, &attempt.SourceAddress,
			&attempt.Success, &attempt.FailureReason, &attempt.AttemptedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan login attempt row: %w", err)
		}
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate login attempt rows: %w", err)
	}

	return attempts, nil
}
