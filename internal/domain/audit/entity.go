package audit

import "time"

// LoginAttempt captures one authentication attempt, successful or not.
// Rows are append-only.
type LoginAttempt struct {
	ID            string
	Username      string
	SourceAddress *string
	Success       bool
	FailureReason *string
	AttemptedAt   time.Time
}
