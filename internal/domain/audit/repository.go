package audit

import "context"

// Recorder is a write-only sink for login attempts. Callers swallow Record
// errors: auditing must never block or fail the primary operation.
type Recorder interface {
	Record(ctx context.Context, attempt LoginAttempt) error
}

// LoginAttemptRepository adds read access for the admin log view.
type LoginAttemptRepository interface {
	Recorder
	ListRecent(ctx context.Context, limit int) ([]LoginAttempt, error)
}
