package auth

import "context"

// AuthService owns session lifecycle: it is the only writer of session state.
type AuthService interface {
	// Login validates credentials, populates the session, regenerates its
	// identifier, stamps last_login, and records the attempt.
	Login(ctx context.Context, req LoginRequest, meta LoginMeta) (SessionResponse, error)

	// Logout destroys the session. Idempotent.
	Logout(ctx context.Context) error

	// CurrentSession returns the logged-in identity, or ErrNotAuthenticated.
	CurrentSession(ctx context.Context) (SessionResponse, error)
}
