package auth

import "errors"

var (
	// ErrInvalidCredentials is deliberately the same for unknown usernames
	// and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
