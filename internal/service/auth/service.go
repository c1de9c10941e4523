package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/account"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/audit"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/clock"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// placeholderName is shown when an account has no linked employee record.
const placeholderName = "Employee"

const (
	reasonUserNotFound    = "User not found"
	reasonInvalidPassword = "Invalid password"
)

type AuthServiceImpl struct {
	account.AccountRepository
	recorder audit.Recorder
	clk      clock.Clock
}

func NewAuthService(accountRepository account.AccountRepository, recorder audit.Recorder, clk clock.Clock) auth.AuthService {
	return &AuthServiceImpl{
		AccountRepository: accountRepository,
		recorder:          recorder,
		clk:               clk,
	}
}

// Login implements auth.AuthService. Unknown usernames and wrong passwords
// yield the same sentinel so the response never reveals which check failed.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, meta auth.LoginMeta) (auth.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	sess, err := session.FromContext(ctx)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to get session from context: %w", err)
	}

	acc, err := a.AccountRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			a.recordAttempt(ctx, req.Username, meta, false, reasonUserNotFound)
			return auth.SessionResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		a.recordAttempt(ctx, req.Username, meta, false, reasonInvalidPassword)
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	displayName := placeholderName
	if acc.EmployeeName != nil && *acc.EmployeeName != "" {
		displayName = *acc.EmployeeName
	}

	// Stamp last_login before touching the session so a storage failure
	// here cannot leave a populated session behind a failed login.
	if err := a.AccountRepository.UpdateLastLogin(ctx, acc.UserID, a.clk.Now()); err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to update last login: %w", err)
	}

	data := session.Data{
		UserID:      acc.UserID,
		EmployeeID:  acc.EmployeeID,
		Username:    acc.Username,
		Role:        string(acc.Role),
		DisplayName: displayName,
		LoggedIn:    true,
	}
	if err := sess.SetData(data); err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to populate session: %w", err)
	}
	// New identifier after privilege change, old pre-auth ID is discarded
	if err := sess.RegenerateID(); err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to regenerate session id: %w", err)
	}

	a.recordAttempt(ctx, req.Username, meta, true, "")

	return SessionResponseFromData(data), nil
}

// Logout implements auth.AuthService. Safe to call without a live session.
func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session from context: %w", err)
	}
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// CurrentSession implements auth.AuthService. A session naming an account
// that no longer exists is destroyed rather than honored.
func (a *AuthServiceImpl) CurrentSession(ctx context.Context) (auth.SessionResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to get session from context: %w", err)
	}

	data := sess.Data()
	if !data.LoggedIn || data.UserID == "" {
		return auth.SessionResponse{}, auth.ErrNotAuthenticated
	}

	if _, err := a.AccountRepository.GetByID(ctx, data.UserID); err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			if derr := sess.Destroy(); derr != nil {
				return auth.SessionResponse{}, fmt.Errorf("failed to destroy orphaned session: %w", derr)
			}
			return auth.SessionResponse{}, auth.ErrNotAuthenticated
		}
		return auth.SessionResponse{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return SessionResponseFromData(data), nil
}

// recordAttempt appends to the login audit log. Failures are logged and
// swallowed; auditing never fails the login itself.
func (a *AuthServiceImpl) recordAttempt(ctx context.Context, username string, meta auth.LoginMeta, success bool, reason string) {
	attempt := audit.LoginAttempt{
		Username:    username,
		Success:     success,
		AttemptedAt: a.clk.Now(),
	}
	if meta.SourceAddress != "" {
		attempt.SourceAddress = &meta.SourceAddress
	}
	if reason != "" {
		attempt.FailureReason = &reason
	}

	if err := a.recorder.Record(ctx, attempt); err != nil {
		slog.Warn("failed to record login attempt", "username", username, "error", err)
	}
}

// SessionResponseFromData maps session state to the renderer-facing view,
// deriving the policy flags from the role.
func SessionResponseFromData(data session.Data) auth.SessionResponse {
	role := account.Role(data.Role)
	return auth.SessionResponse{
		UserID:               data.UserID,
		EmployeeID:           data.EmployeeID,
		Username:             data.Username,
		Role:                 data.Role,
		DisplayName:          data.DisplayName,
		LoggedIn:             data.LoggedIn,
		CanEdit:              account.CanEdit(role),
		CanManageEmployees:   account.CanManageEmployees(role),
		CanManageLeaves:      account.CanManageLeaves(role),
		CanManageRecruitment: account.CanManageRecruitment(role),
		CanViewLogs:          account.CanViewLogs(role),
	}
}
