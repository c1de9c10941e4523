package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/account"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/audit"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/clock"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAccountRepo struct {
	accounts     map[string]account.Account
	lastLogins   map[string]time.Time
	lastLoginErr error
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (account.Account, error) {
	acc, ok := r.accounts[username]
	if !ok {
		return account.Account{}, account.ErrAccountNotFound
	}
	return acc, nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, userID string) (account.Account, error) {
	for _, acc := range r.accounts {
		if acc.UserID == userID {
			return acc, nil
		}
	}
	return account.Account{}, account.ErrAccountNotFound
}

func (r *fakeAccountRepo) UpdateLastLogin(_ context.Context, userID string, at time.Time) error {
	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	if r.lastLogins == nil {
		r.lastLogins = make(map[string]time.Time)
	}
	r.lastLogins[userID] = at
	return nil
}

type fakeRecorder struct {
	attempts []audit.LoginAttempt
	err      error
}

func (r *fakeRecorder) Record(_ context.Context, attempt audit.LoginAttempt) error {
	if r.err != nil {
		return r.err
	}
	r.attempts = append(r.attempts, attempt)
	return nil
}

type fakeSession struct {
	id          string
	data        session.Data
	regenerated int
}

func (s *fakeSession) ID() string         { return s.id }
func (s *fakeSession) Data() session.Data { return s.data }

func (s *fakeSession) SetData(data session.Data) error {
	if s.id == "" {
		s.id = uuid.NewString()
	}
	s.data = data
	return nil
}

func (s *fakeSession) RegenerateID() error {
	s.id = uuid.NewString()
	s.regenerated++
	return nil
}

func (s *fakeSession) Destroy() error {
	s.id = ""
	s.data = session.Data{}
	return nil
}

const testPassword = "password123"

func newTestRepo(t *testing.T, employeeName *string) (*fakeAccountRepo, account.Account) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	employeeID := "emp-1"
	acc := account.Account{
		UserID:       "user-1",
		Username:     "jdoe",
		PasswordHash: string(hash),
		Role:         account.RoleEmployee,
		EmployeeID:   &employeeID,
		EmployeeName: employeeName,
	}
	return &fakeAccountRepo{accounts: map[string]account.Account{acc.Username: acc}}, acc
}

func testCtx(sess session.Session) context.Context {
	return session.NewContext(context.Background(), sess)
}

func fixedClock() clock.Clock {
	return clock.Fixed(time.Date(2025, 3, 10, 9, 0, 0, 0, clock.Location))
}

func TestLogin_Success(t *testing.T) {
	name := "Alice Reyes"
	repo, acc := newTestRepo(t, &name)
	recorder := &fakeRecorder{}
	svc := NewAuthService(repo, recorder, fixedClock())
	sess := &fakeSession{}

	resp, err := svc.Login(testCtx(sess), auth.LoginRequest{Username: "jdoe", Password: testPassword}, auth.LoginMeta{SourceAddress: "10.0.0.5"})

	require.NoError(t, err)
	assert.True(t, resp.LoggedIn)
	assert.Equal(t, "jdoe", resp.Username)
	assert.Equal(t, "Alice Reyes", resp.DisplayName)
	assert.True(t, sess.data.LoggedIn)
	assert.Equal(t, acc.UserID, sess.data.UserID)

	// New identifier issued after the session was populated
	assert.Equal(t, 1, sess.regenerated)

	// last_login stamped with civil time
	assert.Equal(t, fixedClock().Now(), repo.lastLogins[acc.UserID])

	require.Len(t, recorder.attempts, 1)
	attempt := recorder.attempts[0]
	assert.True(t, attempt.Success)
	assert.Nil(t, attempt.FailureReason)
	require.NotNil(t, attempt.SourceAddress)
	assert.Equal(t, "10.0.0.5", *attempt.SourceAddress)
}

func TestLogin_PlaceholderDisplayName(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	svc := NewAuthService(repo, &fakeRecorder{}, fixedClock())
	sess := &fakeSession{}

	resp, err := svc.Login(testCtx(sess), auth.LoginRequest{Username: "jdoe", Password: testPassword}, auth.LoginMeta{})

	require.NoError(t, err)
	assert.Equal(t, "Employee", resp.DisplayName)
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller; only the audit log knows which check failed.
func TestLogin_NoEnumerationSignal(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	recorder := &fakeRecorder{}
	svc := NewAuthService(repo, recorder, fixedClock())

	_, unknownErr := svc.Login(testCtx(&fakeSession{}), auth.LoginRequest{Username: "ghost", Password: testPassword}, auth.LoginMeta{})
	_, wrongPassErr := svc.Login(testCtx(&fakeSession{}), auth.LoginRequest{Username: "jdoe", Password: "wrong-password"}, auth.LoginMeta{})

	assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, auth.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())

	require.Len(t, recorder.attempts, 2)
	require.NotNil(t, recorder.attempts[0].FailureReason)
	require.NotNil(t, recorder.attempts[1].FailureReason)
	assert.Equal(t, "User not found", *recorder.attempts[0].FailureReason)
	assert.Equal(t, "Invalid password", *recorder.attempts[1].FailureReason)
}

func TestLogin_FailedAttemptLeavesSessionEmpty(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	svc := NewAuthService(repo, &fakeRecorder{}, fixedClock())
	sess := &fakeSession{}

	_, err := svc.Login(testCtx(sess), auth.LoginRequest{Username: "jdoe", Password: "wrong-password"}, auth.LoginMeta{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.False(t, sess.data.LoggedIn)
	assert.Zero(t, sess.regenerated)
}

// Audit write failures are swallowed, never surfaced to the login caller.
func TestLogin_RecorderFailureDoesNotBlockLogin(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	recorder := &fakeRecorder{err: assert.AnError}
	svc := NewAuthService(repo, recorder, fixedClock())

	resp, err := svc.Login(testCtx(&fakeSession{}), auth.LoginRequest{Username: "jdoe", Password: testPassword}, auth.LoginMeta{})

	require.NoError(t, err)
	assert.True(t, resp.LoggedIn)
}

// A login that fails on the last_login stamp must not leave the caller with a
// live session behind the error response.
func TestLogin_LastLoginFailureLeavesSessionEmpty(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	repo.lastLoginErr = assert.AnError
	recorder := &fakeRecorder{}
	svc := NewAuthService(repo, recorder, fixedClock())
	sess := &fakeSession{}

	_, err := svc.Login(testCtx(sess), auth.LoginRequest{Username: "jdoe", Password: testPassword}, auth.LoginMeta{})

	require.Error(t, err)
	assert.False(t, sess.data.LoggedIn)
	assert.Empty(t, sess.id)
	assert.Zero(t, sess.regenerated)
	assert.Empty(t, recorder.attempts)
}

func TestLogin_ValidationFailure(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	svc := NewAuthService(repo, &fakeRecorder{}, fixedClock())

	_, err := svc.Login(testCtx(&fakeSession{}), auth.LoginRequest{}, auth.LoginMeta{})
	assert.Error(t, err)
}

func TestLogout_ClearsSession(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	svc := NewAuthService(repo, &fakeRecorder{}, fixedClock())
	sess := &fakeSession{}
	ctx := testCtx(sess)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: testPassword}, auth.LoginMeta{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)

	// Idempotent
	require.NoError(t, svc.Logout(ctx))
}

func TestCurrentSession_PolicyFlags(t *testing.T) {
	name := "Ana Cruz"
	repo, _ := newTestRepo(t, &name)
	acc := repo.accounts["jdoe"]
	acc.Role = account.RoleHRManager
	repo.accounts["jdoe"] = acc

	svc := NewAuthService(repo, &fakeRecorder{}, fixedClock())
	sess := &fakeSession{}
	ctx := testCtx(sess)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: testPassword}, auth.LoginMeta{})
	require.NoError(t, err)

	resp, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, resp.CanEdit)
	assert.True(t, resp.CanManageEmployees)
	assert.True(t, resp.CanManageLeaves)
	assert.True(t, resp.CanManageRecruitment)
	assert.False(t, resp.CanViewLogs)
}

// A session whose account was deleted after login is destroyed on the next
// session read instead of being honored.
func TestCurrentSession_DeletedAccountDestroysSession(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	svc := NewAuthService(repo, &fakeRecorder{}, fixedClock())
	sess := &fakeSession{}
	ctx := testCtx(sess)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: testPassword}, auth.LoginMeta{})
	require.NoError(t, err)

	delete(repo.accounts, "jdoe")

	_, err = svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	assert.False(t, sess.data.LoggedIn)
	assert.Empty(t, sess.id)
}

func TestCurrentSession_Unauthenticated(t *testing.T) {
	repo, _ := newTestRepo(t, nil)
	svc := NewAuthService(repo, &fakeRecorder{}, fixedClock())

	_, err := svc.CurrentSession(testCtx(&fakeSession{}))
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}
