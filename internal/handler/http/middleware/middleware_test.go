package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peopleops-dev/hr-portal-go/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSession struct {
	data session.Data
}

func (s *stubSession) ID() string                      { return "sid" }
func (s *stubSession) Data() session.Data              { return s.data }
func (s *stubSession) SetData(data session.Data) error { s.data = data; return nil }
func (s *stubSession) RegenerateID() error             { return nil }
func (s *stubSession) Destroy() error                  { return nil }

func serve(t *testing.T, mw func(http.Handler) http.Handler, data *session.Data) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if data != nil {
		req = req.WithContext(session.NewContext(req.Context(), &stubSession{data: *data}))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		require.True(t, called)
	} else {
		require.False(t, called)
	}
	return rec
}

func redirectOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Redirect string `json:"redirect"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	return body.Error.Redirect
}

func loggedIn(role string) *session.Data {
	return &session.Data{UserID: "user-1", Username: "jdoe", Role: role, LoggedIn: true}
}

func TestRequireLogin_NoSession(t *testing.T) {
	rec := serve(t, RequireLogin, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", redirectOf(t, rec))
}

func TestRequireLogin_NotLoggedIn(t *testing.T) {
	rec := serve(t, RequireLogin, &session.Data{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", redirectOf(t, rec))
}

func TestRequireLogin_LoggedIn(t *testing.T) {
	rec := serve(t, RequireLogin, loggedIn("employee"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_DeniesEmployee(t *testing.T) {
	rec := serve(t, RequireAdmin, loggedIn("employee"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/dashboard", redirectOf(t, rec))
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	rec := serve(t, RequireAdmin, loggedIn("admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireHRManager_AllowsManagerAndAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(t, RequireHRManager, loggedIn("hr_manager")).Code)
	assert.Equal(t, http.StatusOK, serve(t, RequireHRManager, loggedIn("admin")).Code)
}

func TestRequireHRManager_DeniesEmployee(t *testing.T) {
	rec := serve(t, RequireHRManager, loggedIn("employee"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/dashboard", redirectOf(t, rec))
}
