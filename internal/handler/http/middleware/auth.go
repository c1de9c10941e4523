package middleware

import (
	"net/http"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-portal-go/internal/handler/http/response"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/session"
)

// RequireLogin denies requests without an authenticated session. The denial
// carries the login page as redirect target so page controllers can forward.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrNotAuthenticated)
			return
		}

		data := sess.Data()
		if !data.LoggedIn || data.UserID == "" {
			response.HandleError(w, auth.ErrNotAuthenticated)
			return
		}

		next.ServeHTTP(w, r)
	})
}
