package middleware

import (
	"net/http"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/account"
	"github.com/peopleops-dev/hr-portal-go/internal/handler/http/response"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/session"
)

// RequireAdmin requires the admin role. Denials redirect to the dashboard
// rather than the login page: the caller is authenticated, just not allowed.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, account.ErrAdminPrivilegeRequired)
			return
		}

		role := account.Role(sess.Data().Role)
		if role != account.RoleAdmin {
			response.HandleError(w, account.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireHRManager requires the HR manager or admin role.
func RequireHRManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, account.ErrHRManagerRequired)
			return
		}

		role := account.Role(sess.Data().Role)
		if role != account.RoleHRManager && role != account.RoleAdmin {
			response.HandleError(w, account.ErrHRManagerRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
