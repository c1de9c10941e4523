package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/audit"
	"github.com/peopleops-dev/hr-portal-go/internal/handler/http/response"
)

type AuditHandler interface {
	ListLoginAttempts(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	attempts audit.LoginAttemptRepository
}

func NewAuditHandler(attempts audit.LoginAttemptRepository) AuditHandler {
	return &auditHandlerImpl{attempts: attempts}
}

// ListLoginAttempts implements AuditHandler. Admin only, enforced by the
// router's RequireAdmin middleware.
func (h *auditHandlerImpl) ListLoginAttempts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	attempts, err := h.attempts.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("ListLoginAttempts repository error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]audit.AttemptResponse, 0, len(attempts))
	for _, attempt := range attempts {
		items = append(items, audit.AttemptResponse{
			Username:      attempt.Username,
			SourceAddress: attempt.SourceAddress,
			Success:       attempt.Success,
			FailureReason: attempt.FailureReason,
			AttemptedAt:   attempt.AttemptedAt.Format("2006-01-02 15:04:05"),
		})
	}

	response.Success(w, items)
}
