package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/employee"
	"github.com/peopleops-dev/hr-portal-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{employeeRepo: employeeRepo}
}

// Get implements EmployeeHandler. HR manager or admin only, enforced by the
// router's RequireHRManager middleware.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.employeeRepo.GetByID(r.Context(), employeeID)
	if err != nil {
		slog.Error("Get employee repository error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		FullName:   emp.FullName(),
		Position:   emp.Position,
	})
}
