package response

import (
	"errors"
	"net/http"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/account"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/employee"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmatched is a
// storage or programming fault: it has already been logged with full detail,
// only a generic message crosses the boundary.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrNotAuthenticated):
		Denied(w, http.StatusUnauthorized, "Please log in to continue", "/login")
	case errors.Is(err, account.ErrAdminPrivilegeRequired):
		Denied(w, http.StatusForbidden, "Admin privilege required", "/dashboard")
	case errors.Is(err, account.ErrHRManagerRequired):
		Denied(w, http.StatusForbidden, "HR manager privilege required", "/dashboard")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You are already clocked in for today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No active clock-in found")
	case errors.Is(err, attendance.ErrNoEmployeeProfile):
		BadRequest(w, "No employee profile linked to this account", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
