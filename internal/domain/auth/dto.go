package auth

import "github.com/peopleops-dev/hr-portal-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// Username
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if len(r.Username) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not exceed 50 characters",
		})
	}
	if !validator.IsEmpty(r.Username) && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username may only contain letters, numbers, dots, underscores, and hyphens",
		})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginMeta carries best-effort request metadata for the audit log.
type LoginMeta struct {
	SourceAddress string
}

// SessionResponse is the session view handed to page renderers. The Can*
// flags mirror the account policy predicates so templates can gate
// affordances without re-deriving roles.
type SessionResponse struct {
	UserID               string  `json:"user_id"`
	EmployeeID           *string `json:"employee_id,omitempty"`
	Username             string  `json:"username"`
	Role                 string  `json:"role"`
	DisplayName          string  `json:"display_name"`
	LoggedIn             bool    `json:"logged_in"`
	CanEdit              bool    `json:"can_edit"`
	CanManageEmployees   bool    `json:"can_manage_employees"`
	CanManageLeaves      bool    `json:"can_manage_leaves"`
	CanManageRecruitment bool    `json:"can_manage_recruitment"`
	CanViewLogs          bool    `json:"can_view_logs"`
}
