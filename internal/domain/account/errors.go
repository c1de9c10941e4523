package account

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrHRManagerRequired      = errors.New("hr manager privilege required")
)
