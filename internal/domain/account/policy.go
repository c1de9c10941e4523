package account

// Access policy predicates. Pure functions of the role, no side effects.
// These gate UI affordances, and the HTTP middleware re-checks them before
// any mutating action: a hidden button is not a security boundary.

// CanEdit reports whether the role may edit portal content.
func CanEdit(role Role) bool {
	return role == RoleAdmin
}

// CanManageEmployees reports whether the role may manage employee records.
func CanManageEmployees(role Role) bool {
	return role == RoleAdmin || role == RoleHRManager
}

// CanManageLeaves reports whether the role may manage leave requests.
func CanManageLeaves(role Role) bool {
	return role == RoleAdmin || role == RoleHRManager
}

// CanManageRecruitment reports whether the role may manage recruitment.
func CanManageRecruitment(role Role) bool {
	return role == RoleAdmin || role == RoleHRManager
}

// CanViewLogs reports whether the role may read the login audit log.
func CanViewLogs(role Role) bool {
	return role == RoleAdmin
}
