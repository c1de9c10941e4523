package account

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"      // Full access, can edit everything
	RoleHRManager Role = "hr_manager" // Manages employees, leaves, recruitment
	RoleEmployee  Role = "employee"   // Regular employee
)

type Account struct {
	UserID       string
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeName *string
}
