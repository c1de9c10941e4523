package employee

import "time"

type Employee struct {
	EmployeeID string
	FirstName  string
	LastName   string
	Position   *string
	CreatedAt  time.Time
}

// FullName returns the display name for the employee.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
