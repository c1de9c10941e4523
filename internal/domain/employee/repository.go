package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (Employee, error)
}
