package employee

type EmployeeResponse struct {
	EmployeeID string  `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	FullName   string  `json:"full_name"`
	Position   *string `json:"position,omitempty"`
}
