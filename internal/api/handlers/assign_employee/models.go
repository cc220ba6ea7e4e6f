package assign_employee

// AssignEmployeeRequest тело запроса; employeeId = null снимает назначение
type AssignEmployeeRequest struct {
	EmployeeID *string `json:"employeeId"`
}
