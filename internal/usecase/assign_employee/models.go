package assign_employee

// Request модель запроса на назначение сотрудника
type Request struct {
	CompanyID  string  // Компания, от имени которой выполняется запрос
	BookingID  string  // ID бронирования
	EmployeeID *string // nil или пустая строка снимает назначение
}

// Unassign возвращает true, если запрос снимает сотрудника с бронирования
func (r *Request) Unassign() bool {
	return r.EmployeeID == nil || *r.EmployeeID == ""
}

// Результаты назначения для метрик
const (
	resultAssigned   = "assigned"
	resultUnassigned = "unassigned"
	resultConflict   = "conflict"
	resultInvalid    = "invalid_employee"
	resultNotFound   = "not_found"
	resultError      = "error"
)
