package domain

import "github.com/shopspring/decimal"

// Service услуга компании
type Service struct {
	ID              string
	CompanyID       string
	Name            string
	DurationMinutes *int // nil = длительность не указана
	Price           decimal.Decimal
	Active          bool
}

// EffectiveDuration возвращает длительность услуги или значение по умолчанию
func (s *Service) EffectiveDuration() int {
	if s.DurationMinutes == nil || *s.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return *s.DurationMinutes
}

// Employee сотрудник компании
type Employee struct {
	ID        string
	CompanyID string
	Name      string
	Active    bool
}

// CanServe returns true if the employee may be assigned to a booking of the company
func (e *Employee) CanServe(companyID string) bool {
	return e.Active && e.CompanyID == companyID
}

// Pet питомец владельца
type Pet struct {
	ID      string
	OwnerID string
	Name    string
	Type    string
}
