package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// transitions граф допустимых переходов статусов
// completed и cancelled терминальные: переходов из них нет
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal returns true if no transition leaves this status
func (s BookingStatus) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// IsActive returns true if a booking in this status occupies the employee's time
func (s BookingStatus) IsActive() bool {
	return s == StatusConfirmed || s == StatusInProgress
}

// CanTransitionTo returns true if the edge s -> target exists in the graph
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Booking represents a pet-service appointment
type Booking struct {
	ID              string
	CompanyID       string // тенант
	PetOwnerID      string // клиент
	ServiceID       string
	PetID           string
	EmployeeID      *string // nil = сотрудник не назначен
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus
	Notes           string
	TotalAmount     decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает занимаемый бронированием интервал в минутах от начала суток
func (b *Booking) Interval() (Interval, error) {
	return NewInterval(b.StartTime, b.DurationMinutes)
}

// HasEmployee returns true if an employee is assigned
func (b *Booking) HasEmployee() bool {
	return b.EmployeeID != nil && *b.EmployeeID != ""
}

// Transition переводит бронирование в статус target
// При успехе обновляет статус, заметки (если переданы) и UpdatedAt
func (b *Booking) Transition(target BookingStatus, notes *string, now time.Time) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(target))
	}

	if !b.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, target)
	}

	b.Status = target
	if notes != nil {
		b.Notes = *notes
	}
	b.UpdatedAt = now

	return nil
}

// BookingDetails бронирование с данными связанных сущностей для отображения
type BookingDetails struct {
	Booking

	ServiceName  string
	ServicePrice decimal.Decimal

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	PetName string
	PetType string

	EmployeeName *string

	CompanyName    string
	CompanyPhone   string
	CompanyAddress string
}

// CompanyBookingsFilter фильтр для списка бронирований компании
type CompanyBookingsFilter struct {
	CompanyID string         // Обязательный параметр
	Status    *BookingStatus // Фильтр по статусу (опционально)
	Date      *time.Time     // Фильтр по дате (опционально)
	Page      Page
}

// OwnerBookingsFilter фильтр для списка бронирований владельца питомца
type OwnerBookingsFilter struct {
	PetOwnerID string
	Status     *BookingStatus
	Page       Page
}
