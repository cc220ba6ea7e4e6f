package change_status

import (
	"context"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetForCompany(ctx context.Context, id, companyID string) (*domain.Booking, error)
	GetDetailsForCompany(ctx context.Context, id, companyID string) (*domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, booking *domain.Booking) error
}

// EmployeeLocker блокирует строку сотрудника внутри транзакции
type EmployeeLocker interface {
	GetEmployee(ctx context.Context, id, companyID string) (*domain.Employee, error)
}

// ConflictResolver проверка пересечения с расписанием сотрудника
type ConflictResolver interface {
	HasConflict(ctx context.Context, employeeID string, date time.Time, interval domain.Interval, excludeBookingID string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsInvalidator сбрасывает кэш статистики компании
type StatsInvalidator interface {
	Invalidate(ctx context.Context, companyID string) error
}

// Metrics счётчик переходов статусов
type Metrics interface {
	IncStatusTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
