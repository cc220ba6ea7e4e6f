package schedule

import (
	"context"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// BookingRepository чтение занятости сотрудника
type BookingRepository interface {
	GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
