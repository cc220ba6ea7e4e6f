package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetDetailsForCompany(ctx context.Context, id, companyID string) (*domain.BookingDetails, error)
}

// CatalogRepository интерфейс репозитория услуг и питомцев
type CatalogRepository interface {
	GetService(ctx context.Context, id, companyID string) (*domain.Service, error)
	GetPet(ctx context.Context, id, ownerID string) (*domain.Pet, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsInvalidator сбрасывает кэш статистики компании
type StatsInvalidator interface {
	Invalidate(ctx context.Context, companyID string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генерирует идентификаторы бронирований
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
