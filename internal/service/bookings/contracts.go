package bookings

import (
	"context"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований (чтение)
type BookingRepository interface {
	GetDetailsForCompany(ctx context.Context, id, companyID string) (*domain.BookingDetails, error)
	ListByCompany(ctx context.Context, filter domain.CompanyBookingsFilter) ([]*domain.BookingDetails, int64, error)
	ListByOwner(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.BookingDetails, int64, error)
	GetStats(ctx context.Context, companyID string, period domain.StatsPeriod) (*domain.BookingStats, error)
}

// StatsCache кэш сводной статистики
type StatsCache interface {
	Get(ctx context.Context, companyID string, day time.Time) (*domain.BookingStats, error)
	Set(ctx context.Context, companyID string, day time.Time, stats *domain.BookingStats) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
