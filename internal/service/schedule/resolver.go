package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// Resolver проверяет пересечение нового интервала с активными бронированиями сотрудника
// Состояния не хранит; внутри транзакции строки читаются с блокировкой (см. репозиторий)
type Resolver struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewResolver создает новый экземпляр Resolver
func NewResolver(bookingRepo BookingRepository, logger Logger) *Resolver {
	return &Resolver{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// HasConflict возвращает true, если интервал пересекается с бронированием сотрудника
// в статусе confirmed или in_progress на ту же дату; excludeBookingID не учитывается
func (r *Resolver) HasConflict(ctx context.Context, employeeID string, date time.Time, interval domain.Interval, excludeBookingID string) (bool, error) {
	existing, err := r.bookingRepo.GetActiveByEmployeeAndDate(ctx, employeeID, date, excludeBookingID)
	if err != nil {
		r.logger.Error("HasConflict: failed to load bookings of employee=%s date=%s: %v", employeeID, date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: HasConflict - load bookings: %w", ErrInternal, err)
	}

	conflict := domain.FindOverlap(interval, existing)
	if conflict == nil {
		return false, nil
	}

	r.logger.Info("HasConflict: employee=%s date=%s interval=[%d,%d) overlaps booking=%s at %s",
		employeeID, date.Format(domain.DateFormat), interval.Start, interval.End, conflict.ID, conflict.StartTime)

	return true, nil
}
