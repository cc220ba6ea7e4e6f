package change_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/catalog"
)

// UseCase смена статуса бронирования компанией
type UseCase struct {
	bookingRepo    BookingRepository
	employeeLocker EmployeeLocker
	resolver       ConflictResolver
	txManager      TransactionManager
	stats          StatsInvalidator
	metrics        Metrics
	logger         Logger
	now            func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	employeeLocker EmployeeLocker,
	resolver ConflictResolver,
	txManager TransactionManager,
	stats StatsInvalidator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		employeeLocker: employeeLocker,
		resolver:       resolver,
		txManager:      txManager,
		stats:          stats,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

// Execute переводит бронирование в новый статус по графу переходов
// Переход pending -> confirmed с назначенным сотрудником повторно проверяет расписание под блокировкой сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingDetails, error) {
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ChangeStatus: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ChangeStatus: company=%s, booking=%s, status=%s", req.CompanyID, req.BookingID, target)

	var (
		from   domain.BookingStatus
		result *domain.BookingDetails
	)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetForCompany(txCtx, req.BookingID, req.CompanyID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		from = booking.Status
		if err := booking.Transition(target, req.Notes, uc.now()); err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
			}
			return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}

		if !from.IsActive() && target.IsActive() && booking.HasEmployee() {
			if err := uc.checkSchedule(txCtx, booking); err != nil {
				return err
			}
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		result, err = uc.bookingRepo.GetDetailsForCompany(txCtx, booking.ID, booking.CompanyID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload booking: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, uc.classify(err, req)
	}

	if uc.metrics != nil {
		uc.metrics.IncStatusTransition(string(from), string(target))
	}
	if uc.stats != nil {
		if err := uc.stats.Invalidate(ctx, req.CompanyID); err != nil {
			uc.logger.Warn("ChangeStatus: failed to invalidate stats for company=%s: %v", req.CompanyID, err)
		}
	}

	uc.logger.Info("ChangeStatus: booking=%s moved %s -> %s", req.BookingID, from, target)
	return result, nil
}

// checkSchedule блокирует сотрудника и проверяет, что бронирование не пересекается с его активными
func (uc *UseCase) checkSchedule(ctx context.Context, booking *domain.Booking) error {
	employeeID := *booking.EmployeeID

	if _, err := uc.employeeLocker.GetEmployee(ctx, employeeID, booking.CompanyID); err != nil && !errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
		return fmt.Errorf("%w: failed to lock employee: %w", ErrInternal, err)
	}

	interval, err := booking.Interval()
	if err != nil {
		return fmt.Errorf("%w: booking=%s has invalid time: %v", ErrInternal, booking.ID, err)
	}

	conflict, err := uc.resolver.HasConflict(ctx, employeeID, booking.BookingDate, interval, booking.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to check schedule: %w", ErrInternal, err)
	}
	if conflict {
		return ErrScheduleConflict
	}

	return nil
}

// classify логирует ошибку и приводит её к ошибкам usecase
func (uc *UseCase) classify(err error, req *Request) error {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("ChangeStatus: booking=%s not found for company=%s", req.BookingID, req.CompanyID)
		return ErrBookingNotFound
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInvalidStatus):
		uc.logger.Warn("ChangeStatus: booking=%s: %v", req.BookingID, err)
		return err
	case errors.Is(err, ErrScheduleConflict):
		uc.logger.Warn("ChangeStatus: schedule conflict when confirming booking=%s", req.BookingID)
		return ErrScheduleConflict
	case errors.Is(err, ErrInternal):
		uc.logger.Error("ChangeStatus: %v", err)
		return err
	default:
		uc.logger.Error("ChangeStatus: transaction failed: %v", err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
