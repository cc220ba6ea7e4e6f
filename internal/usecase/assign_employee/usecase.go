package assign_employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/catalog"
)

// UseCase назначение сотрудника на бронирование
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	resolver    ConflictResolver
	txManager   TransactionManager
	stats       StatsInvalidator
	metrics     Metrics
	logger      Logger
	now         func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	resolver ConflictResolver,
	txManager TransactionManager,
	stats StatsInvalidator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		resolver:    resolver,
		txManager:   txManager,
		stats:       stats,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Execute назначает сотрудника на бронирование или снимает назначение
// Проверка конфликтов и запись выполняются в одной сериализуемой транзакции:
// строки бронирования и сотрудника блокируются, при 40001/40P01 транзакция повторяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingDetails, error) {
	if req.CompanyID == "" || req.BookingID == "" {
		return nil, fmt.Errorf("%w: companyID and bookingID are required", ErrInvalidInput)
	}

	uc.logger.Info("AssignEmployee: company=%s, booking=%s, employee=%v", req.CompanyID, req.BookingID, req.EmployeeID)

	var result *domain.BookingDetails
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем бронирование
		booking, err := uc.bookingRepo.GetForCompany(txCtx, req.BookingID, req.CompanyID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if req.Unassign() {
			// 2. Снятие назначения без проверки конфликтов
			booking.EmployeeID = nil
		} else {
			if err := uc.assign(txCtx, booking, *req.EmployeeID); err != nil {
				return err
			}
		}

		booking.UpdatedAt = uc.now()

		// 6. Сохраняем назначение
		if err := uc.bookingRepo.UpdateAssignment(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update assignment: %w", ErrInternal, err)
		}

		result, err = uc.bookingRepo.GetDetailsForCompany(txCtx, booking.ID, booking.CompanyID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload booking: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.observe(err, req)
		return nil, uc.classify(err, req)
	}

	uc.observe(nil, req)
	uc.invalidateStats(ctx, req.CompanyID)

	if req.Unassign() {
		uc.logger.Info("AssignEmployee: employee unassigned from booking=%s", req.BookingID)
	} else {
		uc.logger.Info("AssignEmployee: employee=%s assigned to booking=%s", *req.EmployeeID, req.BookingID)
	}

	return result, nil
}

// assign проверяет сотрудника и расписание, обновляет длительность и сотрудника у booking
func (uc *UseCase) assign(ctx context.Context, booking *domain.Booking, employeeID string) error {
	// 3. Длительность берётся из услуги на момент назначения
	duration := domain.DefaultDurationMinutes
	service, err := uc.catalogRepo.GetService(ctx, booking.ServiceID, booking.CompanyID)
	switch {
	case err == nil:
		duration = service.EffectiveDuration()
	case errors.Is(err, catalogRepo.ErrServiceNotFound):
		uc.logger.Warn("AssignEmployee: service=%s of booking=%s not found, using default duration", booking.ServiceID, booking.ID)
	default:
		return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	// 4. Блокируем сотрудника: параллельные назначения на него ждут здесь
	employee, err := uc.catalogRepo.GetEmployee(ctx, employeeID, booking.CompanyID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			return ErrInvalidEmployee
		}
		return fmt.Errorf("%w: failed to get employee: %w", ErrInternal, err)
	}
	if !employee.CanServe(booking.CompanyID) {
		return ErrInvalidEmployee
	}

	// 5. Проверяем конфликты, исключая само бронирование
	interval, err := domain.NewInterval(booking.StartTime, duration)
	if err != nil {
		return fmt.Errorf("%w: booking=%s has invalid time: %v", ErrInternal, booking.ID, err)
	}

	conflict, err := uc.resolver.HasConflict(ctx, employee.ID, booking.BookingDate, interval, booking.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to check schedule: %w", ErrInternal, err)
	}
	if conflict {
		return ErrScheduleConflict
	}

	booking.EmployeeID = &employee.ID
	booking.DurationMinutes = duration

	return nil
}

// classify логирует ошибку и приводит её к ошибкам usecase
func (uc *UseCase) classify(err error, req *Request) error {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("AssignEmployee: booking=%s not found for company=%s", req.BookingID, req.CompanyID)
		return ErrBookingNotFound
	case errors.Is(err, ErrInvalidEmployee):
		uc.logger.Warn("AssignEmployee: invalid employee=%v for company=%s", req.EmployeeID, req.CompanyID)
		return ErrInvalidEmployee
	case errors.Is(err, ErrScheduleConflict):
		uc.logger.Warn("AssignEmployee: schedule conflict for employee=%v booking=%s", req.EmployeeID, req.BookingID)
		return ErrScheduleConflict
	case errors.Is(err, ErrInternal):
		uc.logger.Error("AssignEmployee: %v", err)
		return err
	default:
		uc.logger.Error("AssignEmployee: transaction failed: %v", err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

func (uc *UseCase) observe(err error, req *Request) {
	if uc.metrics == nil {
		return
	}

	result := resultError
	switch {
	case err == nil && req.Unassign():
		result = resultUnassigned
	case err == nil:
		result = resultAssigned
	case errors.Is(err, ErrScheduleConflict):
		result = resultConflict
	case errors.Is(err, ErrInvalidEmployee):
		result = resultInvalid
	case errors.Is(err, ErrBookingNotFound):
		result = resultNotFound
	}
	uc.metrics.IncAssignment(result)
}

func (uc *UseCase) invalidateStats(ctx context.Context, companyID string) {
	if uc.stats == nil {
		return
	}
	if err := uc.stats.Invalidate(ctx, companyID); err != nil {
		uc.logger.Warn("AssignEmployee: failed to invalidate stats for company=%s: %v", companyID, err)
	}
}
