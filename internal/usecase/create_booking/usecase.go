package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования владельцем питомца
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	stats        StatsInvalidator
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	stats StatsInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		stats:        stats,
		timeProvider: &RealTimeProvider{},
		idGenerator:  UUIDGenerator{},
		logger:       logger,
	}
}

// Execute создает бронирование в статусе pending
// Сумма бронирования равна цене услуги, длительность берётся из услуги
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingDetails, error) {
	uc.logger.Info("CreateBooking: owner=%s, company=%s, service=%s, pet=%s, date=%s, time=%s",
		req.PetOwnerID, req.CompanyID, req.ServiceID, req.PetID, req.Date, req.Time)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(parsed.date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, req.Date)
	}

	var result *domain.BookingDetails

	// 3. Проверки и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Питомец принадлежит владельцу
		if _, err := uc.catalogRepo.GetPet(txCtx, req.PetID, req.PetOwnerID); err != nil {
			if errors.Is(err, catalogRepo.ErrPetNotFound) {
				return ErrPetNotFound
			}
			return fmt.Errorf("%w: failed to get pet: %w", ErrInternal, err)
		}

		// 3.2. Услуга принадлежит компании и активна
		service, err := uc.catalogRepo.GetService(txCtx, req.ServiceID, req.CompanyID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
		}
		if !service.Active {
			return fmt.Errorf("%w: service %s is not active", ErrServiceNotFound, service.ID)
		}

		// 3.3. Создаем бронирование
		booking := &domain.Booking{
			ID:              uc.idGenerator.NewID(),
			CompanyID:       req.CompanyID,
			PetOwnerID:      req.PetOwnerID,
			ServiceID:       service.ID,
			PetID:           req.PetID,
			BookingDate:     parsed.date,
			StartTime:       parsed.startTime,
			DurationMinutes: service.EffectiveDuration(),
			Status:          domain.StatusPending,
			Notes:           parsed.notes,
			TotalAmount:     service.Price.Round(2),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result, err = uc.bookingRepo.GetDetailsForCompany(txCtx, created.ID, created.CompanyID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload booking: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPetNotFound), errors.Is(err, ErrServiceNotFound):
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	if uc.stats != nil {
		if err := uc.stats.Invalidate(ctx, req.CompanyID); err != nil {
			uc.logger.Warn("CreateBooking: failed to invalidate stats for company=%s: %v", req.CompanyID, err)
		}
	}

	uc.logger.Info("CreateBooking: booking id=%s created for owner=%s", result.ID, req.PetOwnerID)
	return result, nil
}
